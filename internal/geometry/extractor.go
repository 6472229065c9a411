package geometry

import (
	"context"

	"cncquote/internal/logger"
)

// Result holds the volumetric measurements of one uploaded model, in cm3.
type Result struct {
	PartVolumeCm3  float64
	StockVolumeCm3 float64
}

// Extractor turns a model file into a Result via the bound kernel.
type Extractor struct {
	kernel Kernel
}

func NewExtractor(kernel Kernel) *Extractor {
	return &Extractor{kernel: kernel}
}

// Extract imports the solid at path and converts the kernel's mm3 report
// into cm3 measurements. The file is only read, never modified or deleted.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	solid, err := e.kernel.ImportSolid(ctx, path)
	if err != nil {
		return Result{}, err
	}

	bb := solid.BoundingBox
	result := Result{
		PartVolumeCm3:  solid.VolumeMM3 / 1000.0,
		StockVolumeCm3: bb.DXMM * bb.DYMM * bb.DZMM / 1000.0,
	}

	// The bounding box must enclose the part. Open or degenerate geometry
	// can violate this numerically; treat it as a data-quality warning,
	// not a rejection.
	if result.StockVolumeCm3 < result.PartVolumeCm3 {
		logger.CtxWarn(ctx, "stock volume smaller than part volume",
			"part_cm3", result.PartVolumeCm3,
			"stock_cm3", result.StockVolumeCm3,
		)
	}

	return result, nil
}
