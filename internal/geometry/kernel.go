package geometry

import (
	"context"
	"errors"
)

// Collapsed failure signals. The caller's only recourse for any kernel
// problem is "reject this file", so parse errors, degenerate geometry and
// internal kernel faults all surface as ErrExtraction. Timeouts get their
// own signal because they say nothing about the file itself.
var (
	ErrExtraction        = errors.New("geometry: extraction failed")
	ErrExtractionTimeout = errors.New("geometry: extraction timed out")
)

// BoundingBox holds the axis-aligned bounding-box edge lengths in mm.
type BoundingBox struct {
	DXMM float64 `json:"dx_mm"`
	DYMM float64 `json:"dy_mm"`
	DZMM float64 `json:"dz_mm"`
}

// Solid is the kernel's report for one imported solid body.
type Solid struct {
	VolumeMM3   float64     `json:"volume_mm3"`
	BoundingBox BoundingBox `json:"bounding_box"`
}

// Kernel imports a solid-model file and reports its volumetrics.
// Implementations delegate to an external solid-modeling capability;
// CAD parsing is never done in-process.
type Kernel interface {
	ImportSolid(ctx context.Context, path string) (Solid, error)
}
