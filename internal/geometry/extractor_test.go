package geometry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubKernel struct {
	solid Solid
	err   error
	path  string
}

func (k *stubKernel) ImportSolid(ctx context.Context, path string) (Solid, error) {
	k.path = path
	return k.solid, k.err
}

func TestExtractorConvertsUnits(t *testing.T) {
	kernel := &stubKernel{
		solid: Solid{
			VolumeMM3:   10000,
			BoundingBox: BoundingBox{DXMM: 20, DYMM: 10, DZMM: 100},
		},
	}
	extractor := NewExtractor(kernel)

	result, err := extractor.Extract(context.Background(), "/tmp/part.step")
	require.NoError(t, err)

	assert.InDelta(t, 10.0, result.PartVolumeCm3, 1e-9)
	assert.InDelta(t, 20.0, result.StockVolumeCm3, 1e-9)
	assert.Equal(t, "/tmp/part.step", kernel.path)
}

func TestExtractorBoundingBoxEnclosesPart(t *testing.T) {
	// A cube reported with its exact bounding box: volumes equal.
	kernel := &stubKernel{
		solid: Solid{
			VolumeMM3:   1000,
			BoundingBox: BoundingBox{DXMM: 10, DYMM: 10, DZMM: 10},
		},
	}
	result, err := NewExtractor(kernel).Extract(context.Background(), "cube.step")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.StockVolumeCm3, result.PartVolumeCm3)
}

func TestExtractorToleratesInvariantViolation(t *testing.T) {
	// Degenerate geometry can report stock smaller than part; that is a
	// data-quality warning, not a failure.
	kernel := &stubKernel{
		solid: Solid{
			VolumeMM3:   5000,
			BoundingBox: BoundingBox{DXMM: 10, DYMM: 10, DZMM: 10},
		},
	}
	result, err := NewExtractor(kernel).Extract(context.Background(), "open.step")
	require.NoError(t, err)
	assert.Less(t, result.StockVolumeCm3, result.PartVolumeCm3)
}

func TestExtractorPropagatesKernelFailure(t *testing.T) {
	kernel := &stubKernel{err: ErrExtraction}
	_, err := NewExtractor(kernel).Extract(context.Background(), "broken.step")
	assert.ErrorIs(t, err, ErrExtraction)
}

func TestExtractorPropagatesTimeout(t *testing.T) {
	kernel := &stubKernel{err: ErrExtractionTimeout}
	_, err := NewExtractor(kernel).Extract(context.Background(), "huge.step")
	assert.ErrorIs(t, err, ErrExtractionTimeout)
}
