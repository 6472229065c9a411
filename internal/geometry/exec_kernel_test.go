package geometry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kernelReport = `{"volume_mm3": 10000, "bounding_box": {"dx_mm": 20, "dy_mm": 10, "dz_mm": 100}}`

func TestExecKernelParsesReport(t *testing.T) {
	kernel := NewExecKernel("sh", []string{"-c", "echo '" + kernelReport + "'"}, 5*time.Second)

	solid, err := kernel.ImportSolid(context.Background(), "part.step")
	require.NoError(t, err)

	assert.InDelta(t, 10000.0, solid.VolumeMM3, 1e-9)
	assert.InDelta(t, 20.0, solid.BoundingBox.DXMM, 1e-9)
	assert.InDelta(t, 10.0, solid.BoundingBox.DYMM, 1e-9)
	assert.InDelta(t, 100.0, solid.BoundingBox.DZMM, 1e-9)
}

func TestExecKernelCollapsesFailures(t *testing.T) {
	t.Run("non-zero exit", func(t *testing.T) {
		kernel := NewExecKernel("sh", []string{"-c", "exit 3"}, 5*time.Second)
		_, err := kernel.ImportSolid(context.Background(), "broken.step")
		assert.ErrorIs(t, err, ErrExtraction)
	})

	t.Run("unparseable output", func(t *testing.T) {
		kernel := NewExecKernel("sh", []string{"-c", "echo not-json"}, 5*time.Second)
		_, err := kernel.ImportSolid(context.Background(), "part.step")
		assert.ErrorIs(t, err, ErrExtraction)
	})

	t.Run("no solid body", func(t *testing.T) {
		kernel := NewExecKernel("sh", []string{"-c", `echo '{"volume_mm3": 0}'`}, 5*time.Second)
		_, err := kernel.ImportSolid(context.Background(), "wireframe.step")
		assert.ErrorIs(t, err, ErrExtraction)
	})

	t.Run("missing executable", func(t *testing.T) {
		kernel := NewExecKernel("definitely-not-a-kernel", nil, 5*time.Second)
		_, err := kernel.ImportSolid(context.Background(), "part.step")
		assert.ErrorIs(t, err, ErrExtraction)
	})
}

func TestExecKernelTimesOut(t *testing.T) {
	kernel := NewExecKernel("sh", []string{"-c", "sleep 5"}, 50*time.Millisecond)

	start := time.Now()
	_, err := kernel.ImportSolid(context.Background(), "huge-assembly.step")

	assert.ErrorIs(t, err, ErrExtractionTimeout)
	assert.Less(t, time.Since(start), 2*time.Second)
}
