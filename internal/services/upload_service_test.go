package services

import (
	"context"
	"net/http"
	"os"
	"strings"
	"testing"

	"cncquote/internal/apperrors"
	"cncquote/internal/geometry"
	"cncquote/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubKernel struct {
	solid geometry.Solid
	err   error
}

func (k *stubKernel) ImportSolid(ctx context.Context, path string) (geometry.Solid, error) {
	return k.solid, k.err
}

func newTestService(t *testing.T, kernel geometry.Kernel, maxSize int64) (UploadService, string) {
	t.Helper()
	root := t.TempDir()
	scratch, err := storage.NewLocalScratch(root)
	require.NoError(t, err)
	return NewUploadService(scratch, geometry.NewExtractor(kernel), maxSize), root
}

func dirEntryCount(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return len(entries)
}

func TestAnalyzeReturnsGeometry(t *testing.T) {
	kernel := &stubKernel{
		solid: geometry.Solid{
			VolumeMM3:   10000,
			BoundingBox: geometry.BoundingBox{DXMM: 20, DYMM: 10, DZMM: 100},
		},
	}
	svc, root := newTestService(t, kernel, 0)

	geo, err := svc.Analyze(context.Background(), strings.NewReader("ISO-10303-21;"), "bracket.step", 13)
	require.NoError(t, err)

	assert.InDelta(t, 10.0, geo.VolCm3, 1e-9)
	assert.InDelta(t, 20.0, geo.StockVolCm3, 1e-9)

	// The scratch file is gone once the request is served.
	assert.Zero(t, dirEntryCount(t, root))
}

func TestAnalyzeCleansUpAfterExtractionFailure(t *testing.T) {
	kernel := &stubKernel{err: geometry.ErrExtraction}
	svc, root := newTestService(t, kernel, 0)

	_, err := svc.Analyze(context.Background(), strings.NewReader("garbage"), "broken.step", 7)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidGeometry, appErr.Code)
	assert.Equal(t, "Invalid STEP file", appErr.Message)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)

	// No residual file even on the failure path.
	assert.Zero(t, dirEntryCount(t, root))
}

func TestAnalyzeMapsTimeoutToInvalidGeometry(t *testing.T) {
	kernel := &stubKernel{err: geometry.ErrExtractionTimeout}
	svc, root := newTestService(t, kernel, 0)

	_, err := svc.Analyze(context.Background(), strings.NewReader("huge"), "assembly.step", 4)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	// Collapsed to the same generic client message; the cause stays internal.
	assert.Equal(t, "Invalid STEP file", appErr.Message)
	assert.ErrorIs(t, appErr, geometry.ErrExtractionTimeout)
	assert.Zero(t, dirEntryCount(t, root))
}

func TestAnalyzeRejectsOversizedUpload(t *testing.T) {
	kernel := &stubKernel{}
	svc, root := newTestService(t, kernel, 10)

	_, err := svc.Analyze(context.Background(), strings.NewReader("0123456789abcdef"), "big.step", 16)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeFileTooLarge, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)

	// Rejected before anything touches the filesystem.
	assert.Zero(t, dirEntryCount(t, root))
}
