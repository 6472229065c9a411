package services

import (
	"context"
	"io"
	"net/http"

	"cncquote/internal/apperrors"
	"cncquote/internal/dto"
	"cncquote/internal/geometry"
	"cncquote/internal/logger"
	"cncquote/internal/storage"
)

// UploadService runs the per-request upload pipeline: persist the model to
// scratch storage, extract its volumetrics, and always release the file.
type UploadService interface {
	Analyze(ctx context.Context, file io.Reader, fileName string, size int64) (*dto.Geometry, error)
}

type uploadService struct {
	scratch   storage.Scratch
	extractor *geometry.Extractor
	maxSize   int64
}

func NewUploadService(scratch storage.Scratch, extractor *geometry.Extractor, maxSize int64) UploadService {
	return &uploadService{
		scratch:   scratch,
		extractor: extractor,
		maxSize:   maxSize,
	}
}

func (s *uploadService) Analyze(ctx context.Context, file io.Reader, fileName string, size int64) (*dto.Geometry, error) {
	if s.maxSize > 0 && size > s.maxSize {
		return nil, apperrors.FileTooLarge(s.maxSize)
	}

	path, err := s.scratch.Save(ctx, fileName, file)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// The scratch file is scoped strictly to this request; release it on
	// every exit path, success or failure.
	defer func() {
		if err := s.scratch.Remove(ctx, path); err != nil {
			logger.CtxWithError(ctx, "failed to remove scratch file", err, "path", path)
		}
	}()

	result, err := s.extractor.Extract(ctx, path)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInvalidGeometry,
			"Invalid STEP file", http.StatusInternalServerError)
	}

	logger.CtxInfo(ctx, "model analyzed",
		"file_name", fileName,
		"part_cm3", result.PartVolumeCm3,
		"stock_cm3", result.StockVolumeCm3,
	)

	return &dto.Geometry{
		VolCm3:      result.PartVolumeCm3,
		StockVolCm3: result.StockVolumeCm3,
	}, nil
}
