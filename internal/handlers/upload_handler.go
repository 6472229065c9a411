package handlers

import (
	"net/http"

	"cncquote/internal/apperrors"
	"cncquote/internal/dto"
	"cncquote/internal/logger"
	"cncquote/internal/services"

	"github.com/gin-gonic/gin"
)

// UploadHandler accepts a solid-model upload and returns its volumetrics.
type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/upload", h.Upload)
}

// Upload handles POST /upload: multipart form field "file".
func (h *UploadHandler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.CtxWarn(ctx, "upload without file", "error", err.Error())
		apperrors.HandleError(c, apperrors.ErrMissingFile)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer file.Close()

	geo, err := h.uploadService.Analyze(ctx, file, fileHeader.Filename, fileHeader.Size)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UploadResponse{Geometry: *geo})
}
