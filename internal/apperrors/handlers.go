package apperrors

import (
	"cncquote/internal/logger"

	"github.com/gin-gonic/gin"
)

// HandleError converts any error into a structured JSON response.
// Unknown error types are wrapped so internal detail never reaches the client.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", appErr,
			"path", c.Request.URL.Path,
		)
	}

	// AppError marshals itself as {"error": message, "details"?: ...}
	c.JSON(appErr.HTTPCode, appErr)
}

// AsAppError attempts to convert an error into *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
