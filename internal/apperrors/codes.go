package apperrors

// Error codes grouped by domain.
const (
	// Uploads
	CodeMissingFile     ErrorCode = "MISSING_FILE"
	CodeFileTooLarge    ErrorCode = "FILE_TOO_LARGE"
	CodeInvalidGeometry ErrorCode = "INVALID_GEOMETRY"

	// Quoting
	CodeUnknownSelection ErrorCode = "UNKNOWN_SELECTION"
	CodeInvalidQuantity  ErrorCode = "INVALID_QUANTITY"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
