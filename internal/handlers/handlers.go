package handlers

// AppHandlers bundles the handlers for route registration.
type AppHandlers struct {
	HealthHandler *HealthHandler
	UploadHandler *UploadHandler
	QuoteHandler  *QuoteHandler
}
