package handlers

import (
	"net/http"

	"cncquote/internal/dto"
	"cncquote/internal/services"

	"github.com/gin-gonic/gin"
)

// QuoteHandler prices client-supplied geometry and selections.
type QuoteHandler struct {
	*BaseHandler
	quoteService services.QuoteService
}

func NewQuoteHandler(base *BaseHandler, quoteService services.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		BaseHandler:  base,
		quoteService: quoteService,
	}
}

func (h *QuoteHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/quote", h.Quote)
}

// Quote handles POST /quote. The geometry is echoed back by the client from
// a previous upload; the server holds no state between the two calls.
func (h *QuoteHandler) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	quote, err := h.quoteService.Quote(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}
