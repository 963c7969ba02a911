package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stagedai-backend/internal/models"
)

// InquiryStore persists contact-form submissions. Both the direct SQL
// client and the PostgREST client satisfy it.
type InquiryStore interface {
	CreateInquiry(ctx context.Context, inquiry models.InquiryRequest) error
}

type InquiriesHandler struct {
	store InquiryStore
}

func NewInquiriesHandler(store InquiryStore) *InquiriesHandler {
	return &InquiriesHandler{store: store}
}

// CreateInquiry records a contact-form submission from the marketing site.
func (h *InquiriesHandler) CreateInquiry(c *gin.Context) {
	var req models.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "name, email and message are required"})
		return
	}

	if !strings.Contains(req.Email, "@") {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid email address"})
		return
	}

	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	if err := h.store.CreateInquiry(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to save inquiry",
			Message: err.Error(),
		})
		return
	}

	c.Status(http.StatusCreated)
}
