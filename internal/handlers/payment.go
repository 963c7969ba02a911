package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"stagedai-backend/internal/models"
	"stagedai-backend/internal/payment"
	"stagedai-backend/internal/staging"
)

type PaymentHandler struct {
	flow *payment.Flow
}

func NewPaymentHandler(flow *payment.Flow) *PaymentHandler {
	return &PaymentHandler{flow: flow}
}

// GetPricing lists the purchase tiers.
func (h *PaymentHandler) GetPricing(c *gin.Context) {
	c.JSON(http.StatusOK, models.PricingTiers)
}

// GetSDKConfig reports checkout-SDK availability. The probe runs on each
// request so a recovered SDK flips back to ready without a restart.
func (h *PaymentHandler) GetSDKConfig(c *gin.Context) {
	h.flow.RefreshSDK(c.Request.Context())
	c.JSON(http.StatusOK, h.flow.SDKConfig())
}

func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "project_id and plan_name are required"})
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}

	order, err := h.flow.CreateOrder(c.Request.Context(), projectID, req.PlanName)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrUnknownPlan):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "unknown pricing plan"})
		case errors.Is(err, payment.ErrCheckoutDisabled):
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "checkout unavailable", Message: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create order", Message: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *PaymentHandler) CaptureOrder(c *gin.Context) {
	var req models.CaptureOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "project_id is required"})
		return
	}

	result, err := h.flow.Capture(c.Request.Context(), req.IdempotencyToken)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		case errors.Is(err, staging.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to capture order", Message: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// DemoUnlock bypasses checkout when the demo flag allows it.
func (h *PaymentHandler) DemoUnlock(c *gin.Context) {
	var req models.DemoUnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "project_id is required"})
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}

	if err := h.flow.DemoUnlock(c.Request.Context(), projectID); err != nil {
		switch {
		case errors.Is(err, payment.ErrCheckoutDisabled):
			c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "demo unlock disabled"})
		case errors.Is(err, staging.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to unlock project", Message: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, models.CaptureResponse{Status: "COMPLETED", OrderID: "demo"})
}
