package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"stagedai-backend/internal/handlers"
	"stagedai-backend/internal/models"
	"stagedai-backend/internal/payment"
	"stagedai-backend/internal/paypal"
	"stagedai-backend/internal/staging"
)

type stubCheckout struct {
	createErr error
}

func (s *stubCheckout) ProbeSDK(ctx context.Context) error {
	return nil
}

func (s *stubCheckout) CreateOrder(ctx context.Context, amount float64, description string) (paypal.Order, error) {
	if s.createErr != nil {
		return paypal.Order{}, s.createErr
	}
	return paypal.Order{ID: "ORDER123", Status: "CREATED"}, nil
}

func (s *stubCheckout) CaptureOrder(ctx context.Context, orderID string) (paypal.Order, error) {
	return paypal.Order{ID: orderID, Status: "COMPLETED"}, nil
}

func (s *stubCheckout) SDKURL() string {
	return "https://www.paypal.com/sdk/js?client-id=test&currency=USD"
}

func newPaymentRouter(checkout *stubCheckout) (*gin.Engine, *staging.Service) {
	gin.SetMode(gin.TestMode)

	stagingService := staging.NewService(&stubStager{
		result: models.ImagePayload{MimeType: "image/png", Data: []byte("staged")},
	}, nil)
	flow := payment.NewFlow(checkout, stagingService, "test", true)
	paymentHandler := handlers.NewPaymentHandler(flow)

	router := gin.New()
	router.GET("/api/v1/pricing", paymentHandler.GetPricing)
	router.GET("/api/v1/payments/sdk-config", paymentHandler.GetSDKConfig)
	router.POST("/api/v1/payments/orders", paymentHandler.CreateOrder)
	router.POST("/api/v1/payments/orders/capture", paymentHandler.CaptureOrder)
	router.POST("/api/v1/payments/demo-unlock", paymentHandler.DemoUnlock)
	return router, stagingService
}

func submitProject(t *testing.T, svc *staging.Service) models.StagingProject {
	t.Helper()
	project, err := svc.Submit(context.Background(), staging.Intake{
		Image:        models.ImagePayload{MimeType: "image/png", Data: []byte("room")},
		Goal:         models.GoalSell,
		PropertyType: models.PropertyHouse,
		Persona:      models.PersonaFamily,
		Style:        models.StyleModern,
	})
	assert.NoError(t, err)
	return project
}

func TestGetPricing(t *testing.T) {
	router, _ := newPaymentRouter(&stubCheckout{})

	w := doJSON(t, router, "GET", "/api/v1/pricing", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var tiers []models.PricingTier
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &tiers))
	assert.Len(t, tiers, 3)
	assert.Equal(t, "Starter", tiers[0].Name)
}

func TestGetSDKConfig(t *testing.T) {
	router, _ := newPaymentRouter(&stubCheckout{})

	w := doJSON(t, router, "GET", "/api/v1/payments/sdk-config", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var cfg models.SDKConfigResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
	assert.Equal(t, "ready", cfg.Status)
	assert.Contains(t, cfg.SDKURL, "client-id=test")
}

func TestCreateAndCaptureOrderEndpoints(t *testing.T) {
	router, stagingService := newPaymentRouter(&stubCheckout{})
	project := submitProject(t, stagingService)

	w := doJSON(t, router, "POST", "/api/v1/payments/orders", models.CreateOrderRequest{
		ProjectID: project.ID.String(),
		PlanName:  "Starter",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var order models.OrderResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "ORDER123", order.OrderID)
	assert.False(t, order.Demo)

	w = doJSON(t, router, "POST", "/api/v1/payments/orders/capture", models.CaptureOrderRequest{
		ProjectID:        project.ID.String(),
		IdempotencyToken: order.IdempotencyToken,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	got, err := stagingService.Get(project.ID)
	assert.NoError(t, err)
	assert.True(t, got.IsPaid)
}

func TestCreateOrder_DemoFallbackEndpoint(t *testing.T) {
	router, stagingService := newPaymentRouter(&stubCheckout{createErr: assert.AnError})
	project := submitProject(t, stagingService)

	w := doJSON(t, router, "POST", "/api/v1/payments/orders", models.CreateOrderRequest{
		ProjectID: project.ID.String(),
		PlanName:  "Persona Pack",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var order models.OrderResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.True(t, order.Demo)
	assert.Contains(t, order.OrderID, "DEMO_ORDER_")
}

func TestDemoUnlockEndpoint(t *testing.T) {
	router, stagingService := newPaymentRouter(&stubCheckout{})
	project := submitProject(t, stagingService)

	w := doJSON(t, router, "POST", "/api/v1/payments/demo-unlock", models.DemoUnlockRequest{
		ProjectID: project.ID.String(),
	})
	assert.Equal(t, http.StatusOK, w.Code)

	got, err := stagingService.Get(project.ID)
	assert.NoError(t, err)
	assert.True(t, got.IsPaid)
}

func TestCreateOrder_UnknownPlanEndpoint(t *testing.T) {
	router, stagingService := newPaymentRouter(&stubCheckout{})
	project := submitProject(t, stagingService)

	w := doJSON(t, router, "POST", "/api/v1/payments/orders", models.CreateOrderRequest{
		ProjectID: project.ID.String(),
		PlanName:  "Mega Deluxe",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
