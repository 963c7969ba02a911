package payment

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"stagedai-backend/internal/models"
	"stagedai-backend/internal/paypal"
)

// SDKState tracks checkout-SDK availability. The flow starts in
// StateLoading and settles on ready or error after the first probe.
type SDKState string

const (
	StateLoading SDKState = "loading"
	StateReady   SDKState = "ready"
	StateError   SDKState = "error"
)

// demoUnlockDelay simulates checkout latency so the demo path feels like a
// real purchase rather than an instant toggle.
const demoUnlockDelay = 1500 * time.Millisecond

var (
	ErrUnknownPlan      = fmt.Errorf("unknown pricing plan")
	ErrOrderNotFound    = fmt.Errorf("order not found")
	ErrCheckoutDisabled = fmt.Errorf("checkout is unavailable and demo purchases are disabled")
)

// checkout is the slice of the PayPal client the flow needs.
type checkout interface {
	ProbeSDK(ctx context.Context) error
	CreateOrder(ctx context.Context, amount float64, description string) (paypal.Order, error)
	CaptureOrder(ctx context.Context, orderID string) (paypal.Order, error)
	SDKURL() string
}

// unlocker flips a project's paid flag.
type unlocker interface {
	SetPaid(ctx context.Context, id uuid.UUID) error
}

// pendingOrder is one in-flight purchase. The tier is locked in when the
// order is created so a price change mid-checkout cannot alter the charge,
// and the once guard keeps the unlock callback at most-once per order.
type pendingOrder struct {
	orderID   string
	projectID uuid.UUID
	tier      models.PricingTier
	demo      bool
	completed sync.Once
}

// Flow coordinates the unlock purchase: SDK readiness, order creation with
// a demo fallback, capture, and the final unlock of the project.
type Flow struct {
	mu       sync.RWMutex
	sdkState SDKState
	orders   map[string]*pendingOrder

	checkout    checkout
	unlocker    unlocker
	clientID    string
	demoEnabled bool
}

func NewFlow(checkout checkout, unlocker unlocker, clientID string, demoEnabled bool) *Flow {
	return &Flow{
		sdkState:    StateLoading,
		orders:      make(map[string]*pendingOrder),
		checkout:    checkout,
		unlocker:    unlocker,
		clientID:    clientID,
		demoEnabled: demoEnabled,
	}
}

// RefreshSDK probes the hosted SDK script and records the outcome. Loading
// is only ever an initial state; after a probe the flow is ready or errored.
func (f *Flow) RefreshSDK(ctx context.Context) SDKState {
	state := StateReady
	if err := f.checkout.ProbeSDK(ctx); err != nil {
		log.Printf("checkout SDK probe failed: %v", err)
		state = StateError
	}

	f.mu.Lock()
	f.sdkState = state
	f.mu.Unlock()
	return state
}

// SDKConfig reports what the client needs to render checkout buttons.
func (f *Flow) SDKConfig() models.SDKConfigResponse {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return models.SDKConfigResponse{
		ClientID: f.clientID,
		SDKURL:   f.checkout.SDKURL(),
		Status:   string(f.sdkState),
	}
}

// CreateOrder opens a purchase for the given plan. When the real checkout
// backend cannot produce an order and demo purchases are enabled, a demo
// order id is issued instead so the user can still unlock their result.
func (f *Flow) CreateOrder(ctx context.Context, projectID uuid.UUID, planName string) (models.OrderResponse, error) {
	tier := models.TierByName(planName)
	if tier == nil {
		return models.OrderResponse{}, ErrUnknownPlan
	}

	order := &pendingOrder{
		projectID: projectID,
		tier:      *tier,
	}

	real, err := f.checkout.CreateOrder(ctx, tier.Price, fmt.Sprintf("StagedAI %s plan", tier.Name))
	if err != nil {
		if !f.demoEnabled {
			return models.OrderResponse{}, fmt.Errorf("%w: %v", ErrCheckoutDisabled, err)
		}
		log.Printf("order creation failed, issuing demo order: %v", err)
		order.demo = true
		order.orderID = fmt.Sprintf("DEMO_ORDER_%d", time.Now().UnixMilli())
	} else {
		order.orderID = real.ID
	}

	token := uuid.New().String()
	f.mu.Lock()
	f.orders[token] = order
	f.mu.Unlock()

	return models.OrderResponse{
		OrderID:          order.orderID,
		Demo:             order.demo,
		IdempotencyToken: token,
	}, nil
}

// Capture finalizes the order identified by the idempotency token and
// unlocks the project. The token is single-use: it is removed once the
// capture succeeds, and the once guard keeps a racing duplicate from
// unlocking twice.
func (f *Flow) Capture(ctx context.Context, token string) (models.CaptureResponse, error) {
	f.mu.RLock()
	order, ok := f.orders[token]
	var demo bool
	if ok {
		demo = order.demo
	}
	f.mu.RUnlock()
	if !ok {
		return models.CaptureResponse{}, ErrOrderNotFound
	}

	if demo {
		time.Sleep(demoUnlockDelay)
	} else {
		if _, err := f.checkout.CaptureOrder(ctx, order.orderID); err != nil {
			if !f.demoEnabled {
				return models.CaptureResponse{}, fmt.Errorf("failed to capture order: %w", err)
			}
			// Same degradation as order creation: a checkout outage must
			// not leave the user stuck, the purchase becomes a demo one.
			log.Printf("capture failed for order %s, proceeding as demo: %v", order.orderID, err)
			f.mu.Lock()
			order.demo = true
			f.mu.Unlock()
			time.Sleep(demoUnlockDelay)
		}
	}

	var unlockErr error
	order.completed.Do(func() {
		log.Printf("order %s completed (%s, $%.2f)", order.orderID, order.tier.Name, order.tier.Price)
		unlockErr = f.unlocker.SetPaid(ctx, order.projectID)
	})
	if unlockErr != nil {
		return models.CaptureResponse{}, unlockErr
	}

	f.mu.Lock()
	delete(f.orders, token)
	f.mu.Unlock()

	return models.CaptureResponse{
		Status:  "COMPLETED",
		OrderID: order.orderID,
	}, nil
}

// DemoUnlock bypasses checkout entirely. Only available when the demo flag
// is on; the simulated delay matches the demo capture path.
func (f *Flow) DemoUnlock(ctx context.Context, projectID uuid.UUID) error {
	if !f.demoEnabled {
		return ErrCheckoutDisabled
	}
	time.Sleep(demoUnlockDelay)
	return f.unlocker.SetPaid(ctx, projectID)
}
