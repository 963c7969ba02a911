package models

type ImageURLRequest struct {
	URL string `json:"url" binding:"required"`
}

// ImageDataRequest carries a directly uploaded image as a data: URI or
// bare base64.
type ImageDataRequest struct {
	Image string `json:"image" binding:"required"`
}

type GoalPersonaRequest struct {
	Goal    PropertyGoal `json:"goal" binding:"required"`
	Persona BuyerPersona `json:"persona" binding:"required"`
}

type PropertyTypeRequest struct {
	PropertyType PropertyType `json:"property_type" binding:"required"`
}

type StyleRequest struct {
	Style StagingStyle `json:"style" binding:"required"`
}

type RefineRequest struct {
	MarketPositioning MarketPositioning `json:"market_positioning,omitempty"`
	UsagePlatform     []string          `json:"usage_platform,omitempty"`
	EmotionalTone     string            `json:"emotional_tone,omitempty"`
	Notes             string            `json:"notes,omitempty"`
	DeepCleanRequired bool              `json:"deep_clean_required,omitempty"`
}

type CreateOrderRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
	PlanName  string `json:"plan_name" binding:"required"`
}

type CaptureOrderRequest struct {
	ProjectID        string `json:"project_id" binding:"required"`
	IdempotencyToken string `json:"idempotency_token,omitempty"`
}

type DemoUnlockRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
}

type InquiryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type SalesChatRequest struct {
	Message string        `json:"message" binding:"required"`
	History []ChatMessage `json:"history,omitempty"`
}

type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
