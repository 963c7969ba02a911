package models

import "time"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type WizardStateResponse struct {
	SessionID       string                `json:"session_id"`
	Step            int                   `json:"step"`
	HasImage        bool                  `json:"has_image"`
	Goal            PropertyGoal          `json:"goal,omitempty"`
	Persona         BuyerPersona          `json:"persona,omitempty"`
	PropertyType    PropertyType          `json:"property_type,omitempty"`
	Style           StagingStyle          `json:"style,omitempty"`
	Recommendations []StyleRecommendation `json:"recommendations,omitempty"`
}

type SubmitResponse struct {
	ProjectID string        `json:"project_id"`
	Status    ProjectStatus `json:"status"`
}

type ProjectStatusResponse struct {
	ProjectID    string        `json:"project_id"`
	Status       ProjectStatus `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type ProjectResultResponse struct {
	ProjectID     string        `json:"project_id"`
	Status        ProjectStatus `json:"status"`
	Goal          PropertyGoal  `json:"goal"`
	PropertyType  PropertyType  `json:"property_type"`
	Persona       BuyerPersona  `json:"persona"`
	Style         StagingStyle  `json:"style"`
	OriginalImage string        `json:"original_image"`
	StagedImage   string        `json:"staged_image,omitempty"`
	IsPaid        bool          `json:"is_paid"`
}

type SDKConfigResponse struct {
	ClientID string `json:"client_id"`
	SDKURL   string `json:"sdk_url"`
	Status   string `json:"status"`
}

type OrderResponse struct {
	OrderID          string `json:"order_id"`
	Demo             bool   `json:"demo"`
	IdempotencyToken string `json:"idempotency_token"`
}

type CaptureResponse struct {
	Status  string `json:"status"`
	OrderID string `json:"order_id"`
}

type SalesChatResponse struct {
	Reply string `json:"reply"`
}
