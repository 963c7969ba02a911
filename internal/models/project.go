package models

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	StatusDraft      ProjectStatus = "draft"
	StatusProcessing ProjectStatus = "processing"
	StatusCompleted  ProjectStatus = "completed"
	StatusFailed     ProjectStatus = "failed"
)

// ImagePayload is a self-describing image: MIME type plus raw bytes.
type ImagePayload struct {
	MimeType string `json:"mime_type"`
	Data     []byte `json:"data"`
}

func (p ImagePayload) IsZero() bool {
	return len(p.Data) == 0
}

// DataURI renders the payload as a data: URI, the wire format the web
// client consumes.
func (p ImagePayload) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", p.MimeType, base64.StdEncoding.EncodeToString(p.Data))
}

// ImagePayloadFromDataURI parses a data: URI back into a payload. Bare
// base64 without a data: prefix is accepted and sniffed for its MIME type.
func ImagePayloadFromDataURI(s string) (ImagePayload, error) {
	raw := s
	mimeType := ""
	if strings.HasPrefix(s, "data:") {
		idx := strings.Index(s, ";base64,")
		if idx < 0 {
			return ImagePayload{}, fmt.Errorf("data URI is not base64-encoded")
		}
		mimeType = s[len("data:"):idx]
		raw = s[idx+len(";base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return ImagePayload{}, fmt.Errorf("failed to decode image data: %w", err)
	}
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	return ImagePayload{MimeType: mimeType, Data: data}, nil
}

// StagingProject is one staging job. The record is created when the wizard
// submits; after that only the staged image, status, and paid flag change.
type StagingProject struct {
	ID            uuid.UUID         `json:"id"`
	OriginalImage ImagePayload      `json:"original_image"`
	StagedImage   *ImagePayload     `json:"staged_image,omitempty"`
	Goal          PropertyGoal      `json:"goal"`
	PropertyType  PropertyType      `json:"property_type"`
	Persona       BuyerPersona      `json:"persona"`
	Style         StagingStyle      `json:"style"`

	MarketPositioning MarketPositioning `json:"market_positioning,omitempty"`
	UsagePlatform     []string          `json:"usage_platform,omitempty"`
	EmotionalTone     string            `json:"emotional_tone,omitempty"`
	Notes             string            `json:"notes,omitempty"`
	DeepCleanRequired bool              `json:"deep_clean_required,omitempty"`

	Status       ProjectStatus `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
	IsPaid       bool          `json:"is_paid"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Complete attaches the staged result and flips the status. It is the only
// way a project reaches StatusCompleted, which keeps the invariant that a
// completed project always has a staged image.
func (p *StagingProject) Complete(staged ImagePayload) error {
	if staged.IsZero() {
		return fmt.Errorf("cannot complete project %s without a staged image", p.ID)
	}
	p.StagedImage = &staged
	p.Status = StatusCompleted
	p.UpdatedAt = time.Now()
	return nil
}

func (p *StagingProject) Fail(message string) {
	p.Status = StatusFailed
	p.ErrorMessage = message
	p.UpdatedAt = time.Now()
}
