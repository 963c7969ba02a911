package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"stagedai-backend/internal/models"
)

// FallbackRecommendations is returned whenever the model call fails or its
// output cannot be validated. Keeping the wizard usable during a degraded
// AI service matters more than a perfect suggestion, so this path never
// surfaces an error.
func FallbackRecommendations() []models.StyleRecommendation {
	return []models.StyleRecommendation{
		{Style: models.StyleModern, Rationale: "Universally appealing and clean for listings."},
		{Style: models.StyleScandinavian, Rationale: "Maximizes light and space, perfect for modern buyers."},
	}
}

// RecommendStyles asks the model for exactly two staging styles for the
// given intake combination. The response is constrained to a JSON array via
// a response schema; any transport, parse, or schema failure falls back to
// the static pair.
func (c *Client) RecommendStyles(ctx context.Context, goal models.PropertyGoal, propertyType models.PropertyType, persona models.BuyerPersona) []models.StyleRecommendation {
	prompt := buildRecommendationPrompt(goal, propertyType, persona)

	contents := []*genai.Content{
		{Parts: []*genai.Part{genai.NewPartFromText(prompt)}},
	}

	resp, err := c.models.GenerateContent(ctx, c.textModel, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"style":     {Type: genai.TypeString},
					"rationale": {Type: genai.TypeString},
				},
				Required: []string{"style", "rationale"},
			},
		},
	})
	if err != nil {
		log.Printf("style recommendation error: %v", err)
		return FallbackRecommendations()
	}

	recs, err := ParseRecommendations(responseText(resp))
	if err != nil {
		log.Printf("style recommendation rejected: %v", err)
		return FallbackRecommendations()
	}
	return recs
}

// ParseRecommendations validates the model output: a JSON array of exactly
// two entries whose styles come from the nine-style catalog.
func ParseRecommendations(raw string) ([]models.StyleRecommendation, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty response")
	}

	var recs []models.StyleRecommendation
	if err := json.Unmarshal([]byte(raw), &recs); err != nil {
		return nil, fmt.Errorf("failed to decode recommendations: %w", err)
	}

	if len(recs) != 2 {
		return nil, fmt.Errorf("expected exactly 2 recommendations, got %d", len(recs))
	}
	for i, rec := range recs {
		if !rec.Style.Valid() {
			return nil, fmt.Errorf("recommendation %d has unknown style %q", i, rec.Style)
		}
		if strings.TrimSpace(rec.Rationale) == "" {
			return nil, fmt.Errorf("recommendation %d has empty rationale", i)
		}
	}
	return recs, nil
}
