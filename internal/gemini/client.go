package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"stagedai-backend/internal/config"
)

// generator is the slice of the genai SDK the services use; tests substitute
// a stub so no live API is needed.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Client struct {
	models     generator
	textModel  string
	imageModel string
}

func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Client{
		models:     genaiClient.Models,
		textModel:  cfg.GeminiTextModel,
		imageModel: cfg.GeminiImageModel,
	}, nil
}

// NewClientWithGenerator wires a custom generator, used by tests.
func NewClientWithGenerator(g generator, textModel, imageModel string) *Client {
	return &Client{models: g, textModel: textModel, imageModel: imageModel}
}

func floatPtr(f float64) *float32 {
	f32 := float32(f)
	return &f32
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	out := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			out += part.Text
		}
	}
	return out
}

// firstInlineImage returns the first inline-image part across candidates.
func firstInlineImage(resp *genai.GenerateContentResponse) []byte {
	if resp == nil {
		return nil
	}
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data
			}
		}
	}
	return nil
}
