package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"stagedai-backend/internal/models"
)

// Staging failures are terminal: there is no retry or degraded output, the
// project is marked failed with one of these errors.
var (
	ErrMissingSourceImage = fmt.Errorf("staging requires a source image")
	ErrNoImageData        = fmt.Errorf("no image data returned, possibly blocked or image too complex")
)

// StageRoom sends the source image plus the composed staging instruction in
// a single generation call and returns the staged result. The model reports
// its output encoding inconsistently, so the returned payload is always
// tagged image/png, which is what the model family emits.
func (c *Client) StageRoom(ctx context.Context, image models.ImagePayload, params StageParams) (models.ImagePayload, error) {
	if image.IsZero() {
		return models.ImagePayload{}, ErrMissingSourceImage
	}

	contents := []*genai.Content{
		{
			Parts: []*genai.Part{
				{InlineData: &genai.Blob{MIMEType: image.MimeType, Data: image.Data}},
				genai.NewPartFromText(buildStagingPrompt(params)),
			},
		},
	}

	resp, err := c.models.GenerateContent(ctx, c.imageModel, contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
		Temperature:        floatPtr(0.4),
	})
	if err != nil {
		return models.ImagePayload{}, fmt.Errorf("staging generation failed: %w", err)
	}

	data := firstInlineImage(resp)
	if len(data) == 0 {
		return models.ImagePayload{}, ErrNoImageData
	}

	return models.ImagePayload{MimeType: "image/png", Data: data}, nil
}
