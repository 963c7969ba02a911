package gemini

import (
	"context"
	"log"
	"strings"

	"google.golang.org/genai"

	"stagedai-backend/internal/models"
)

const salesCrewFallback = "Marcus: Our crew is stepping away for a moment, but your first staged room is just a click away. Hit \"Launch Studio\" and see it for yourself!"

// SalesCrewReply answers a marketing-site inquiry in the three-agent sales
// dialogue format. Failures degrade to a canned closer line; the chat widget
// never shows an error.
func (c *Client) SalesCrewReply(ctx context.Context, message string, history []models.ChatMessage) string {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, msg := range history {
		role := genai.RoleUser
		if msg.Role == "model" || msg.Role == "assistant" {
			role = genai.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{genai.NewPartFromText(msg.Text)},
		})
	}
	contents = append(contents, &genai.Content{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{genai.NewPartFromText(message)},
	})

	resp, err := c.models.GenerateContent(ctx, c.textModel, contents, &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(salesCrewInstruction)},
		},
		Temperature: floatPtr(0.8),
	})
	if err != nil {
		log.Printf("sales chat error: %v", err)
		return salesCrewFallback
	}

	reply := strings.TrimSpace(responseText(resp))
	if reply == "" {
		return salesCrewFallback
	}
	return reply
}
