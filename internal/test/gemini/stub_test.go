package gemini_test

import (
	"context"

	"google.golang.org/genai"
)

// stubGenerator satisfies the client's generation interface and records the
// last call so assertions can inspect it.
type stubGenerator struct {
	resp *genai.GenerateContentResponse
	err  error

	calls      int
	lastModel  string
	lastConfig *genai.GenerateContentConfig
	lastParts  []*genai.Part
}

func (s *stubGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	s.calls++
	s.lastModel = model
	s.lastConfig = config
	if len(contents) > 0 {
		s.lastParts = contents[len(contents)-1].Parts
	}
	return s.resp, s.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: text}}}},
		},
	}
}

func imageResponse(mimeType string, data []byte) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{
				{Text: "Here is your staged room."},
				{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
			}}},
		},
	}
}
