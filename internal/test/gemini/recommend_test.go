package gemini_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"stagedai-backend/internal/gemini"
	"stagedai-backend/internal/models"
)

func TestRecommendStyles_Success(t *testing.T) {
	stub := &stubGenerator{resp: textResponse(`[
		{"style": "Luxury", "rationale": "Signals premium finish quality."},
		{"style": "Contemporary", "rationale": "Broad appeal for urban buyers."}
	]`)}
	client := gemini.NewClientWithGenerator(stub, "text-model", "image-model")

	recs := client.RecommendStyles(context.Background(), models.GoalSell, models.PropertyApartment, models.PersonaLuxury)

	assert.Len(t, recs, 2)
	assert.Equal(t, models.StyleLuxury, recs[0].Style)
	assert.Equal(t, models.StyleContemporary, recs[1].Style)
	assert.Equal(t, "text-model", stub.lastModel)
	assert.Equal(t, "application/json", stub.lastConfig.ResponseMIMEType)
	assert.NotNil(t, stub.lastConfig.ResponseSchema)
}

func TestRecommendStyles_FallbackOnError(t *testing.T) {
	stub := &stubGenerator{err: assert.AnError}
	client := gemini.NewClientWithGenerator(stub, "text-model", "image-model")

	recs := client.RecommendStyles(context.Background(), models.GoalRent, models.PropertyStudio, models.PersonaFirstTime)

	assert.Equal(t, gemini.FallbackRecommendations(), recs)
}

func TestRecommendStyles_FallbackOnWrongCount(t *testing.T) {
	stub := &stubGenerator{resp: textResponse(`[{"style": "Modern", "rationale": "Clean."}]`)}
	client := gemini.NewClientWithGenerator(stub, "text-model", "image-model")

	recs := client.RecommendStyles(context.Background(), models.GoalSell, models.PropertyHouse, models.PersonaFamily)

	assert.Equal(t, gemini.FallbackRecommendations(), recs)
}

func TestRecommendStyles_FallbackOnUnknownStyle(t *testing.T) {
	stub := &stubGenerator{resp: textResponse(`[
		{"style": "Art Deco", "rationale": "Distinctive."},
		{"style": "Modern", "rationale": "Clean."}
	]`)}
	client := gemini.NewClientWithGenerator(stub, "text-model", "image-model")

	recs := client.RecommendStyles(context.Background(), models.GoalSell, models.PropertyHouse, models.PersonaFamily)

	assert.Equal(t, gemini.FallbackRecommendations(), recs)
}

func TestParseRecommendations(t *testing.T) {
	recs, err := gemini.ParseRecommendations(`[
		{"style": "Scandinavian", "rationale": "Light and airy."},
		{"style": "Minimalist", "rationale": "Emphasizes space."}
	]`)

	assert.NoError(t, err)
	assert.Len(t, recs, 2)
	assert.Equal(t, models.StyleScandinavian, recs[0].Style)
}

func TestParseRecommendations_Rejects(t *testing.T) {
	cases := map[string]string{
		"empty":           "",
		"not json":        "two styles: Modern and Luxury",
		"empty rationale": `[{"style": "Modern", "rationale": ""}, {"style": "Luxury", "rationale": "x"}]`,
		"three entries":   `[{"style": "Modern", "rationale": "a"}, {"style": "Luxury", "rationale": "b"}, {"style": "Cozy / Family-friendly", "rationale": "c"}]`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := gemini.ParseRecommendations(raw)
			assert.Error(t, err)
		})
	}
}

func TestFallbackRecommendations(t *testing.T) {
	recs := gemini.FallbackRecommendations()

	assert.Len(t, recs, 2)
	assert.Equal(t, models.StyleModern, recs[0].Style)
	assert.Equal(t, models.StyleScandinavian, recs[1].Style)
	for _, rec := range recs {
		assert.True(t, rec.Style.Valid())
		assert.NotEmpty(t, rec.Rationale)
	}
}
