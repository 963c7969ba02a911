package gemini

import (
	"fmt"
	"strings"

	"stagedai-backend/internal/models"
)

// StageParams carries everything the generation prompt needs beyond the
// source image.
type StageParams struct {
	Goal              models.PropertyGoal
	PropertyType      models.PropertyType
	Persona           models.BuyerPersona
	Style             models.StagingStyle
	Notes             string
	MarketPositioning models.MarketPositioning
	EmotionalTone     string
	UsagePlatform     []string
	DeepCleanRequired bool
}

func buildRecommendationPrompt(goal models.PropertyGoal, propertyType models.PropertyType, persona models.BuyerPersona) string {
	styleNames := make([]string, len(models.StagingStyles))
	for i, s := range models.StagingStyles {
		styleNames[i] = string(s)
	}

	return fmt.Sprintf(`As a real estate marketing expert, suggest exactly 2 interior design staging styles for the following:
- Property Goal: %s
- Property Type: %s
- Target Buyer Persona: %s

Return a JSON array of objects with 'style' (must be one of: %s) and 'rationale' (a brief explanation of why this style fits this specific persona and goal).`,
		goal, propertyType, persona, strings.Join(styleNames, ", "))
}

// buildStagingPrompt composes the staging instruction. The five "agent"
// roles are prompt framing only; the whole thing goes out as one request.
func buildStagingPrompt(p StageParams) string {
	position := p.MarketPositioning
	if position == "" {
		position = models.PositionMidRange
	}
	tone := p.EmotionalTone
	if tone == "" {
		tone = models.EmotionalTones[0]
	}
	platforms := "General Listing"
	if len(p.UsagePlatform) > 0 {
		platforms = strings.Join(p.UsagePlatform, ", ")
	}

	var b strings.Builder
	b.WriteString("ACT AS A VIRTUAL REAL ESTATE STAGING CREW:\n")
	if p.DeepCleanRequired {
		b.WriteString("0. Clean-up Agent: Remove all clutter, trash, and personal items before staging.\n")
	}
	fmt.Fprintf(&b, `1. Room Analysis Agent: Analyze the space, lighting, and architecture.
2. Buyer Persona Strategist: Tailor the furniture and decor for a %s.
3. Style Expert: Apply a %s aesthetic.
4. Strategy Agent: Target %s.
5. Quality Control Agent: Ensure photorealism.

CONTEXT:
- Property Type: %s
- Market Level: %s
- Desired Tone: %s
- Target Usage: %s
`, p.Persona, p.Style, p.Goal, p.PropertyType, position, tone, platforms)

	if p.Notes != "" {
		fmt.Fprintf(&b, "- User Notes: %s\n", p.Notes)
	}

	fmt.Fprintf(&b, `
INSTRUCTIONS:
- Virtually stage the attached empty room with high-quality, photorealistic furniture.
- Match the %s style perfectly.
- Ensure lighting, reflections, and shadows are 100%% consistent with the original room.
- DO NOT change walls, floors, or windows unless they are clearly unfinished.
- DO NOT add people or pets.
- Output only the updated photorealistic staged image.
`, p.Style)

	return b.String()
}

const salesCrewInstruction = `You are the "StagedAI Sales Crew", a collaborative team of 3 elite real estate sales agents.

AGENTS INVOLVED:
1. Alex (Sales Strategist): Focused on ROI, market trends, and how staging increases sale price.
2. Sarah (Customer Success): Friendly, focused on technical ease of use and property types.
3. Marcus (Closer): Dynamic, focused on getting the user to start their first project now.

YOUR MISSION:
- Respond to the user's inquiry as a short dialogue between these 3 agents.
- Be persuasive but helpful.
- If the user asks about price, mention the $29 Starter tier.
- Always end with Marcus encouraging them to click "Launch Studio".

FORMAT:
Alex: [Strategic point]
Sarah: [Helpful/Supportive point]
Marcus: [Closing point/Call to Action]

Keep the total response under 150 words.`
