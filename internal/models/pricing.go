package models

type PricingTier struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Credits     int      `json:"credits"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Recommended bool     `json:"recommended"`
}

var PricingTiers = []PricingTier{
	{
		Name:        "Starter",
		Price:       29,
		Credits:     5,
		Description: "Perfect for single rooms or small listings.",
		Features:    []string{"5 Staged Images", "Single Style Variation", "High-Res Download", "disclosure badge"},
	},
	{
		Name:        "Persona Pack",
		Price:       79,
		Credits:     15,
		Description: "Best for attracting multiple buyer segments.",
		Features:    []string{"15 Staged Images", "3 Style Variations", "Persona-Based Targeting", "Priority Processing"},
		Recommended: true,
	},
	{
		Name:        "Full Property",
		Price:       149,
		Credits:     35,
		Description: "The ultimate package for complete listings.",
		Features:    []string{"35 Staged Images", "Up to 6 Rooms", "Multiple Style Choices", "Rush Delivery", "Commercial Usage Rights"},
	},
}

// TierByName returns the tier with the given name, or nil.
func TierByName(name string) *PricingTier {
	for i := range PricingTiers {
		if PricingTiers[i].Name == name {
			return &PricingTiers[i]
		}
	}
	return nil
}
