package models

// Enumeration values double as the marketing copy injected into generation
// prompts, so they are full phrases rather than identifiers.

type PropertyGoal string

const (
	GoalSell     PropertyGoal = "Selling the property"
	GoalRent     PropertyGoal = "Renting the property"
	GoalSTR      PropertyGoal = "Short-term rental (Airbnb / VRBO)"
	GoalRenovate PropertyGoal = "Visualizing possibilities"
)

var PropertyGoals = []PropertyGoal{GoalSell, GoalRent, GoalSTR, GoalRenovate}

func (g PropertyGoal) Valid() bool {
	for _, v := range PropertyGoals {
		if g == v {
			return true
		}
	}
	return false
}

type PropertyType string

const (
	PropertyHouse     PropertyType = "Single-Family House"
	PropertyApartment PropertyType = "Apartment / Condo"
	PropertyLoft      PropertyType = "Loft / Industrial Space"
	PropertyOffice    PropertyType = "Office / Workspace"
	PropertyStudio    PropertyType = "Studio / Small Space"
)

var PropertyTypes = []PropertyType{PropertyHouse, PropertyApartment, PropertyLoft, PropertyOffice, PropertyStudio}

func (p PropertyType) Valid() bool {
	for _, v := range PropertyTypes {
		if p == v {
			return true
		}
	}
	return false
}

type BuyerPersona string

const (
	PersonaFirstTime    BuyerPersona = "First-time buyer"
	PersonaFamily       BuyerPersona = "Family with children"
	PersonaProfessional BuyerPersona = "Young professional"
	PersonaInvestor     BuyerPersona = "Investor"
	PersonaLuxury       BuyerPersona = "Luxury buyer"
	PersonaSTRGuest     BuyerPersona = "Short-term rental guest"
)

var BuyerPersonas = []BuyerPersona{
	PersonaFirstTime, PersonaFamily, PersonaProfessional,
	PersonaInvestor, PersonaLuxury, PersonaSTRGuest,
}

func (p BuyerPersona) Valid() bool {
	for _, v := range BuyerPersonas {
		if p == v {
			return true
		}
	}
	return false
}

type StagingStyle string

const (
	StyleModern       StagingStyle = "Modern"
	StyleContemporary StagingStyle = "Contemporary"
	StyleScandinavian StagingStyle = "Scandinavian"
	StyleMinimalist   StagingStyle = "Minimalist"
	StyleLuxury       StagingStyle = "Luxury"
	StyleCozy         StagingStyle = "Cozy / Family-friendly"
	StyleBohemian     StagingStyle = "Bohemian"
	StyleIndustrial   StagingStyle = "Industrial"
	StyleTransitional StagingStyle = "Transitional"
)

// StagingStyles is the full nine-style catalog. Style recommendations are
// only valid when drawn from this set.
var StagingStyles = []StagingStyle{
	StyleModern, StyleContemporary, StyleScandinavian,
	StyleMinimalist, StyleLuxury, StyleCozy,
	StyleBohemian, StyleIndustrial, StyleTransitional,
}

func (s StagingStyle) Valid() bool {
	for _, v := range StagingStyles {
		if s == v {
			return true
		}
	}
	return false
}

type MarketPositioning string

const (
	PositionBudget   MarketPositioning = "Budget / Entry-level"
	PositionMidRange MarketPositioning = "Mid-range"
	PositionPremium  MarketPositioning = "Premium"
	PositionLuxury   MarketPositioning = "Ultra-Luxury"
)

var MarketPositionings = []MarketPositioning{PositionBudget, PositionMidRange, PositionPremium, PositionLuxury}

func (m MarketPositioning) Valid() bool {
	for _, v := range MarketPositionings {
		if m == v {
			return true
		}
	}
	return false
}

// UsagePlatforms are the distribution channels offered in the refine step.
var UsagePlatforms = []string{
	"MLS",
	"Zillow / Realtor.ca",
	"Airbnb / VRBO",
	"Social Media",
	"Investor Presentation",
}

func ValidUsagePlatform(p string) bool {
	for _, v := range UsagePlatforms {
		if p == v {
			return true
		}
	}
	return false
}

// EmotionalTones is the fixed tone palette; the first entry is the default.
var EmotionalTones = []string{
	"Warm & Inviting",
	"Clean & Modern",
	"Aspirational",
	"Calm & Relaxing",
}

func ValidEmotionalTone(t string) bool {
	for _, v := range EmotionalTones {
		if t == v {
			return true
		}
	}
	return false
}
