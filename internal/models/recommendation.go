package models

// StyleRecommendation is an ephemeral suggestion pair member produced by the
// recommendation service; it is never persisted, only used to pre-select a
// style in the wizard.
type StyleRecommendation struct {
	Style     StagingStyle `json:"style"`
	Rationale string       `json:"rationale"`
}
