package models

// ModerationLabel is a single label reported by the moderation service.
// Field names follow the service's own casing so the JSON relayed to callers
// matches what the service returns.
type ModerationLabel struct {
	Confidence    float32 `json:"Confidence"`
	Name          string  `json:"Name"`
	ParentName    string  `json:"ParentName"`
	TaxonomyLevel int32   `json:"TaxonomyLevel,omitempty"`
}
