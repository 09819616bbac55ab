package types

// Concept is the structured design proposal produced by the generative
// provider for a free-text prompt.
type Concept struct {
	Theme        string   `json:"theme"`
	ColorPalette []string `json:"colorPalette"`
	KeyFeatures  []string `json:"keyFeatures"`
	Materials    []string `json:"materials"`
	Description  string   `json:"description"`
	DesignPlan   []string `json:"designPlan"`
}
