package insight

// Level is a coarse qualitative confidence rating.
type Level string

const (
	Low    Level = "low"
	Medium Level = "medium"
	High   Level = "high"
)

// Confidence pairs a level with its display label.
type Confidence struct {
	Level Level  `json:"level"`
	Label string `json:"label"`
}

// ConfidenceLevel rates an iteration count. It reflects only how many runs
// are averaged, not their variance.
func ConfidenceLevel(iterations int) Confidence {
	switch {
	case iterations >= 50:
		return Confidence{Level: High, Label: "High"}
	case iterations >= 20:
		return Confidence{Level: Medium, Label: "Medium"}
	default:
		return Confidence{Level: Low, Label: "Low"}
	}
}
