package lab

// Color is a CIE L*a*b* color. L is conventionally in [0, 100], a and b are unbounded.
type Color struct {
	L float64 `json:"l" yaml:"l"`
	A float64 `json:"a" yaml:"a"`
	B float64 `json:"b" yaml:"b"`
}

// Weights are the parametric factors of ΔE2000, adjusted for viewing
// conditions such as texture or background.
type Weights struct {
	KL float64 `json:"kl" yaml:"kl"`
	KC float64 `json:"kc" yaml:"kc"`
	KH float64 `json:"kh" yaml:"kh"`
}

// DefaultWeights are the reference conditions, k_L = k_C = k_H = 1.
var DefaultWeights = Weights{KL: 1.0, KC: 1.0, KH: 1.0}

// DistanceTo returns the ΔE2000 difference from c to other with default weights.
func (c Color) DistanceTo(other Color) float64 {
	return Delta(c, other)
}
