package lab

import "math"

// Palette is an ordered set of reference colors.
type Palette []Color

// Nearest returns the index of the palette entry closest to c and its ΔE2000 distance.
// The first entry wins on ties. An empty palette returns -1 and +Inf.
func (p Palette) Nearest(c Color) (int, float64) {
	return p.NearestWeighted(c, DefaultWeights)
}

// NearestWeighted is Nearest with explicit weights.
func (p Palette) NearestWeighted(c Color, w Weights) (int, float64) {
	closest := -1
	closestDistance := math.Inf(1)
	for i, entry := range p {
		distance := DeltaWeighted(c, entry, w)
		if distance < closestDistance {
			closest = i
			closestDistance = distance
			if distance == 0 {
				break
			}
		}
	}
	return closest, closestDistance
}
