package lab

import "math"

// pow25to7 is 25^7.
const pow25to7 = 6103515625.0

// Delta returns the CIEDE2000 color difference between c1 and c2 using DefaultWeights.
func Delta(c1, c2 Color) float64 {
	return DeltaWeighted(c1, c2, DefaultWeights)
}

// DeltaWeighted returns the CIEDE2000 color difference between c1 and c2.
//
// The arithmetic follows the published reference order so that results agree
// with other implementations to within 1e-10; do not reorder it.
// Inputs with components below 1e150 in magnitude give a finite, non-negative
// result; NaN or infinite components give NaN.
func DeltaWeighted(c1, c2 Color, w Weights) float64 {
	n := (math.Hypot(c1.A, c1.B) + math.Hypot(c2.A, c2.B)) * 0.5
	n = n * n * n * n * n * n * n
	g := 1.0 + 0.5*(1.0-chromaRatio(n))

	chroma1 := math.Hypot(c1.A*g, c1.B)
	chroma2 := math.Hypot(c2.A*g, c2.B)

	// atan2(0, 0) is 0, achromatic colors need no special case.
	hue1 := math.Atan2(c1.B, c1.A*g)
	hue2 := math.Atan2(c2.B, c2.A*g)
	if hue1 < 0.0 {
		hue1 += 2.0 * math.Pi
	}
	if hue2 < 0.0 {
		hue2 += 2.0 * math.Pi
	}

	n = math.Abs(hue2 - hue1)
	// Peers round differently at the discontinuity, so snap to exactly π.
	if math.Pi-1e-14 < n && n < math.Pi+1e-14 {
		n = math.Pi
	}

	hueMean := 0.5*hue1 + 0.5*hue2
	hueHalfDiff := (hue2 - hue1) * 0.5
	if math.Pi < n {
		// The hues straddle 0/2π, take the short path around the circle.
		if 0.0 < hueHalfDiff {
			hueHalfDiff -= math.Pi
		} else {
			hueHalfDiff += math.Pi
		}
		hueMean += math.Pi
	}

	p := 36.0*hueMean - 55.0*math.Pi
	n = (chroma1 + chroma2) * 0.5
	n = n * n * n * n * n * n * n
	// Rotation term, only significant in the blue region.
	rotation := -2.0 * chromaRatio(n) *
		math.Sin(math.Pi/3.0*math.Exp(p*p/(-25.0*math.Pi*math.Pi)))

	n = (c1.L + c2.L) * 0.5
	n = (n - 50.0) * (n - 50.0)
	lightness := (c2.L - c1.L) / (w.KL * (1.0 + 0.015*n/math.Sqrt(20.0+n)))

	t := 1.0 + 0.24*math.Sin(2.0*hueMean+math.Pi/2.0) +
		0.32*math.Sin(3.0*hueMean+8.0*math.Pi/15.0) -
		0.17*math.Sin(hueMean+math.Pi/3.0) -
		0.20*math.Sin(4.0*hueMean+3.0*math.Pi/20.0)

	n = chroma1 + chroma2
	hue := 2.0 * math.Sqrt(chroma1*chroma2) * math.Sin(hueHalfDiff) / (w.KH * (1.0 + 0.0075*n*t))
	chroma := (chroma2 - chroma1) / (w.KC * (1.0 + 0.0225*n))

	return math.Sqrt(lightness*lightness + hue*hue + chroma*chroma + chroma*hue*rotation)
}

// chromaRatio returns sqrt(c7 / (c7 + 25^7)). An overflowed c7 saturates to 1.
func chromaRatio(c7 float64) float64 {
	if math.IsInf(c7, 1) {
		return 1.0
	}
	return math.Sqrt(c7 / (c7 + pow25to7))
}
