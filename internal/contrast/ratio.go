package contrast

import "math"

// Linearize applies the sRGB transfer function to a channel in [0,1].
func Linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the WCAG relative luminance of c in [0,1].
func RelativeLuminance(c RGB) float64 {
	r := Linearize(float64(c.R) / 255.0)
	g := Linearize(float64(c.G) / 255.0)
	b := Linearize(float64(c.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Ratio returns the WCAG contrast ratio between two colors, from 1 to 21.
func Ratio(a, b RGB) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastRatio parses two hex colors and returns their contrast ratio.
func ContrastRatio(hexA, hexB string) (float64, error) {
	a, err := ParseHex(hexA)
	if err != nil {
		return 0, err
	}
	b, err := ParseHex(hexB)
	if err != nil {
		return 0, err
	}
	return Ratio(a, b), nil
}

// Thresholds holds the minimum ratios for normal and large text.
type Thresholds struct {
	Normal float64
	Large  float64
}

// AA is the WCAG 2.x level AA pair: 4.5:1 normal text, 3:1 large text.
var AA = Thresholds{Normal: 4.5, Large: 3.0}

// Evaluate reports whether ratio meets the normal and large text minimums.
func (t Thresholds) Evaluate(ratio float64) (normalPass, largePass bool) {
	return ratio >= t.Normal, ratio >= t.Large
}
