package harmony

import (
	"github.com/jmylchreest/sartor/internal/colour"
)

// PairScore computes the harmony score between two colours under a
// style context. Rules accumulate independently:
//
//   - complementary hues (150-210 degrees apart) score 2, otherwise
//     analogous hues (within 30 degrees) score 1; the bands never
//     overlap so at most one fires
//   - a light/dark contrast (one lightness below 30, the other above
//     70) adds 1
//   - a neutral colour on either side adds 1 for formal wear only;
//     casual outfits reward vibrancy at the outfit level instead
//
// The result is 0 when no rule fires, up to 4 for a formal pair.
func PairScore(a, b colour.HSL, style Style) float64 {
	var score float64

	switch {
	case colour.IsComplementary(a.H, b.H):
		score += 2
	case colour.IsAnalogous(a.H, b.H):
		score++
	}

	if highContrast(a, b) {
		score++
	}

	if style.IsFormal() && (a.IsNeutral() || b.IsNeutral()) {
		score++
	}

	return score
}

func highContrast(a, b colour.HSL) bool {
	return (a.L < 30 && b.L > 70) || (b.L < 30 && a.L > 70)
}
