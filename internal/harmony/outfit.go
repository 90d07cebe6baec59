// Package harmony scores colour combinations against colour-theory
// rules. Pairs of colours are scored for complementary, analogous,
// contrast and neutral relationships, and whole outfits aggregate the
// pairwise scores with style-level adjustments and a human-readable
// rationale.
package harmony

import (
	"fmt"
	"math"
	"strings"

	"github.com/jmylchreest/sartor/internal/colour"
	"github.com/jmylchreest/sartor/internal/wardrobe"
)

// notEnoughItems is returned verbatim when an outfit is too small to
// score. Callers display it as-is.
const notEnoughItems = "Not enough items for scoring"

// Details carries the raw scoring observations behind an outfit score,
// for display and inspection alongside the prose explanation.
type Details struct {
	HarmonyDetails []string `json:"harmonyDetails"`
	NeutralCount   int      `json:"neutralCount"`
	AvgSaturation  int      `json:"avgSaturation"`
}

// Result is the outcome of scoring one outfit.
type Result struct {
	Score       float64
	Explanation string
	Details     Details
}

// ScoreOutfit scores a candidate outfit under the given style. Every
// unordered pair of items contributes its PairScore to the total; a
// style adjustment is applied once at the end. Outfits with fewer than
// two items score zero with a sentinel explanation rather than failing.
//
// ScoreOutfit is pure: identical inputs always produce an identical
// Result.
func ScoreOutfit(items []wardrobe.Item, style Style) Result {
	if len(items) < 2 {
		return Result{
			Explanation: notEnoughItems,
			Details:     Details{HarmonyDetails: []string{}},
		}
	}

	var total float64
	details := []string{}
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			a, b := items[i], items[j]
			pair := PairScore(a.Colour, b.Colour, style)
			total += pair
			if pair <= 0 {
				continue
			}

			// Qualitative notes for any pair that scored. The neutral
			// note is recorded for both styles even though it only
			// contributes to the formal score.
			prefix := a.Category.Lower() + " + " + b.Category.Lower() + ": "
			switch {
			case colour.IsComplementary(a.Colour.H, b.Colour.H):
				details = append(details, prefix+"complementary colors")
			case colour.IsAnalogous(a.Colour.H, b.Colour.H):
				details = append(details, prefix+"analogous harmony")
			}
			if a.Colour.IsNeutral() || b.Colour.IsNeutral() {
				details = append(details, prefix+"neutral pairing")
			}
		}
	}

	neutrals := 0
	satSum := 0
	for _, it := range items {
		if it.Colour.IsNeutral() {
			neutrals++
		}
		satSum += it.Colour.S
	}
	meanSat := float64(satSum) / float64(len(items))

	if style.IsFormal() {
		total += 0.5 * float64(neutrals)
		if meanSat > 55 {
			total--
		}
	} else if meanSat > 40 {
		total += 0.5
	}

	return Result{
		Score:       total,
		Explanation: buildExplanation(items, style, details, neutrals, meanSat),
		Details: Details{
			HarmonyDetails: details,
			NeutralCount:   neutrals,
			AvgSaturation:  int(math.Round(meanSat)),
		},
	}
}

// buildExplanation renders the deterministic one-line rationale for a
// scored outfit.
func buildExplanation(items []wardrobe.Item, style Style, details []string, neutrals int, meanSat float64) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.ColourID() + " " + it.Category.Lower()
	}
	listed := strings.Join(parts, " + ")

	if len(details) == 0 && neutrals == 0 {
		return fmt.Sprintf("%s — experimental color combination for %s wear", listed, style)
	}

	var clause []string
	if neutrals > 0 {
		if neutrals == len(items) {
			clause = append(clause, "All neutral palette")
		} else {
			clause = append(clause, fmt.Sprintf("%d neutral item(s) provide balance", neutrals))
		}
	}
	if len(details) > 0 {
		// Only the first recorded note is surfaced, without its
		// "category + category:" prefix.
		label := details[0]
		if idx := strings.Index(label, ": "); idx >= 0 {
			label = label[idx+2:]
		}
		clause = append(clause, label)
	}

	text := strings.Join(clause, "; ")
	switch {
	case style.IsFormal() && neutrals > 0:
		text += " — professional and sophisticated"
	case !style.IsFormal() && meanSat > 50:
		text += " — vibrant and expressive"
	}

	return listed + " — " + text
}
