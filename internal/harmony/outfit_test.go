package harmony

import (
	"reflect"
	"testing"

	"github.com/jmylchreest/sartor/internal/colour"
	"github.com/jmylchreest/sartor/internal/wardrobe"
)

func item(cat wardrobe.Category, hex string, h, s, l int) wardrobe.Item {
	return wardrobe.Item{
		ID:       hex,
		Category: cat,
		Colour:   colour.HSL{H: h, S: s, L: l},
		Hex:      hex,
	}
}

func TestScoreOutfitTooSmall(t *testing.T) {
	for _, items := range [][]wardrobe.Item{
		nil,
		{item(wardrobe.CategoryTops, "#ff0000", 0, 100, 50)},
	} {
		got := ScoreOutfit(items, StyleCasual)
		if got.Score != 0 {
			t.Errorf("Score = %v, want 0", got.Score)
		}
		if got.Explanation != "Not enough items for scoring" {
			t.Errorf("Explanation = %q", got.Explanation)
		}
		if got.Details.HarmonyDetails == nil || len(got.Details.HarmonyDetails) != 0 {
			t.Errorf("HarmonyDetails = %#v, want empty slice", got.Details.HarmonyDetails)
		}
	}
}

func TestScoreOutfitCasualComplementary(t *testing.T) {
	items := []wardrobe.Item{
		item(wardrobe.CategoryTops, "#ff0000", 0, 100, 50),
		item(wardrobe.CategoryBottoms, "#00ffff", 180, 100, 50),
	}

	got := ScoreOutfit(items, StyleCasual)

	// 2 for the complementary pair, +0.5 casual vibrancy bonus.
	if got.Score != 2.5 {
		t.Errorf("Score = %v, want 2.5", got.Score)
	}
	wantExpl := "#ff0000 tops + #00ffff bottoms — complementary colors — vibrant and expressive"
	if got.Explanation != wantExpl {
		t.Errorf("Explanation = %q, want %q", got.Explanation, wantExpl)
	}
	wantDetails := Details{
		HarmonyDetails: []string{"tops + bottoms: complementary colors"},
		NeutralCount:   0,
		AvgSaturation:  100,
	}
	if !reflect.DeepEqual(got.Details, wantDetails) {
		t.Errorf("Details = %+v, want %+v", got.Details, wantDetails)
	}
}

func TestScoreOutfitFormalAllNeutral(t *testing.T) {
	items := []wardrobe.Item{
		item(wardrobe.CategoryTops, "#808080", 0, 0, 50),
		item(wardrobe.CategoryBottoms, "#1a1a1a", 0, 0, 10),
	}

	got := ScoreOutfit(items, StyleFormal)

	// 1 analogous + 1 neutral pair bonus + 0.5 per neutral item.
	if got.Score != 3 {
		t.Errorf("Score = %v, want 3", got.Score)
	}
	wantExpl := "#808080 tops + #1a1a1a bottoms — All neutral palette; analogous harmony — professional and sophisticated"
	if got.Explanation != wantExpl {
		t.Errorf("Explanation = %q, want %q", got.Explanation, wantExpl)
	}
	wantDetails := []string{
		"tops + bottoms: analogous harmony",
		"tops + bottoms: neutral pairing",
	}
	if !reflect.DeepEqual(got.Details.HarmonyDetails, wantDetails) {
		t.Errorf("HarmonyDetails = %v, want %v", got.Details.HarmonyDetails, wantDetails)
	}
	if got.Details.NeutralCount != 2 {
		t.Errorf("NeutralCount = %d, want 2", got.Details.NeutralCount)
	}
	if got.Details.AvgSaturation != 0 {
		t.Errorf("AvgSaturation = %d, want 0", got.Details.AvgSaturation)
	}
}

func TestScoreOutfitFormalThreeItems(t *testing.T) {
	items := []wardrobe.Item{
		item(wardrobe.CategoryTops, "#1f3d66", 220, 60, 30),
		item(wardrobe.CategoryBottoms, "#808080", 0, 5, 50),
		item(wardrobe.CategoryFootwear, "#5c9ed6", 200, 50, 60),
	}

	got := ScoreOutfit(items, StyleFormal)

	// Pairs: tops+bottoms 1 (neutral), tops+footwear 1 (analogous),
	// bottoms+footwear 3 (complementary + neutral); +0.5 for the one
	// neutral item.
	if got.Score != 5.5 {
		t.Errorf("Score = %v, want 5.5", got.Score)
	}
	wantDetails := []string{
		"tops + bottoms: neutral pairing",
		"tops + footwear: analogous harmony",
		"bottoms + footwear: complementary colors",
		"bottoms + footwear: neutral pairing",
	}
	if !reflect.DeepEqual(got.Details.HarmonyDetails, wantDetails) {
		t.Errorf("HarmonyDetails = %v, want %v", got.Details.HarmonyDetails, wantDetails)
	}
	wantExpl := "#1f3d66 tops + #808080 bottoms + #5c9ed6 footwear — 1 neutral item(s) provide balance; neutral pairing — professional and sophisticated"
	if got.Explanation != wantExpl {
		t.Errorf("Explanation = %q, want %q", got.Explanation, wantExpl)
	}
	if got.Details.NeutralCount != 1 {
		t.Errorf("NeutralCount = %d, want 1", got.Details.NeutralCount)
	}
	if got.Details.AvgSaturation != 38 {
		t.Errorf("AvgSaturation = %d, want 38", got.Details.AvgSaturation)
	}
}

func TestScoreOutfitExperimental(t *testing.T) {
	tests := []struct {
		name      string
		style     Style
		wantScore float64
		wantExpl  string
	}{
		{
			name:      "casual gets vibrancy bonus",
			style:     StyleCasual,
			wantScore: 0.5,
			wantExpl:  "#cc3333 tops + #66cc33 bottoms — experimental color combination for casual wear",
		},
		{
			name:      "formal gets brightness penalty",
			style:     StyleFormal,
			wantScore: -1,
			wantExpl:  "#cc3333 tops + #66cc33 bottoms — experimental color combination for formal wear",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []wardrobe.Item{
				item(wardrobe.CategoryTops, "#cc3333", 0, 60, 50),
				item(wardrobe.CategoryBottoms, "#66cc33", 100, 60, 50),
			}
			got := ScoreOutfit(items, tt.style)
			if got.Score != tt.wantScore {
				t.Errorf("Score = %v, want %v", got.Score, tt.wantScore)
			}
			if got.Explanation != tt.wantExpl {
				t.Errorf("Explanation = %q, want %q", got.Explanation, tt.wantExpl)
			}
			if len(got.Details.HarmonyDetails) != 0 {
				t.Errorf("HarmonyDetails = %v, want none", got.Details.HarmonyDetails)
			}
		})
	}
}

func TestScoreOutfitFormalBrightnessPenalty(t *testing.T) {
	items := []wardrobe.Item{
		item(wardrobe.CategoryTops, "#ff0000", 0, 100, 50),
		item(wardrobe.CategoryBottoms, "#00ff00", 120, 100, 50),
	}

	got := ScoreOutfit(items, StyleFormal)
	if got.Score != -1 {
		t.Errorf("Score = %v, want -1", got.Score)
	}
	if got.Details.AvgSaturation != 100 {
		t.Errorf("AvgSaturation = %d, want 100", got.Details.AvgSaturation)
	}
}

func TestScoreOutfitNeutralClauseWithoutDetails(t *testing.T) {
	// Casual pairing where the only observation is a neutral item: the
	// pair itself scores zero so no detail is recorded, but the clause
	// still mentions the neutral balance.
	items := []wardrobe.Item{
		item(wardrobe.CategoryTops, "#808080", 0, 5, 50),
		item(wardrobe.CategoryBottoms, "#66cc33", 100, 60, 50),
	}

	got := ScoreOutfit(items, StyleCasual)
	if got.Score != 0 {
		t.Errorf("Score = %v, want 0", got.Score)
	}
	wantExpl := "#808080 tops + #66cc33 bottoms — 1 neutral item(s) provide balance"
	if got.Explanation != wantExpl {
		t.Errorf("Explanation = %q, want %q", got.Explanation, wantExpl)
	}
	if len(got.Details.HarmonyDetails) != 0 {
		t.Errorf("HarmonyDetails = %v, want none", got.Details.HarmonyDetails)
	}
	if got.Details.NeutralCount != 1 {
		t.Errorf("NeutralCount = %d, want 1", got.Details.NeutralCount)
	}
}

func TestScoreOutfitDeterministic(t *testing.T) {
	items := []wardrobe.Item{
		item(wardrobe.CategoryTops, "#1f3d66", 220, 60, 30),
		item(wardrobe.CategoryBottoms, "#808080", 0, 5, 50),
		item(wardrobe.CategoryFootwear, "#5c9ed6", 200, 50, 60),
		item(wardrobe.CategoryAccessories, "#e63946", 355, 78, 56),
	}

	first := ScoreOutfit(items, StyleFormal)
	for i := 0; i < 5; i++ {
		if got := ScoreOutfit(items, StyleFormal); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}
