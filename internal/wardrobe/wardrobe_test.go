package wardrobe

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jmylchreest/sartor/internal/colour"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{name: "canonical", input: "Tops", want: CategoryTops},
		{name: "lowercase", input: "bottoms", want: CategoryBottoms},
		{name: "uppercase", input: "FOOTWEAR", want: CategoryFootwear},
		{name: "mixed case", input: "aCcEsSoRiEs", want: CategoryAccessories},
		{name: "surrounding whitespace", input: "  tops  ", want: CategoryTops},
		{name: "unknown", input: "hats", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCategory(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCategoryLower(t *testing.T) {
	for _, cat := range Categories() {
		if got := cat.Lower(); got != strings.ToLower(string(cat)) {
			t.Errorf("%s.Lower() = %q", cat, got)
		}
	}
}

func TestPartition(t *testing.T) {
	items := []Item{
		{ID: "1", Category: CategoryTops},
		{ID: "2", Category: "bottoms"},
		{ID: "3", Category: "FOOTWEAR"},
		{ID: "4", Category: CategoryAccessories},
		{ID: "5", Category: CategoryTops},
		{ID: "6", Category: "hats"},
	}

	w := Partition(items)

	if got := len(w.Tops); got != 2 {
		t.Errorf("len(Tops) = %d, want 2", got)
	}
	if got := len(w.Bottoms); got != 1 {
		t.Errorf("len(Bottoms) = %d, want 1", got)
	}
	if got := len(w.Footwear); got != 1 {
		t.Errorf("len(Footwear) = %d, want 1", got)
	}
	if got := len(w.Accessories); got != 1 {
		t.Errorf("len(Accessories) = %d, want 1", got)
	}

	// Unknown categories are dropped, and non-canonical spellings are
	// normalised on the way in.
	if got := w.Size(); got != 5 {
		t.Errorf("Size() = %d, want 5", got)
	}
	if w.Bottoms[0].Category != CategoryBottoms {
		t.Errorf("Bottoms[0].Category = %q, want %q", w.Bottoms[0].Category, CategoryBottoms)
	}
}

func TestItemColourID(t *testing.T) {
	withHex := Item{Hex: "#336699", Colour: colour.HSL{H: 0, S: 100, L: 50}}
	if got := withHex.ColourID(); got != "#336699" {
		t.Errorf("ColourID() = %q, want #336699", got)
	}

	fromHSL := Item{Colour: colour.HSL{H: 0, S: 100, L: 50}}
	if got := fromHSL.ColourID(); got != "#ff0000" {
		t.Errorf("ColourID() = %q, want #ff0000", got)
	}
}

func TestItemJSON(t *testing.T) {
	created := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	it := Item{
		ID:        "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Category:  CategoryTops,
		Colour:    colour.HSL{H: 210, S: 50, L: 40},
		Hex:       "#336699",
		Label:     "denim shirt",
		CreatedAt: created,
	}

	data, err := json.Marshal(it)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	for _, want := range []string{`"id":"01ARZ3NDEKTSV4RRFFQ69G5FAV"`, `"category":"Tops"`, `"hsl":[210,50,40]`, `"hex":"#336699"`, `"label":"denim shirt"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Marshal output missing %s: %s", want, data)
		}
	}

	var back Item
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !back.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", back.CreatedAt, created)
	}
	if back.Colour != it.Colour {
		t.Errorf("Colour = %v, want %v", back.Colour, it.Colour)
	}
}
