// Package wardrobe defines clothing items and groups them into the
// category buckets the suggestion engine draws from.
package wardrobe

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmylchreest/sartor/internal/colour"
)

// Category identifies which slot of an outfit an item can fill.
type Category string

const (
	CategoryTops        Category = "Tops"
	CategoryBottoms     Category = "Bottoms"
	CategoryFootwear    Category = "Footwear"
	CategoryAccessories Category = "Accessories"
)

// Categories returns the known categories in canonical order.
func Categories() []Category {
	return []Category{CategoryTops, CategoryBottoms, CategoryFootwear, CategoryAccessories}
}

// ParseCategory maps a user-supplied string to a canonical Category.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tops":
		return CategoryTops, nil
	case "bottoms":
		return CategoryBottoms, nil
	case "footwear":
		return CategoryFootwear, nil
	case "accessories":
		return CategoryAccessories, nil
	}
	return "", fmt.Errorf("unknown category %q (expected one of tops, bottoms, footwear, accessories)", s)
}

// Lower returns the category in the lowercase form used in
// human-readable outfit descriptions.
func (c Category) Lower() string {
	return strings.ToLower(string(c))
}

// Item is a single piece of clothing in the wardrobe.
type Item struct {
	ID        string     `json:"id"`
	Category  Category   `json:"category"`
	Colour    colour.HSL `json:"hsl"`
	Hex       string     `json:"hex"`
	Label     string     `json:"label,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// ColourID returns the short colour identifier used when describing the
// item in outfit explanations. The stored hex string is preferred;
// items that arrived as raw HSL fall back to the converted value.
func (it Item) ColourID() string {
	if it.Hex != "" {
		return it.Hex
	}
	return it.Colour.RGB().Hex()
}

// Wardrobe holds items partitioned by category.
type Wardrobe struct {
	Tops        []Item
	Bottoms     []Item
	Footwear    []Item
	Accessories []Item
}

// Partition groups items into category buckets. Category matching is
// case-insensitive; items with an unrecognised category are dropped.
func Partition(items []Item) Wardrobe {
	var w Wardrobe
	for _, it := range items {
		cat, err := ParseCategory(string(it.Category))
		if err != nil {
			continue
		}
		it.Category = cat
		switch cat {
		case CategoryTops:
			w.Tops = append(w.Tops, it)
		case CategoryBottoms:
			w.Bottoms = append(w.Bottoms, it)
		case CategoryFootwear:
			w.Footwear = append(w.Footwear, it)
		case CategoryAccessories:
			w.Accessories = append(w.Accessories, it)
		}
	}
	return w
}

// Size reports the total number of items across all buckets.
func (w Wardrobe) Size() int {
	return len(w.Tops) + len(w.Bottoms) + len(w.Footwear) + len(w.Accessories)
}
