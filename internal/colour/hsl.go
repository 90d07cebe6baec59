package colour

import (
	"encoding/json"
	"fmt"
)

// HSL represents a colour as integer hue, saturation and lightness.
// Hue is a degree on the colour wheel in [0,360); saturation and lightness
// are percentages in [0,100]. A wardrobe item's HSL is derived once from
// its sampled colour and never changes.
type HSL struct {
	H int
	S int
	L int
}

// String returns the colour in CSS-like notation, e.g. "hsl(210, 50%, 40%)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// MarshalJSON encodes the colour as the three-element array [h, s, l].
// This is the wire format shared with upload and persistence collaborators.
func (c HSL) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{c.H, c.S, c.L})
}

// UnmarshalJSON decodes a three-element [h, s, l] array.
func (c *HSL) UnmarshalJSON(data []byte) error {
	var v [3]int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid hsl value: %w", err)
	}
	c.H, c.S, c.L = v[0], v[1], v[2]
	return nil
}

// Validate checks the component ranges: hue in [0,360), saturation and
// lightness in [0,100]. The scoring formulas assume these bounds, so
// boundary code validates before handing colours to the core.
func (c HSL) Validate() error {
	if c.H < 0 || c.H >= 360 {
		return fmt.Errorf("hue out of range: %d (want 0-359)", c.H)
	}
	if c.S < 0 || c.S > 100 {
		return fmt.Errorf("saturation out of range: %d (want 0-100)", c.S)
	}
	if c.L < 0 || c.L > 100 {
		return fmt.Errorf("lightness out of range: %d (want 0-100)", c.L)
	}
	return nil
}

// IsNeutral reports whether the colour reads as a neutral: greys and
// near-greys, near-black, near-white, and the muted beige/tan band.
// The rules are independent; any one of them makes the colour neutral.
func (c HSL) IsNeutral() bool {
	if c.S < 12 {
		return true
	}
	if c.L > 85 || c.L < 15 {
		return true
	}
	return c.H >= 30 && c.H <= 60 && c.S < 40
}

// HueDistance calculates the angular distance between two hues on the
// colour wheel. Returns a value between 0 and 180 degrees (shortest path
// around the wheel).
func HueDistance(h1, h2 int) int {
	diff := h1 - h2
	if diff < 0 {
		diff = -diff
	}
	if diff > 180 {
		diff = 360 - diff // Handle wraparound
	}
	return diff
}

// IsAnalogous checks if two hues are analogous (similar position on the
// wheel). Analogous colours are within 30 degrees of each other.
func IsAnalogous(h1, h2 int) bool {
	return HueDistance(h1, h2) <= 30
}

// IsComplementary checks if two hues sit roughly opposite each other on
// the wheel, 150 to 210 degrees apart. The complementary and analogous
// bands never overlap, so at most one relationship holds for a pair.
func IsComplementary(h1, h2 int) bool {
	d := HueDistance(h1, h2)
	return d >= 150 && d <= 210
}
