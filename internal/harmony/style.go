package harmony

import (
	"fmt"
	"strings"
)

// Style is the dress context an outfit is scored under. The same colour
// pair can score differently for casual and formal wear, so the style is
// threaded through scoring as an explicit argument.
type Style string

const (
	StyleCasual Style = "casual"
	StyleFormal Style = "formal"
)

// Styles returns the known styles in canonical order.
func Styles() []Style {
	return []Style{StyleCasual, StyleFormal}
}

// ParseStyle maps a user-supplied string to a canonical Style. Matching
// is case-insensitive and ignores surrounding whitespace.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "casual":
		return StyleCasual, nil
	case "formal":
		return StyleFormal, nil
	}
	return "", fmt.Errorf("unknown style %q (expected casual or formal)", s)
}

// IsFormal reports whether the style is formal wear.
func (s Style) IsFormal() bool {
	return s == StyleFormal
}
