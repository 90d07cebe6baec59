package harmony

import (
	"testing"

	"github.com/jmylchreest/sartor/internal/colour"
)

func TestPairScore(t *testing.T) {
	tests := []struct {
		name  string
		a, b  colour.HSL
		style Style
		want  float64
	}{
		{
			name:  "complementary with contrast",
			a:     colour.HSL{H: 0, S: 80, L: 20},
			b:     colour.HSL{H: 180, S: 80, L: 80},
			style: StyleCasual,
			want:  3, // 2 complementary + 1 contrast
		},
		{
			name:  "identical hues are analogous",
			a:     colour.HSL{H: 120, S: 60, L: 50},
			b:     colour.HSL{H: 120, S: 60, L: 50},
			style: StyleCasual,
			want:  1,
		},
		{
			name:  "formal maximum",
			a:     colour.HSL{H: 0, S: 5, L: 20},
			b:     colour.HSL{H: 180, S: 80, L: 80},
			style: StyleFormal,
			want:  4, // complementary + contrast + neutral
		},
		{
			name:  "neutral ignored for casual",
			a:     colour.HSL{H: 0, S: 5, L: 20},
			b:     colour.HSL{H: 180, S: 80, L: 80},
			style: StyleCasual,
			want:  3,
		},
		{
			name:  "neutral alone under formal",
			a:     colour.HSL{H: 220, S: 60, L: 30},
			b:     colour.HSL{H: 0, S: 5, L: 50},
			style: StyleFormal,
			want:  1,
		},
		{
			name:  "neutral alone under casual",
			a:     colour.HSL{H: 220, S: 60, L: 30},
			b:     colour.HSL{H: 0, S: 5, L: 50},
			style: StyleCasual,
			want:  0,
		},
		{
			name:  "analogous across hue wrap",
			a:     colour.HSL{H: 350, S: 70, L: 50},
			b:     colour.HSL{H: 10, S: 70, L: 50},
			style: StyleCasual,
			want:  1,
		},
		{
			name:  "no rule fires",
			a:     colour.HSL{H: 0, S: 60, L: 50},
			b:     colour.HSL{H: 100, S: 60, L: 50},
			style: StyleCasual,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PairScore(tt.a, tt.b, tt.style)
			if got != tt.want {
				t.Errorf("PairScore(%v, %v, %s) = %v, want %v", tt.a, tt.b, tt.style, got, tt.want)
			}

			// Pair scoring is order-independent.
			if rev := PairScore(tt.b, tt.a, tt.style); rev != got {
				t.Errorf("PairScore not symmetric: %v vs %v", got, rev)
			}
		})
	}
}
