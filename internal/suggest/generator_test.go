package suggest

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/sartor/internal/colour"
	"github.com/jmylchreest/sartor/internal/harmony"
	"github.com/jmylchreest/sartor/internal/wardrobe"
)

func testItem(id string, cat wardrobe.Category, h, s, l int) wardrobe.Item {
	return wardrobe.Item{
		ID:       id,
		Category: cat,
		Colour:   colour.HSL{H: h, S: s, L: l},
	}
}

// pairWardrobe has exactly one top and one bottom.
func pairWardrobe() wardrobe.Wardrobe {
	return wardrobe.Wardrobe{
		Tops:    []wardrobe.Item{testItem("t1", wardrobe.CategoryTops, 0, 100, 50)},
		Bottoms: []wardrobe.Item{testItem("b1", wardrobe.CategoryBottoms, 180, 100, 50)},
	}
}

// fourBucketWardrobe has exactly one item in every bucket.
func fourBucketWardrobe() wardrobe.Wardrobe {
	return wardrobe.Wardrobe{
		Tops:        []wardrobe.Item{testItem("t1", wardrobe.CategoryTops, 220, 60, 30)},
		Bottoms:     []wardrobe.Item{testItem("b1", wardrobe.CategoryBottoms, 0, 5, 50)},
		Footwear:    []wardrobe.Item{testItem("f1", wardrobe.CategoryFootwear, 200, 50, 60)},
		Accessories: []wardrobe.Item{testItem("a1", wardrobe.CategoryAccessories, 355, 78, 56)},
	}
}

// bigWardrobe is large enough to force the sampling path.
func bigWardrobe() wardrobe.Wardrobe {
	return wardrobe.Wardrobe{
		Tops: []wardrobe.Item{
			testItem("t1", wardrobe.CategoryTops, 220, 60, 30),
			testItem("t2", wardrobe.CategoryTops, 0, 100, 50),
			testItem("t3", wardrobe.CategoryTops, 45, 20, 50),
		},
		Bottoms: []wardrobe.Item{
			testItem("b1", wardrobe.CategoryBottoms, 0, 0, 50),
			testItem("b2", wardrobe.CategoryBottoms, 180, 100, 50),
			testItem("b3", wardrobe.CategoryBottoms, 210, 50, 40),
		},
		Footwear: []wardrobe.Item{
			testItem("f1", wardrobe.CategoryFootwear, 0, 0, 10),
			testItem("f2", wardrobe.CategoryFootwear, 30, 30, 60),
		},
		Accessories: []wardrobe.Item{
			testItem("a1", wardrobe.CategoryAccessories, 355, 78, 56),
			testItem("a2", wardrobe.CategoryAccessories, 120, 40, 45),
		},
	}
}

func TestGenerateEmptyWardrobe(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)))

	got := g.Generate(wardrobe.Wardrobe{}, harmony.StyleCasual, 3)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestGenerateNoBaseItems(t *testing.T) {
	// Footwear and accessories alone cannot anchor an outfit.
	w := wardrobe.Wardrobe{
		Footwear:    []wardrobe.Item{testItem("f1", wardrobe.CategoryFootwear, 0, 0, 10)},
		Accessories: []wardrobe.Item{testItem("a1", wardrobe.CategoryAccessories, 355, 78, 56)},
	}

	got := New(rand.New(rand.NewSource(1))).Generate(w, harmony.StyleFormal, 3)
	require.Empty(t, got)
}

func TestGenerateZeroMax(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)))

	require.Empty(t, g.Generate(pairWardrobe(), harmony.StyleCasual, 0))
	require.Empty(t, g.Generate(pairWardrobe(), harmony.StyleCasual, -1))
}

func TestGenerateSinglePair(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)))

	got := g.Generate(pairWardrobe(), harmony.StyleCasual, 3)
	require.Len(t, got, 1, "one top and one bottom admit exactly one combination")

	cand := got[0]
	require.NotEmpty(t, cand.ID)
	require.Equal(t, harmony.StyleCasual, cand.Style)
	require.Positive(t, cand.Timestamp)

	ids := []string{cand.Items[0].ID, cand.Items[1].ID}
	require.ElementsMatch(t, []string{"t1", "b1"}, ids)

	// The candidate carries exactly what the scorer reports.
	res := harmony.ScoreOutfit(cand.Items, harmony.StyleCasual)
	require.Equal(t, res.Score, cand.Score)
	require.Equal(t, res.Explanation, cand.Explanation)
	require.Equal(t, res.Details, cand.Details)
}

func TestGenerateSamplerDeduplicates(t *testing.T) {
	// Disable enumeration so the random sampler runs even on a tiny
	// wardrobe; repeated draws of the only possible combination must
	// collapse to a single candidate.
	g := NewWithConfig(rand.New(rand.NewSource(7)), Config{Attempts: 50, EnumerationThreshold: 0})

	got := g.Generate(pairWardrobe(), harmony.StyleFormal, 10)
	require.Len(t, got, 1)
}

func TestGenerateEnumeratesSmallWardrobe(t *testing.T) {
	g := New(rand.New(rand.NewSource(3)))

	got := g.Generate(fourBucketWardrobe(), harmony.StyleFormal, 10)

	// One item per bucket yields four distinct item sets: the base
	// pair, base+footwear, base+accessory and the full outfit.
	wantKeys := []string{"b1,t1", "b1,f1,t1", "a1,b1,t1", "a1,b1,f1,t1"}
	gotKeys := make([]string, len(got))
	for i, c := range got {
		gotKeys[i] = dedupKey(c.Items)
	}
	require.ElementsMatch(t, wantKeys, gotKeys)

	for i, c := range got {
		require.GreaterOrEqual(t, len(c.Items), 2)
		require.NotEmpty(t, c.ID)
		if i > 0 {
			require.GreaterOrEqual(t, got[i-1].Score, c.Score, "candidates must be sorted by score descending")
		}
	}
}

func TestGenerateTruncatesToMax(t *testing.T) {
	w := fourBucketWardrobe()

	all := New(rand.New(rand.NewSource(1))).Generate(w, harmony.StyleFormal, 10)
	top := New(rand.New(rand.NewSource(1))).Generate(w, harmony.StyleFormal, 2)

	require.Len(t, all, 4)
	require.Len(t, top, 2)
	for i := range top {
		require.Equal(t, all[i].Score, top[i].Score)
		require.Equal(t, dedupKey(all[i].Items), dedupKey(top[i].Items))
	}
}

func TestGenerateSeededSamplingIsReproducible(t *testing.T) {
	w := bigWardrobe()
	require.Greater(t, w.Size(), DefaultConfig().EnumerationThreshold, "fixture must exercise the sampling path")

	a := New(rand.New(rand.NewSource(42))).Generate(w, harmony.StyleCasual, 5)
	b := New(rand.New(rand.NewSource(42))).Generate(w, harmony.StyleCasual, 5)

	require.NotEmpty(t, a)
	require.Equal(t, len(a), len(b))
	for i := range a {
		require.Equal(t, dedupKey(a[i].Items), dedupKey(b[i].Items))
		require.Equal(t, a[i].Score, b[i].Score)
		require.Equal(t, a[i].Explanation, b[i].Explanation)
	}
}

func TestGenerateSampledCandidatesAreDistinct(t *testing.T) {
	got := New(rand.New(rand.NewSource(99))).Generate(bigWardrobe(), harmony.StyleFormal, 5)
	require.NotEmpty(t, got)

	seen := make(map[string]bool)
	for i, c := range got {
		require.Equal(t, harmony.StyleFormal, c.Style)
		require.GreaterOrEqual(t, len(c.Items), 2)

		key := dedupKey(c.Items)
		require.False(t, seen[key], "duplicate item set %s", key)
		seen[key] = true

		if i > 0 {
			require.GreaterOrEqual(t, got[i-1].Score, c.Score)
		}
	}
}

func TestDedupKeyOrderInsensitive(t *testing.T) {
	a := testItem("t1", wardrobe.CategoryTops, 0, 100, 50)
	b := testItem("b1", wardrobe.CategoryBottoms, 180, 100, 50)

	require.Equal(t, dedupKey([]wardrobe.Item{a, b}), dedupKey([]wardrobe.Item{b, a}))
	require.Equal(t, "b1,t1", dedupKey([]wardrobe.Item{a, b}))
}
