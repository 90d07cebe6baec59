// Package suggest generates ranked outfit suggestions from a wardrobe.
// A bounded random sampler draws category-respecting combinations,
// scores them with the harmony scorer, deduplicates by item set and
// returns the top-scoring candidates. Small wardrobes are enumerated
// exhaustively instead, which keeps the result deterministic without
// changing the scoring or dedup contracts.
package suggest

import (
	"io"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/jmylchreest/sartor/internal/harmony"
	"github.com/jmylchreest/sartor/internal/wardrobe"
)

// Candidate is one scored outfit suggestion.
type Candidate struct {
	ID          string          `json:"id"`
	Items       []wardrobe.Item `json:"items"`
	Score       float64         `json:"score"`
	Explanation string          `json:"explanation"`
	Details     harmony.Details `json:"details"`
	Style       harmony.Style   `json:"style"`
	Timestamp   int64           `json:"timestamp"`
}

// Config tunes candidate generation.
type Config struct {
	// Attempts bounds the sampling loop of a single Generate call.
	Attempts int

	// EnumerationThreshold is the wardrobe size at or below which every
	// valid combination is enumerated instead of sampled.
	EnumerationThreshold int
}

// DefaultConfig returns the production generation settings.
func DefaultConfig() Config {
	return Config{
		Attempts:             200,
		EnumerationThreshold: 8,
	}
}

// Generator produces outfit candidates. It is not safe for concurrent
// use; create one per goroutine or serialise calls.
type Generator struct {
	rng     *rand.Rand
	entropy io.Reader
	cfg     Config
}

// New returns a Generator using the supplied random source and default
// configuration. A nil rng falls back to a time-seeded source; tests
// pass a seeded rand.Rand to make generation reproducible.
func New(rng *rand.Rand) *Generator {
	return NewWithConfig(rng, DefaultConfig())
}

// NewWithConfig returns a Generator with explicit configuration. A
// non-positive attempt budget falls back to the default.
func NewWithConfig(rng *rand.Rand, cfg Config) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Attempts <= 0 {
		cfg.Attempts = DefaultConfig().Attempts
	}
	return &Generator{
		rng:     rng,
		entropy: ulid.Monotonic(rng, 0),
		cfg:     cfg,
	}
}

// NewDefault returns a production Generator with a time-seeded random
// source.
func NewDefault() *Generator {
	return New(nil)
}

// Generate produces up to maxSuggestions distinct outfit candidates for
// the given style, ordered by score descending. Fewer candidates, or
// none, may be returned for small or narrowly-categorised wardrobes;
// that is not an error.
func (g *Generator) Generate(w wardrobe.Wardrobe, style harmony.Style, maxSuggestions int) []Candidate {
	if maxSuggestions <= 0 {
		return []Candidate{}
	}
	if len(w.Tops) == 0 && len(w.Bottoms) == 0 {
		// No viable base to build an outfit on.
		return []Candidate{}
	}

	var candidates []Candidate
	if w.Size() <= g.cfg.EnumerationThreshold {
		candidates = g.enumerate(w, style)
	} else {
		candidates = g.sample(w, style, maxSuggestions)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}
	return candidates
}

// sample draws random combinations until enough distinct candidates are
// collected or the attempt budget runs out.
func (g *Generator) sample(w wardrobe.Wardrobe, style harmony.Style, max int) []Candidate {
	accepted := []Candidate{}
	seen := make(map[string]struct{})

	for attempt := 0; attempt < g.cfg.Attempts && len(accepted) < max; attempt++ {
		items := g.draw(w)
		if len(items) < 2 {
			continue
		}
		if cand, ok := g.admit(items, style, seen); ok {
			accepted = append(accepted, cand)
		}
	}
	return accepted
}

// draw assembles one random combination: a top and a bottom whenever
// those buckets are populated, footwear with probability 0.7 and an
// accessory with probability 0.5.
func (g *Generator) draw(w wardrobe.Wardrobe) []wardrobe.Item {
	items := make([]wardrobe.Item, 0, 4)
	if len(w.Tops) > 0 {
		items = append(items, w.Tops[g.rng.Intn(len(w.Tops))])
	}
	if len(w.Bottoms) > 0 {
		items = append(items, w.Bottoms[g.rng.Intn(len(w.Bottoms))])
	}
	if len(w.Footwear) > 0 && g.rng.Float64() < 0.7 {
		items = append(items, w.Footwear[g.rng.Intn(len(w.Footwear))])
	}
	if len(w.Accessories) > 0 && g.rng.Float64() < 0.5 {
		items = append(items, w.Accessories[g.rng.Intn(len(w.Accessories))])
	}
	return items
}

// enumerate walks every category-respecting combination of a small
// wardrobe. Tops and bottoms are always included when their buckets are
// populated; footwear and accessories are optional slots.
func (g *Generator) enumerate(w wardrobe.Wardrobe, style harmony.Style) []Candidate {
	tops := requiredPicks(w.Tops)
	bottoms := requiredPicks(w.Bottoms)
	footwear := optionalPicks(w.Footwear)
	accessories := optionalPicks(w.Accessories)

	accepted := []Candidate{}
	seen := make(map[string]struct{})
	for _, t := range tops {
		for _, b := range bottoms {
			for _, f := range footwear {
				for _, a := range accessories {
					items := gather(t, b, f, a)
					if len(items) < 2 {
						continue
					}
					if cand, ok := g.admit(items, style, seen); ok {
						accepted = append(accepted, cand)
					}
				}
			}
		}
	}
	return accepted
}

// admit deduplicates by item set and wraps a scored draw into a
// Candidate.
func (g *Generator) admit(items []wardrobe.Item, style harmony.Style, seen map[string]struct{}) (Candidate, bool) {
	key := dedupKey(items)
	if _, dup := seen[key]; dup {
		return Candidate{}, false
	}
	seen[key] = struct{}{}

	res := harmony.ScoreOutfit(items, style)
	return Candidate{
		ID:          g.newID(),
		Items:       items,
		Score:       res.Score,
		Explanation: res.Explanation,
		Details:     res.Details,
		Style:       style,
		Timestamp:   time.Now().UnixMilli(),
	}, true
}

func (g *Generator) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy).String()
}

// dedupKey identifies an outfit by its sorted member ids, so the same
// items drawn in a different order are recognised as the same outfit.
func dedupKey(items []wardrobe.Item) string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}

// requiredPicks lists the choices for a mandatory slot: one entry per
// item, or a single skip entry when the bucket is empty.
func requiredPicks(bucket []wardrobe.Item) []*wardrobe.Item {
	if len(bucket) == 0 {
		return []*wardrobe.Item{nil}
	}
	out := make([]*wardrobe.Item, len(bucket))
	for i := range bucket {
		out[i] = &bucket[i]
	}
	return out
}

// optionalPicks lists the choices for an optional slot, including the
// skip entry.
func optionalPicks(bucket []wardrobe.Item) []*wardrobe.Item {
	out := make([]*wardrobe.Item, 0, len(bucket)+1)
	out = append(out, nil)
	for i := range bucket {
		out = append(out, &bucket[i])
	}
	return out
}

func gather(picks ...*wardrobe.Item) []wardrobe.Item {
	items := make([]wardrobe.Item, 0, len(picks))
	for _, p := range picks {
		if p != nil {
			items = append(items, *p)
		}
	}
	return items
}
