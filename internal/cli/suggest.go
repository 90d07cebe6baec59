package cli

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/sartor/internal/colour"
	"github.com/jmylchreest/sartor/internal/harmony"
	"github.com/jmylchreest/sartor/internal/storage"
	"github.com/jmylchreest/sartor/internal/suggest"
	"github.com/jmylchreest/sartor/internal/wardrobe"
)

var (
	// Suggest command flags
	suggestStyle   string
	suggestCount   int
	suggestSeed    int64
	suggestSave    bool
	suggestFormat  string
	suggestPreview bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest outfit combinations from the wardrobe",
	Long: `Suggest outfit combinations scored against colour-theory rules.

Each candidate combines a top and a bottom (when the wardrobe has them)
with optional footwear and accessories. Candidates are scored for the
requested style and returned best first.

Examples:
  # Three casual suggestions
  sartor suggest

  # Five formal suggestions with colour previews
  sartor suggest --style formal --count 5 --preview

  # Reproducible output for scripting
  sartor suggest --seed 42 --format json

  # Keep the best suggestion for later
  sartor suggest --style formal --save`,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringVarP(&suggestStyle, "style", "s", "casual", "dress style (casual, formal)")
	suggestCmd.Flags().IntVarP(&suggestCount, "count", "n", 0, "number of suggestions (default: from config)")
	suggestCmd.Flags().Int64Var(&suggestSeed, "seed", 0, "random seed, 0 seeds from the clock")
	suggestCmd.Flags().BoolVar(&suggestSave, "save", false, "save the top suggestion to the outfit list")
	suggestCmd.Flags().StringVarP(&suggestFormat, "format", "f", "text", "output format (text, json)")
	suggestCmd.Flags().BoolVar(&suggestPreview, "preview", false, "show colour previews in terminal")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	style, err := harmony.ParseStyle(suggestStyle)
	if err != nil {
		return err
	}

	app, err := newAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	items, err := app.store.ListItems(cmd.Context(), "")
	if err != nil {
		return fmt.Errorf("failed to load wardrobe: %w", err)
	}

	count := suggestCount
	if count <= 0 {
		count = app.cfg.Suggest.Count
	}

	var rng *rand.Rand
	if suggestSeed != 0 {
		rng = rand.New(rand.NewSource(suggestSeed))
	}
	gcfg := suggest.DefaultConfig()
	gcfg.Attempts = app.cfg.Suggest.Attempts
	gen := suggest.NewWithConfig(rng, gcfg)

	candidates := gen.Generate(wardrobe.Partition(items), style, count)
	if len(candidates) == 0 {
		fmt.Println("No suggestions could be generated. Add at least a top and a bottom to the wardrobe.")
		return nil
	}

	switch suggestFormat {
	case "text":
		fmt.Print(formatCandidatesText(candidates, suggestPreview))
	case "json":
		data, err := json.MarshalIndent(candidates, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode suggestions: %w", err)
		}
		fmt.Println(string(data))
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", suggestFormat)
	}

	if suggestSave {
		return saveTopCandidate(cmd, app, candidates[0])
	}
	return nil
}

func saveTopCandidate(cmd *cobra.Command, app *appContext, top suggest.Candidate) error {
	id, err := storage.NewID()
	if err != nil {
		return fmt.Errorf("failed to generate outfit id: %w", err)
	}
	saved := storage.SavedOutfit{
		ID:          id,
		Style:       top.Style,
		Score:       top.Score,
		Explanation: top.Explanation,
		Items:       top.Items,
		Details:     top.Details,
		CreatedAt:   time.Now().UTC(),
	}
	if err := app.store.SaveOutfit(cmd.Context(), saved); err != nil {
		return fmt.Errorf("failed to save outfit: %w", err)
	}
	fmt.Printf("Saved top suggestion as %s\n", id)
	return nil
}

func formatCandidatesText(candidates []suggest.Candidate, showPreview bool) string {
	showPreview = showPreview && colour.ColoursEnabled()

	var b strings.Builder
	for i, cand := range candidates {
		fmt.Fprintf(&b, "%d. %.1f points (%s)\n", i+1, cand.Score, cand.Style)
		fmt.Fprintf(&b, "   %s\n", cand.Explanation)
		if showPreview {
			for _, item := range cand.Items {
				rgb := item.Colour.RGB()
				fmt.Fprintf(&b, "   %s  %s %s\n", colour.ColourPreview(rgb, 4), colour.ColourString(rgb, item.ColourID()), item.Category.Lower())
			}
		}
		for _, detail := range cand.Details.HarmonyDetails {
			fmt.Fprintf(&b, "   - %s\n", detail)
		}
		if i < len(candidates)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
