package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/sartor/internal/colour"
	"github.com/jmylchreest/sartor/internal/storage"
	"github.com/jmylchreest/sartor/internal/wardrobe"
)

var (
	// Add command flags
	addCategory string
	addLabel    string
)

var addCmd = &cobra.Command{
	Use:   "add <hex-colour>",
	Short: "Add a clothing item to the wardrobe",
	Long: `Add a clothing item to the wardrobe by its dominant colour.

The colour is given as a hex code and stored together with its HSL
representation, which the suggestion engine scores against.

Examples:
  # Add a navy top
  sartor add "#1f3d7a" --category tops --label "navy oxford shirt"

  # Add grey trousers
  sartor add 808080 -c bottoms -l "wool trousers"`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "item category (tops, bottoms, footwear, accessories)")
	addCmd.Flags().StringVarP(&addLabel, "label", "l", "", "optional item label")
	_ = addCmd.MarkFlagRequired("category")
}

func runAdd(cmd *cobra.Command, args []string) error {
	category, err := wardrobe.ParseCategory(addCategory)
	if err != nil {
		return err
	}
	rgb, err := colour.ParseHex(args[0])
	if err != nil {
		return fmt.Errorf("invalid colour: %w", err)
	}

	app, err := newAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	id, err := storage.NewID()
	if err != nil {
		return fmt.Errorf("failed to generate item id: %w", err)
	}

	item := wardrobe.Item{
		ID:        id,
		Category:  category,
		Colour:    colour.RGBToHSL(rgb),
		Hex:       rgb.Hex(),
		Label:     addLabel,
		CreatedAt: time.Now().UTC(),
	}
	if err := app.store.AddItem(cmd.Context(), item); err != nil {
		return fmt.Errorf("failed to store item: %w", err)
	}

	display := item.Hex
	if colour.ColoursEnabled() {
		display = colour.FormatColourWithPreview(rgb, 4)
	}
	fmt.Printf("Added %s %s (%s)\n", display, category.Lower(), item.ID)
	return nil
}
