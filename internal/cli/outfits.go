package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/sartor/internal/storage"
)

var (
	// Outfits command flags
	outfitsFormat string
)

var outfitsCmd = &cobra.Command{
	Use:   "outfits",
	Short: "List and manage saved outfits",
	Long: `List outfits saved with 'sartor suggest --save', newest first.

Examples:
  # List saved outfits
  sartor outfits

  # Remove a saved outfit
  sartor outfits remove 01JG3ZV7Q8R9T0ABCDEF123456`,
	RunE: runOutfitsList,
}

var outfitsRemoveCmd = &cobra.Command{
	Use:     "remove <outfit-id>",
	Aliases: []string{"rm"},
	Short:   "Remove a saved outfit",
	Args:    cobra.ExactArgs(1),
	RunE:    runOutfitsRemove,
}

func init() {
	outfitsCmd.Flags().StringVarP(&outfitsFormat, "format", "f", "table", "output format (table, json)")
	outfitsCmd.AddCommand(outfitsRemoveCmd)
}

func runOutfitsList(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	outfits, err := app.store.ListOutfits(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list outfits: %w", err)
	}

	switch outfitsFormat {
	case "table":
		if len(outfits) == 0 {
			fmt.Println("No saved outfits. Save one with 'sartor suggest --save'.")
			return nil
		}
		fmt.Print(formatOutfitsTable(outfits))
	case "json":
		data, err := json.MarshalIndent(outfits, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode outfits: %w", err)
		}
		fmt.Println(string(data))
	default:
		return fmt.Errorf("unsupported format: %s (supported: table, json)", outfitsFormat)
	}
	return nil
}

func runOutfitsRemove(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	id := args[0]
	if err := app.store.DeleteOutfit(cmd.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no outfit with id %q", id)
		}
		return fmt.Errorf("failed to remove outfit: %w", err)
	}
	fmt.Printf("Removed %s\n", id)
	return nil
}

func formatOutfitsTable(outfits []storage.SavedOutfit) string {
	table := NewTable("ID", "STYLE", "SCORE", "SAVED", "EXPLANATION")
	table.SetColumnMaxWidth(4, 60)
	for _, o := range outfits {
		table.AddRow(o.ID, string(o.Style), fmt.Sprintf("%.1f", o.Score), o.CreatedAt.Format("2006-01-02 15:04"), o.Explanation)
	}
	return table.Render()
}
