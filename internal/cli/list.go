package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/sartor/internal/colour"
	"github.com/jmylchreest/sartor/internal/wardrobe"
)

var (
	// List command flags
	listCategory string
	listFormat   string
	listPreview  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List wardrobe items",
	Long: `List wardrobe items, optionally filtered by category.

Examples:
  # List everything
  sartor list

  # List tops with terminal colour previews
  sartor list --category tops --preview

  # Machine-readable output
  sartor list --format json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "filter by category (tops, bottoms, footwear, accessories)")
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "output format (table, json)")
	listCmd.Flags().BoolVar(&listPreview, "preview", false, "show colour previews in terminal")
}

func runList(cmd *cobra.Command, args []string) error {
	var category wardrobe.Category
	if listCategory != "" {
		parsed, err := wardrobe.ParseCategory(listCategory)
		if err != nil {
			return err
		}
		category = parsed
	}

	app, err := newAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	items, err := app.store.ListItems(cmd.Context(), category)
	if err != nil {
		return fmt.Errorf("failed to list items: %w", err)
	}

	switch listFormat {
	case "table":
		if len(items) == 0 {
			fmt.Println("Wardrobe is empty. Add items with 'sartor add'.")
			return nil
		}
		fmt.Print(formatItemsTable(items, listPreview))
	case "json":
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode items: %w", err)
		}
		fmt.Println(string(data))
	default:
		return fmt.Errorf("unsupported format: %s (supported: table, json)", listFormat)
	}
	return nil
}

func formatItemsTable(items []wardrobe.Item, showPreview bool) string {
	if showPreview && colour.ColoursEnabled() {
		var b strings.Builder
		for _, item := range items {
			label := item.Category.Lower()
			if item.Label != "" {
				label = fmt.Sprintf("%s (%s)", item.Label, item.Category.Lower())
			}
			b.WriteString(colour.FormatColourWithLabel(item.Colour.RGB(), label, 8))
			b.WriteString("  ")
			b.WriteString(item.ID)
			b.WriteString("\n")
		}
		return b.String()
	}

	table := NewTable("ID", "CATEGORY", "COLOUR", "LABEL", "ADDED")
	table.SetColumnMaxWidth(3, 40)
	for _, item := range items {
		table.AddRow(item.ID, string(item.Category), item.ColourID(), item.Label, item.CreatedAt.Format("2006-01-02"))
	}
	return table.Render()
}
