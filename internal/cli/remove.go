package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/sartor/internal/storage"
)

var removeCmd = &cobra.Command{
	Use:     "remove <item-id>",
	Aliases: []string{"rm"},
	Short:   "Remove an item from the wardrobe",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	id := args[0]
	if err := app.store.DeleteItem(cmd.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no item with id %q", id)
		}
		return fmt.Errorf("failed to remove item: %w", err)
	}
	fmt.Printf("Removed %s\n", id)
	return nil
}
