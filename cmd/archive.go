package cmd

import (
	"errors"
	"fmt"

	"github.com/abhisek/skillpath/internal/store"
	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive <ref>",
	Short: "Archive a learning path",
	Long:  "Marks a path archived. Archived paths stay readable but drop out of the active set.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.PathRepo().Archive(cmd.Context(), args[0]); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no learning path %s", args[0])
			}
			return err
		}
		fmt.Printf("Archived %s\n", args[0])
		return nil
	},
}
