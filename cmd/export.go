package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/abhisek/skillpath/internal/pathgen"
	"github.com/abhisek/skillpath/internal/store"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <ref>",
	Short: "Export a learning path as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		rec, err := st.PathRepo().Get(cmd.Context(), args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no learning path %s", args[0])
		}
		if err != nil {
			return err
		}

		data, err := pathgen.Export(rec.Curriculum)
		if err != nil {
			return err
		}

		if output == "" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		fmt.Printf("Exported to %s\n", output)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
}
