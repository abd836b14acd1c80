package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List stored learning paths for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		records, err := st.PathRepo().List(cmd.Context(), user)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No learning paths found. Create one with: skillpath generate")
			return nil
		}

		fmt.Printf("%-36s  %-16s  %-34s  %-8s  %s\n",
			"Ref", "Generated", "Title", "Status", "Progress")
		fmt.Println(strings.Repeat("─", 106))
		for _, rec := range records {
			fmt.Printf("%-36s  %-16s  %-34s  %-8s  %d%%\n",
				rec.Ref,
				rec.Generated.Local().Format("2006-01-02 15:04"),
				truncate(rec.Curriculum.Title, 34),
				rec.Status,
				rec.Progress,
			)
		}
		return nil
	},
}

func init() {
	pathsCmd.Flags().StringP("user", "u", "", "User ID to list paths for")
	_ = pathsCmd.MarkFlagRequired("user")
}
