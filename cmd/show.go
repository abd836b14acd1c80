package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/skillpath/internal/store"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [ref]",
	Short: "Show a stored learning path",
	Long: "Prints a stored learning path in full. With no reference, shows the\n" +
		"most recent path for --user.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.PathRepo()

		var rec *store.PathRecord
		if len(args) == 1 {
			rec, err = repo.Get(ctx, args[0])
		} else {
			user, _ := cmd.Flags().GetString("user")
			if user == "" {
				return errors.New("provide a path reference or --user")
			}
			rec, err = repo.Latest(ctx, user)
		}
		if errors.Is(err, store.ErrNotFound) {
			return errors.New("no such learning path")
		}
		if err != nil {
			return err
		}

		printPath(rec)
		return nil
	},
}

func init() {
	showCmd.Flags().StringP("user", "u", "", "Show the latest path for this user")
}

func printPath(rec *store.PathRecord) {
	c := rec.Curriculum
	sep := strings.Repeat("─", 70)

	fmt.Println(c.Title)
	fmt.Println(sep)
	fmt.Printf("Ref:        %s\n", rec.Ref)
	fmt.Printf("User:       %s\n", rec.UserID)
	fmt.Printf("Generated:  %s\n", rec.Generated.Local().Format("2006-01-02 15:04"))
	fmt.Printf("Status:     %s   Progress: %d%%\n", rec.Status, rec.Progress)
	fmt.Printf("Duration:   %s (%.0f hours, %s)\n", c.EstimatedDuration, c.TotalHours, c.Difficulty)
	fmt.Println()
	fmt.Println(c.Description)

	for i, m := range c.Modules {
		fmt.Println()
		fmt.Printf("Module %d: %s", i+1, m.Title)
		if m.Duration != "" {
			fmt.Printf(" (%s)", m.Duration)
		}
		fmt.Println()
		if m.Description != "" {
			fmt.Printf("  %s\n", m.Description)
		}
		fmt.Printf("  Skills: %s\n", strings.Join(m.Skills, ", "))
		for _, obj := range m.LearningObjectives {
			fmt.Printf("  • %s\n", obj)
		}
		for _, r := range m.Resources {
			cost := string(r.Cost)
			fmt.Printf("  - [%s, %s] %s", r.Type, cost, r.Title)
			if r.Provider != "" {
				fmt.Printf(" — %s", r.Provider)
			}
			fmt.Println()
			if r.URL != "" {
				fmt.Printf("    %s\n", r.URL)
			}
		}
	}

	if len(c.Milestones) > 0 {
		fmt.Println()
		fmt.Println("Milestones")
		fmt.Println(sep)
		fmt.Printf("%-6s  %-40s  %s\n", "Week", "Goal", "Assessment")
		for _, ms := range c.Milestones {
			fmt.Printf("%-6d  %-40s  %s\n", ms.Week, truncate(ms.Goal, 40), ms.Assessment)
		}
	}

	if len(c.CareerOutcomes) > 0 {
		fmt.Println()
		fmt.Printf("Career outcomes: %s\n", strings.Join(c.CareerOutcomes, ", "))
	}
	if c.EstimatedSalaryRange != "" {
		fmt.Printf("Estimated salary range: %s\n", c.EstimatedSalaryRange)
	}
}
