package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/skillpath/internal/profile"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List selectable skills, goals, and preferences",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Skills")
		fmt.Println(strings.Repeat("─", 60))
		printCategories(profile.SkillCategories)

		fmt.Println()
		fmt.Println("Goals")
		fmt.Println(strings.Repeat("─", 60))
		printCategories(profile.GoalCategories)

		fmt.Println()
		fmt.Printf("Learning styles:   %s\n", strings.Join(profile.LearningStyles, ", "))
		fmt.Printf("Time commitments:  %s\n", strings.Join(profile.TimeCommitments, ", "))
		fmt.Printf("Budget options:    %s\n", strings.Join(profile.BudgetPreferences, ", "))

		fmt.Println()
		fmt.Println("Flags take either the display label or its key form,")
		fmt.Println("e.g. \"Machine Learning\" and machine-learning are the same skill.")
	},
}

func printCategories(categories map[string][]string) {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("%-22s %s\n", name+":", strings.Join(categories[name], ", "))
	}
}
