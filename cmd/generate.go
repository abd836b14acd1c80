package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/skillpath/internal/llm"
	"github.com/abhisek/skillpath/internal/pathgen"
	"github.com/abhisek/skillpath/internal/profile"
	"github.com/abhisek/skillpath/internal/session"
	"github.com/abhisek/skillpath/internal/store"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a personalized learning path",
	Long: "Builds a learner profile from flags, asks the configured LLM for a\n" +
		"structured curriculum, validates it, and saves it locally.\n\n" +
		"Skills take an optional proficiency level:\n" +
		"  skillpath generate --user alice --skills python:intermediate,sql --goals \"Become Data Scientist\"",
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("user", "u", "", "User ID owning the path")
	generateCmd.Flags().String("skills", "", "Comma-separated skills, each optionally suffixed :beginner|:intermediate|:advanced")
	generateCmd.Flags().String("goals", "", "Comma-separated learning goals")
	generateCmd.Flags().String("style", "", "Learning style (see: skillpath catalog)")
	generateCmd.Flags().String("time", "", "Time commitment (see: skillpath catalog)")
	generateCmd.Flags().String("budget", "", "Budget preference (see: skillpath catalog)")
	generateCmd.Flags().StringP("output", "o", "", "Also write the curriculum JSON to this file")
	_ = generateCmd.MarkFlagRequired("user")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	userID, _ := cmd.Flags().GetString("user")
	skillsFlag, _ := cmd.Flags().GetString("skills")
	goalsFlag, _ := cmd.Flags().GetString("goals")
	style, _ := cmd.Flags().GetString("style")
	timeFlag, _ := cmd.Flags().GetString("time")
	budget, _ := cmd.Flags().GetString("budget")
	output, _ := cmd.Flags().GetString("output")

	skills, levels, err := parseSkillsFlag(skillsFlag)
	if err != nil {
		return err
	}

	prof := profile.Encode(profile.RawSelection{
		Skills:           skills,
		Levels:           levels,
		Goals:            splitList(goalsFlag),
		LearningStyle:    style,
		TimeCommitment:   timeFlag,
		BudgetPreference: budget,
	}, time.Now())

	sess := session.New(userID)
	if err := sess.BeginGeneration(prof); err != nil {
		return err
	}

	// A broken store must not block generation; the path just won't be
	// saved.
	st, storeErr := openStore(cmd)
	var eventRepo store.EventRepo
	if storeErr != nil {
		fmt.Fprintf(os.Stderr, "warning: local store unavailable (%v); path will not be saved\n", storeErr)
	} else {
		defer st.Close()
		eventRepo = st.EventRepo()
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		_ = sess.FailGeneration()
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	gen := pathgen.NewGenerator(provider, pathgen.DefaultConfig())

	fmt.Printf("Generating learning path for %s (model: %s)...\n", userID, provider.ModelID())

	curriculum, err := gen.Generate(ctx, prof)
	if err != nil {
		_ = sess.FailGeneration()
		return describeGenerationError(err)
	}

	for _, w := range curriculum.Warnings() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	// Persist; degrade to unpersisted mode on store failure.
	if st != nil {
		ref, saveErr := st.PathRepo().Save(ctx, userID, curriculum)
		if saveErr != nil {
			fmt.Fprintf(os.Stderr, "warning: %v; keeping path in memory only\n", saveErr)
			_ = sess.AttachUnpersisted(curriculum)
		} else {
			_ = sess.Attach(curriculum, ref)
		}
	} else {
		_ = sess.AttachUnpersisted(curriculum)
	}

	printSummary(sess)

	if output != "" {
		data, err := pathgen.Export(curriculum)
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		fmt.Printf("Curriculum written to %s\n", output)
	}

	return nil
}

// parseSkillsFlag splits "python:intermediate,sql" into skill labels and
// a label-keyed level map.
func parseSkillsFlag(flag string) ([]string, map[string]string, error) {
	var skills []string
	levels := make(map[string]string)

	for _, item := range splitList(flag) {
		label, level, found := strings.Cut(item, ":")
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		skills = append(skills, label)
		if found {
			level = strings.TrimSpace(level)
			if !profile.Level(strings.ToLower(level)).Valid() {
				return nil, nil, fmt.Errorf("unknown level %q for skill %q (use beginner, intermediate, or advanced)", level, label)
			}
			levels[label] = level
		}
	}
	return skills, levels, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// describeGenerationError turns the error taxonomy into actionable
// messages. Every failure leaves the tool in a retryable state.
func describeGenerationError(err error) error {
	var ve *profile.ValidationError
	if errors.As(err, &ve) {
		return fmt.Errorf("invalid profile: %w", err)
	}

	var pf *pathgen.ParseFailure
	if errors.As(err, &pf) {
		return fmt.Errorf("the model returned an unusable curriculum (%w); try again", err)
	}

	var gf *pathgen.GenerationFailure
	if errors.As(err, &gf) {
		if gf.Timeout {
			return fmt.Errorf("%w; the provider may be overloaded, try again shortly", err)
		}
		return err
	}

	return err
}

func printSummary(sess *session.Session) {
	c := sess.Curriculum

	fmt.Println()
	fmt.Println(c.Title)
	fmt.Println(strings.Repeat("─", 60))
	fmt.Printf("Duration:    %s (%.0f hours, %s)\n", c.EstimatedDuration, c.TotalHours, c.Difficulty)
	fmt.Printf("Modules:     %d\n", len(c.Modules))
	fmt.Printf("Milestones:  %d\n", len(c.Milestones))
	if len(c.CareerOutcomes) > 0 {
		fmt.Printf("Outcomes:    %s\n", strings.Join(c.CareerOutcomes, ", "))
	}
	if c.EstimatedSalaryRange != "" {
		fmt.Printf("Salary:      %s\n", c.EstimatedSalaryRange)
	}

	switch sess.Status() {
	case session.Active:
		fmt.Printf("\nSaved as %s\n", sess.Ref)
		fmt.Printf("View it with: skillpath show %s\n", sess.Ref)
	case session.ActiveUnpersisted:
		fmt.Println("\nNot saved (store unavailable). Use --output to keep a copy.")
	}
}
