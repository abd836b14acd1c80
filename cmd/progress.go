package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/skillpath/internal/session"
	"github.com/abhisek/skillpath/internal/store"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress <ref>",
	Short: "Record progress on a learning path",
	Long: "Module-level operations journal per-module events:\n" +
		"  skillpath progress <ref> --module 2 --set 50\n" +
		"  skillpath progress <ref> --module 2 --complete\n\n" +
		"Without --module, updates the whole-path progress scalar:\n" +
		"  skillpath progress <ref> --set 75\n" +
		"  skillpath progress <ref> --complete",
	Args: cobra.ExactArgs(1),
	RunE: runProgress,
}

func init() {
	progressCmd.Flags().IntP("module", "m", -1, "Zero-based module index to update")
	progressCmd.Flags().Int("set", -1, "Progress percentage, 0-100")
	progressCmd.Flags().Bool("complete", false, "Mark complete")
}

func runProgress(cmd *cobra.Command, args []string) error {
	ref := args[0]
	moduleIdx, _ := cmd.Flags().GetInt("module")
	setPct, _ := cmd.Flags().GetInt("set")
	complete, _ := cmd.Flags().GetBool("complete")

	if setPct < 0 && !complete {
		return errors.New("nothing to do: pass --set or --complete")
	}
	if setPct >= 0 && complete {
		return errors.New("--set and --complete are mutually exclusive")
	}

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	rec, err := st.PathRepo().Get(ctx, ref)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("no learning path %s", ref)
	}
	if err != nil {
		return err
	}

	// Whole-path scalar update.
	if moduleIdx < 0 {
		pct := setPct
		if complete {
			pct = 100
		}
		if err := st.PathRepo().SetProgress(ctx, ref, pct); err != nil {
			return err
		}
		fmt.Printf("Path progress set to %d%%\n", pct)
		return nil
	}

	// Module-level update, journaled as an event. The scalar on the
	// path record is left alone.
	if moduleIdx >= len(rec.Curriculum.Modules) {
		return fmt.Errorf("module index %d out of range: path has %d modules", moduleIdx, len(rec.Curriculum.Modules))
	}

	event := store.PathEventData{PathID: ref, ModuleIndex: moduleIdx}
	if complete {
		event.Action = store.ActionModuleComplete
		event.Percent = 100
	} else {
		if setPct > 100 {
			return fmt.Errorf("progress %d out of range [0, 100]", setPct)
		}
		event.Action = store.ActionModuleProgress
		event.Percent = setPct
	}

	// Validate the transition against the replayed tracker before
	// journaling, so a completed module can't regress.
	tracker, err := replayTracker(ctx, st, rec)
	if err != nil {
		return err
	}
	if complete {
		if err := tracker.MarkComplete(moduleIdx); err != nil {
			return err
		}
	} else {
		if err := tracker.SetProgress(moduleIdx, setPct); err != nil {
			return err
		}
	}

	if err := st.EventRepo().AppendPathEvent(ctx, event); err != nil {
		return err
	}

	printTracker(rec, tracker)
	return nil
}

// replayTracker rebuilds the per-module tracker from the journal.
func replayTracker(ctx context.Context, st *store.Store, rec *store.PathRecord) (*session.Tracker, error) {
	events, err := st.EventRepo().ModuleEvents(ctx, rec.Ref)
	if err != nil {
		return nil, err
	}

	tracker := session.NewTracker(len(rec.Curriculum.Modules))
	for _, e := range events {
		if e.ModuleIndex >= tracker.Len() {
			continue
		}
		switch e.Action {
		case store.ActionModuleProgress:
			_ = tracker.SetProgress(e.ModuleIndex, e.Percent)
		case store.ActionModuleComplete:
			_ = tracker.MarkComplete(e.ModuleIndex)
		}
	}
	return tracker, nil
}

func printTracker(rec *store.PathRecord, tracker *session.Tracker) {
	fmt.Printf("%s\n\n", rec.Curriculum.Title)
	for i, m := range rec.Curriculum.Modules {
		state, _ := tracker.State(i)
		pct, _ := tracker.Percent(i)
		fmt.Printf("  %d. %-40s  %-12s  %3d%%\n", i+1, truncate(m.Title, 40), state, pct)
	}
	fmt.Printf("\nOverall (derived): %d%%\n", tracker.AggregatePercent())
}
