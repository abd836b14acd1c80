package store

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/skillpath/internal/pathgen"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testCurriculum(title string) *pathgen.Curriculum {
	return &pathgen.Curriculum{
		Title:             title,
		Description:       "test curriculum",
		EstimatedDuration: "3 months",
		Difficulty:        pathgen.DifficultyBeginner,
		TotalHours:        100,
		Modules: []pathgen.Module{
			{Title: "Module One", Skills: []string{"go"}},
			{Title: "Module Two", Skills: []string{"sql"}},
		},
		Milestones: []pathgen.Milestone{
			{Week: 2, Goal: "Finish module one"},
		},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestPathSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.PathRepo()
	ctx := context.Background()

	ref, err := repo.Save(ctx, "learner_1", testCurriculum("Go Path"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if ref == "" {
		t.Fatal("expected non-empty reference")
	}

	rec, err := repo.Get(ctx, ref)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.UserID != "learner_1" {
		t.Errorf("user = %q, want learner_1", rec.UserID)
	}
	if rec.Status != StatusActive {
		t.Errorf("status = %q, want active", rec.Status)
	}
	if rec.Progress != 0 {
		t.Errorf("progress = %d, want 0", rec.Progress)
	}
	if rec.Generated.IsZero() {
		t.Error("generated timestamp not stamped")
	}
	if rec.Curriculum.Title != "Go Path" {
		t.Errorf("title = %q, want Go Path", rec.Curriculum.Title)
	}
	if len(rec.Curriculum.Modules) != 2 {
		t.Errorf("modules = %d, want 2", len(rec.Curriculum.Modules))
	}
}

func TestPathSaveUnreachableStore(t *testing.T) {
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	repo := s.PathRepo()
	ctx := context.Background()

	c := testCurriculum("Held In Memory")
	if _, err := repo.Save(ctx, "learner_1", c); err != nil {
		t.Fatalf("save before close: %v", err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	_, err = repo.Save(ctx, "learner_1", c)
	if err == nil {
		t.Fatal("expected save against closed store to fail")
	}
	var sf *StoreFailure
	if !errors.As(err, &sf) {
		t.Fatalf("error type = %T (%v), want *StoreFailure", err, err)
	}
	if sf.Op != "save" {
		t.Errorf("op = %q, want save", sf.Op)
	}
	if sf.Unwrap() == nil {
		t.Error("expected wrapped cause")
	}

	// The caller's curriculum is untouched by the failed write and stays
	// usable for export or retry.
	if c.Title != "Held In Memory" || len(c.Modules) != 2 {
		t.Errorf("curriculum changed by failed save: %+v", c)
	}
}

func TestPathGetNotFound(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.PathRepo().Get(ctx, "no-such-ref")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestPathLatestAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.PathRepo()
	ctx := context.Background()

	for _, title := range []string{"First", "Second", "Third"} {
		if _, err := repo.Save(ctx, "learner_1", testCurriculum(title)); err != nil {
			t.Fatalf("save %s: %v", title, err)
		}
	}
	if _, err := repo.Save(ctx, "learner_2", testCurriculum("Other")); err != nil {
		t.Fatalf("save other: %v", err)
	}

	latest, err := repo.Latest(ctx, "learner_1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.Curriculum.Title != "Third" {
		t.Errorf("latest = %q, want Third", latest.Curriculum.Title)
	}

	list, err := repo.List(ctx, "learner_1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Errorf("list = %d paths, want 3", len(list))
	}

	if _, err := repo.Latest(ctx, "learner_none"); !errors.Is(err, ErrNotFound) {
		t.Errorf("latest for unknown user = %v, want ErrNotFound", err)
	}
}

func TestPathSetProgress(t *testing.T) {
	s := openTestStore(t)
	repo := s.PathRepo()
	ctx := context.Background()

	ref, err := repo.Save(ctx, "learner_1", testCurriculum("P"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := repo.SetProgress(ctx, ref, 45); err != nil {
		t.Fatalf("set progress: %v", err)
	}
	rec, err := repo.Get(ctx, ref)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Progress != 45 {
		t.Errorf("progress = %d, want 45", rec.Progress)
	}

	for _, bad := range []int{-1, 101} {
		if err := repo.SetProgress(ctx, ref, bad); err == nil {
			t.Errorf("SetProgress(%d) accepted out-of-range value", bad)
		}
	}
}

func TestPathArchive(t *testing.T) {
	s := openTestStore(t)
	repo := s.PathRepo()
	ctx := context.Background()

	ref, err := repo.Save(ctx, "learner_1", testCurriculum("A"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Archive(ctx, ref); err != nil {
		t.Fatalf("archive: %v", err)
	}

	rec, err := repo.Get(ctx, ref)
	if err != nil {
		t.Fatalf("get after archive: %v", err)
	}
	if rec.Status != StatusArchived {
		t.Errorf("status = %q, want archived", rec.Status)
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "path-gen", InputTokens: 100, OutputTokens: 500, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "path-gen", InputTokens: 120, OutputTokens: 600, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "other", InputTokens: 10, OutputTokens: 20, Success: false, ErrorMessage: "boom"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("events = %d, want 3", len(all))
	}
	// Newest first.
	if all[0].Sequence <= all[1].Sequence {
		t.Errorf("events not ordered newest first: %d, %d", all[0].Sequence, all[1].Sequence)
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited events = %d, want 2", len(limited))
	}

	one, err := repo.GetLLMEvent(ctx, all[0].Sequence)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if one.Purpose != all[0].Purpose {
		t.Errorf("purpose = %q, want %q", one.Purpose, all[0].Purpose)
	}

	if _, err := repo.GetLLMEvent(ctx, 99999); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing event error = %v, want ErrNotFound", err)
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "path-gen", InputTokens: 100, OutputTokens: 400, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "path-gen", InputTokens: 50, OutputTokens: 100, Success: true},
	} {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 1 {
		t.Fatalf("rows = %d, want 1", len(byPurpose))
	}
	row := byPurpose[0]
	if row.Purpose != "path-gen" || row.Requests != 2 || row.InputTokens != 150 || row.OutputTokens != 500 {
		t.Errorf("aggregate = %+v", row)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Model != "gemini-2.0-flash" {
		t.Errorf("by model = %+v", byModel)
	}
}

func TestPathEventJournal(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	ref, err := s.PathRepo().Save(ctx, "learner_1", testCurriculum("J"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	repo := s.EventRepo()
	actions := []PathEventData{
		{PathID: ref, Action: ActionModuleProgress, ModuleIndex: 0, Percent: 50},
		{PathID: ref, Action: ActionModuleComplete, ModuleIndex: 0, Percent: 100},
		{PathID: ref, Action: ActionModuleProgress, ModuleIndex: 1, Percent: 25},
	}
	for i, a := range actions {
		if err := repo.AppendPathEvent(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	journal, err := repo.ModuleEvents(ctx, ref)
	if err != nil {
		t.Fatalf("module events: %v", err)
	}
	if len(journal) != 3 {
		t.Fatalf("journal = %d events, want 3", len(journal))
	}
	for i := 1; i < len(journal); i++ {
		if journal[i].Sequence <= journal[i-1].Sequence {
			t.Errorf("journal not in append order at %d", i)
		}
	}
	if journal[1].Action != ActionModuleComplete {
		t.Errorf("second action = %q, want module_complete", journal[1].Action)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"learning_paths", "path_events", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
