package session

import "testing"

func TestTrackerInitialState(t *testing.T) {
	tr := NewTracker(3)
	for i := 0; i < 3; i++ {
		st, err := tr.State(i)
		if err != nil {
			t.Fatalf("state %d: %v", i, err)
		}
		if st != NotStarted {
			t.Errorf("module %d state = %v, want NotStarted", i, st)
		}
	}
	if tr.AggregatePercent() != 0 {
		t.Errorf("aggregate = %d, want 0", tr.AggregatePercent())
	}
}

func TestTrackerModulesAdvanceIndependently(t *testing.T) {
	tr := NewTracker(3)

	if err := tr.MarkComplete(1); err != nil {
		t.Fatalf("mark complete: %v", err)
	}

	// Completing module 1 must not touch modules 0 and 2.
	for _, i := range []int{0, 2} {
		st, _ := tr.State(i)
		if st != NotStarted {
			t.Errorf("module %d state = %v, want NotStarted", i, st)
		}
		pct, _ := tr.Percent(i)
		if pct != 0 {
			t.Errorf("module %d percent = %d, want 0", i, pct)
		}
	}

	st, _ := tr.State(1)
	if st != Complete {
		t.Errorf("module 1 state = %v, want Complete", st)
	}
}

func TestTrackerHundredPercentIsNotComplete(t *testing.T) {
	tr := NewTracker(1)
	if err := tr.SetProgress(0, 100); err != nil {
		t.Fatalf("set progress: %v", err)
	}
	st, _ := tr.State(0)
	if st != InProgress {
		t.Errorf("state = %v, want InProgress: completion is explicit", st)
	}

	if err := tr.MarkComplete(0); err != nil {
		t.Fatalf("mark complete: %v", err)
	}
	st, _ = tr.State(0)
	if st != Complete {
		t.Errorf("state = %v, want Complete", st)
	}
}

func TestTrackerCompleteIsTerminal(t *testing.T) {
	tr := NewTracker(1)
	if err := tr.MarkComplete(0); err != nil {
		t.Fatalf("mark complete: %v", err)
	}
	if err := tr.SetProgress(0, 50); err == nil {
		t.Error("SetProgress on a complete module should fail")
	}
	pct, _ := tr.Percent(0)
	if pct != 100 {
		t.Errorf("percent = %d, want 100", pct)
	}
}

func TestTrackerBounds(t *testing.T) {
	tr := NewTracker(2)

	for _, i := range []int{-1, 2} {
		if err := tr.SetProgress(i, 10); err == nil {
			t.Errorf("SetProgress(%d) accepted out-of-range index", i)
		}
		if err := tr.MarkComplete(i); err == nil {
			t.Errorf("MarkComplete(%d) accepted out-of-range index", i)
		}
	}
	for _, p := range []int{-1, 101} {
		if err := tr.SetProgress(0, p); err == nil {
			t.Errorf("SetProgress(0, %d) accepted out-of-range percent", p)
		}
	}
}

func TestTrackerAggregatePercent(t *testing.T) {
	tr := NewTracker(4)
	tr.SetProgress(0, 100)
	tr.SetProgress(1, 50)
	tr.MarkComplete(2)
	// module 3 untouched

	// (100 + 50 + 100 + 0) / 4 = 62
	if got := tr.AggregatePercent(); got != 62 {
		t.Errorf("aggregate = %d, want 62", got)
	}
}
