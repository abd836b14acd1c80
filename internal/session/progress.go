package session

import "fmt"

// ModuleState is the completion state of a single module.
type ModuleState int

const (
	NotStarted ModuleState = iota
	InProgress
	Complete
)

func (s ModuleState) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Complete:
		return "complete"
	}
	return "unknown"
}

// moduleProgress holds one module's slot. Percent and the terminal flag
// are independent: reaching 100 percent does not complete a module, and
// completing a module pins it at 100.
type moduleProgress struct {
	percent  int
	complete bool
	touched  bool
}

// Tracker tracks per-module completion over a fixed number of modules.
// Each module advances independently; updating one never touches its
// neighbors.
type Tracker struct {
	modules []moduleProgress
}

// NewTracker creates a tracker for n modules, all NotStarted.
func NewTracker(n int) *Tracker {
	return &Tracker{modules: make([]moduleProgress, n)}
}

// Len returns the number of tracked modules.
func (t *Tracker) Len() int {
	return len(t.modules)
}

// SetProgress records partial progress for module i. A module at 100
// percent is still InProgress until explicitly marked complete.
func (t *Tracker) SetProgress(i, percent int) error {
	if err := t.check(i); err != nil {
		return err
	}
	if percent < 0 || percent > 100 {
		return fmt.Errorf("progress %d out of range [0, 100]", percent)
	}
	if t.modules[i].complete {
		return fmt.Errorf("module %d is already complete", i)
	}
	t.modules[i].percent = percent
	t.modules[i].touched = true
	return nil
}

// MarkComplete marks module i complete. Completion implies 100 percent
// and is terminal.
func (t *Tracker) MarkComplete(i int) error {
	if err := t.check(i); err != nil {
		return err
	}
	t.modules[i].percent = 100
	t.modules[i].complete = true
	t.modules[i].touched = true
	return nil
}

// State returns the state of module i.
func (t *Tracker) State(i int) (ModuleState, error) {
	if err := t.check(i); err != nil {
		return NotStarted, err
	}
	m := t.modules[i]
	switch {
	case m.complete:
		return Complete, nil
	case m.touched:
		return InProgress, nil
	default:
		return NotStarted, nil
	}
}

// Percent returns module i's progress percentage.
func (t *Tracker) Percent(i int) (int, error) {
	if err := t.check(i); err != nil {
		return 0, err
	}
	return t.modules[i].percent, nil
}

// AggregatePercent derives whole-path progress as the mean of module
// percentages. Display only; it is not what the store persists.
func (t *Tracker) AggregatePercent() int {
	if len(t.modules) == 0 {
		return 0
	}
	total := 0
	for _, m := range t.modules {
		total += m.percent
	}
	return total / len(t.modules)
}

func (t *Tracker) check(i int) error {
	if i < 0 || i >= len(t.modules) {
		return fmt.Errorf("module index %d out of range [0, %d)", i, len(t.modules))
	}
	return nil
}
