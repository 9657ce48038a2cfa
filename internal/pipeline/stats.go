package pipeline

import "github.com/backmassage/renamer/internal/planner"

// RunStats tracks aggregate counters across a run.
type RunStats struct {
	Total     int // Files enumerated.
	Matched   int // Files the rule applies to.
	Planned   int // Matched files whose name changes.
	Unchanged int
	Renamed   int
	Failed    int
	Skipped   int
	Conflicts int
}

// collectStats recounts per-status totals from the plan.
func collectStats(total int, plan *planner.Plan) RunStats {
	s := RunStats{Total: total}
	if plan == nil {
		return s
	}
	s.Matched = len(plan.Entries)
	for _, e := range plan.Entries {
		if e.Changed() {
			s.Planned++
		}
		if !e.Valid {
			s.Conflicts++
		}
		switch e.Status {
		case planner.StatusUnchanged:
			s.Unchanged++
		case planner.StatusRenamed:
			s.Renamed++
		case planner.StatusFailed:
			s.Failed++
		case planner.StatusSkipped:
			s.Skipped++
		}
	}
	return s
}
