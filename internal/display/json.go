package display

import (
	"encoding/json"
	"io"

	"github.com/backmassage/renamer/internal/pipeline"
	"github.com/backmassage/renamer/internal/planner"
)

// Report is the JSON document written for --output json.
type Report struct {
	Stage    string        `json:"stage"`
	DryRun   bool          `json:"dry_run"`
	ExitCode int           `json:"exit_code"`
	Error    string        `json:"error,omitempty"`
	Entries  []ReportEntry `json:"entries"`
	Summary  ReportSummary `json:"summary"`
}

// ReportEntry is one plan entry.
type ReportEntry struct {
	Source  string   `json:"source"`
	Target  string   `json:"target"`
	NewName string   `json:"new_name"`
	Status  string   `json:"status"`
	Issues  []string `json:"issues,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// ReportSummary mirrors the run counters.
type ReportSummary struct {
	Total     int `json:"total"`
	Matched   int `json:"matched"`
	Planned   int `json:"planned"`
	Unchanged int `json:"unchanged"`
	Renamed   int `json:"renamed"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
	Conflicts int `json:"conflicts"`
}

// jsonReporter writes a single document once the run has settled.
type jsonReporter struct {
	out io.Writer
}

func (r *jsonReporter) Preview(*planner.Plan)                           {}
func (r *jsonReporter) Conflicts(*planner.Plan, *planner.ConflictError) {}
func (r *jsonReporter) Outcome(*planner.Entry)                          {}

func (r *jsonReporter) Summary(res *pipeline.Result) error {
	return writeJSON(r.out, NewReport(res))
}

// NewReport converts a run result into its JSON form.
func NewReport(res *pipeline.Result) Report {
	s := res.Stats
	rep := Report{
		Stage:    res.Stage.String(),
		DryRun:   res.DryRun,
		ExitCode: res.ExitCode(),
		Entries:  []ReportEntry{},
		Summary: ReportSummary{
			Total:     s.Total,
			Matched:   s.Matched,
			Planned:   s.Planned,
			Unchanged: s.Unchanged,
			Renamed:   s.Renamed,
			Failed:    s.Failed,
			Skipped:   s.Skipped,
			Conflicts: s.Conflicts,
		},
	}
	if res.Err != nil {
		rep.Error = res.Err.Error()
	}
	if res.Plan == nil {
		return rep
	}
	for _, e := range res.Plan.Entries {
		re := ReportEntry{
			Source:  e.Source,
			Target:  e.Target,
			NewName: e.NewName,
			Status:  statusLabel(e),
		}
		for _, is := range e.Issues {
			re.Issues = append(re.Issues, is.Reason())
		}
		if e.Err != nil {
			re.Error = e.Err.Error()
		}
		rep.Entries = append(rep.Entries, re)
	}
	return rep
}

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
