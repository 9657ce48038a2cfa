package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/backmassage/renamer/internal/pipeline"
	"github.com/backmassage/renamer/internal/planner"
	"github.com/backmassage/renamer/internal/term"
)

// textReporter prints one line per rename as it happens.
type textReporter struct {
	out io.Writer
}

func (r *textReporter) Preview(plan *planner.Plan) {
	for _, e := range plan.Changes() {
		if !e.Valid {
			continue
		}
		fmt.Fprintf(r.out, "%s %s %s %s\n", term.Paint(term.Cyan, "Would rename:"), e.Source, arrow, e.NewName)
	}
}

func (r *textReporter) Conflicts(_ *planner.Plan, err *planner.ConflictError) {
	for _, is := range err.Issues {
		fmt.Fprintf(r.out, "%s %s %s %s (%s)\n", term.Paint(term.Yellow, "Conflict:"), is.Source, arrow, issueTarget(is), is.Reason())
	}
}

func (r *textReporter) Outcome(e *planner.Entry) {
	switch e.Status {
	case planner.StatusRenamed:
		fmt.Fprintf(r.out, "%s %s %s %s\n", term.Paint(term.Green, "Renamed:"), e.Source, arrow, e.NewName)
	case planner.StatusFailed:
		fmt.Fprintf(r.out, "%s %s: %v\n", term.Paint(term.Red, "Error renaming"), e.Source, e.Err)
	case planner.StatusSkipped:
		fmt.Fprintf(r.out, "%s %s\n", term.Paint(term.Yellow, "Skipped:"), e.Source)
	}
}

func (r *textReporter) Summary(res *pipeline.Result) error {
	lines := summaryLines(res)
	if len(lines) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(r.out, strings.Join(lines, "\n"))
	return err
}
