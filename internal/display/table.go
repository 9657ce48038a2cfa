package display

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/afero"

	"github.com/backmassage/renamer/internal/pipeline"
	"github.com/backmassage/renamer/internal/planner"
)

// tableReporter renders the whole plan once the run has settled.
type tableReporter struct {
	out io.Writer
	fs  afero.Fs
}

func (r *tableReporter) Preview(*planner.Plan)                           {}
func (r *tableReporter) Conflicts(*planner.Plan, *planner.ConflictError) {}
func (r *tableReporter) Outcome(*planner.Entry)                          {}

func (r *tableReporter) Summary(res *pipeline.Result) error {
	lines := summaryLines(res)
	if res.Plan != nil && len(res.Plan.Entries) > 0 {
		lines = append([]string{r.render(res.Plan)}, lines...)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(r.out, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *tableReporter) render(plan *planner.Plan) string {
	style := table.StyleRounded
	style.Format.Header = text.FormatDefault
	tw := table.NewWriter()
	tw.SetStyle(style)
	tw.AppendHeader(table.Row{"#", "Source", "New name", "Size", "Status", "Detail"})

	for _, e := range plan.Entries {
		tw.AppendRow(table.Row{
			strconv.Itoa(e.Index + 1),
			e.Source,
			e.NewName,
			FormatBytes(fileSize(r.fs, e)),
			statusLabel(e),
			detail(e),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func detail(e *planner.Entry) string {
	switch {
	case len(e.Issues) > 0:
		return e.Issues[0].Reason()
	case e.Err != nil:
		return e.Err.Error()
	default:
		return ""
	}
}
