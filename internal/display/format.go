package display

import (
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"

	"github.com/backmassage/renamer/internal/pipeline"
	"github.com/backmassage/renamer/internal/planner"
)

const arrow = "→"

// FormatBytes returns a human-readable IEC size (e.g. "1.5 KiB").
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		return "-"
	}
	return humanize.IBytes(uint64(bytes))
}

// fileSize stats the entry's current location: its target once renamed,
// its source otherwise. It returns -1 when the file cannot be found.
func fileSize(fsys afero.Fs, e *planner.Entry) int64 {
	path := e.Source
	if e.Status == planner.StatusRenamed {
		path = e.Target
	}
	info, err := fsys.Stat(path)
	if err != nil {
		return -1
	}
	return info.Size()
}

// statusLabel is the per-entry status shown in tables and JSON.
func statusLabel(e *planner.Entry) string {
	switch {
	case !e.Valid:
		return "conflict"
	case e.Status == planner.StatusPending:
		return "planned"
	default:
		return e.Status.String()
	}
}

// issueTarget is the name shown for an issue's target: the new base name,
// or the raw rule output for invalid names.
func issueTarget(is planner.Issue) string {
	if is.Kind == planner.IssueInvalidName {
		return is.Target
	}
	return filepath.Base(is.Target)
}

// summaryLines closes a text or table report.
func summaryLines(res *pipeline.Result) []string {
	if res.Plan == nil {
		return nil
	}
	s := res.Stats
	switch {
	case res.Stage == pipeline.StageRejected && s.Conflicts > 0:
		return []string{"Plan rejected: " + humanize.Comma(int64(s.Conflicts)) + " conflicting entries. No files were renamed."}
	case res.Stage == pipeline.StageRejected:
		return []string{"No files were renamed."}
	case res.DryRun && s.Planned == 0:
		return []string{"Nothing to rename."}
	case res.DryRun:
		return []string{"Dry run complete. " + humanize.Comma(int64(s.Planned)) + " files would be renamed."}
	case res.Stage != pipeline.StageApplied:
		return []string{"Interrupted. No files were renamed."}
	}

	lines := []string{"Renamed " + humanize.Comma(int64(s.Renamed)) + " files."}
	if s.Failed > 0 {
		lines = append(lines, "Failed to rename "+humanize.Comma(int64(s.Failed))+" files.")
	}
	if s.Skipped > 0 {
		lines = append(lines, "Skipped "+humanize.Comma(int64(s.Skipped))+" files after interruption.")
	}
	return lines
}
