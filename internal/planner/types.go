package planner

import (
	"path/filepath"

	"github.com/backmassage/renamer/internal/naming"
)

// Status describes where an entry stands in a run.
type Status int

const (
	StatusPending   Status = iota // Planned, not yet executed.
	StatusUnchanged               // Rule leaves the name as-is; never executed.
	StatusRenamed                 // Renamed successfully.
	StatusFailed                  // Rename attempted (or blocked) and failed.
	StatusSkipped                 // Not attempted (dry run, rejection, interruption).
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusUnchanged:
		return "unchanged"
	case StatusRenamed:
		return "renamed"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Entry pairs an existing source path with its computed target. It is
// produced by [Build], checked by [Validate], and updated by execution.
type Entry struct {
	Source  string
	NewName string // Rule output for the source's base name.
	Target  string // NewName placed in the source's directory.
	Index   int    // Position among matched entries; drives numbering.

	Valid  bool
	Issues []Issue

	Status Status
	Err    error
}

// Changed reports whether the entry renames anything.
func (e *Entry) Changed() bool {
	return e.Target != e.Source
}

// SourceName is the base name of the source path.
func (e *Entry) SourceName() string {
	return filepath.Base(e.Source)
}

// Plan is the full mapping for one invocation, ordered lexicographically by
// source path. It is never persisted.
type Plan struct {
	Rule    naming.Rule
	Entries []*Entry
}

// Changes returns the entries that rename something, in plan order.
func (p *Plan) Changes() []*Entry {
	var out []*Entry
	for _, e := range p.Entries {
		if e.Changed() {
			out = append(out, e)
		}
	}
	return out
}

// Options controls validation.
type Options struct {
	Overwrite bool // Existing files outside the rename set may be replaced.
}
