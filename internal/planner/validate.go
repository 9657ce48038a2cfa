package planner

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"

	"github.com/backmassage/renamer/internal/fsop"
	"github.com/backmassage/renamer/internal/naming"
)

// Validate checks the whole plan before any mutation and marks each entry
// valid or not. It returns a *ConflictError listing every issue when the
// plan must be rejected. Checks, per changing entry:
//  1. the new name is a usable directory entry
//  2. no other entry claims the same target, compared case-insensitively
//     in directories that resolve names that way
//  3. the target is free, is the source itself (case-only rename), or is
//     the source of another changing entry; an existing file outside the
//     rename set is only accepted with opts.Overwrite, a directory never
func Validate(fsys afero.Fs, plan *Plan, opts Options) error {
	changes := plan.Changes()
	moving := make(map[string]bool, len(changes))
	for _, e := range changes {
		moving[e.Source] = true
	}

	for _, e := range plan.Entries {
		e.Issues = nil
		if e.NewName != e.SourceName() {
			if err := naming.ValidateName(e.NewName); err != nil {
				e.Issues = append(e.Issues, Issue{Kind: IssueInvalidName, Source: e.Source, Target: e.NewName})
			}
		}
	}

	fold := newCaseFolder(fsys)
	claims := make(map[string][]*Entry)
	for _, e := range changes {
		key := fold.key(e.Source, e.Target)
		claims[key] = append(claims[key], e)
	}
	for _, e := range changes {
		for _, other := range claims[fold.key(e.Source, e.Target)] {
			if other != e {
				e.Issues = append(e.Issues, Issue{Kind: IssueDuplicateTarget, Source: e.Source, Target: e.Target, Other: other.Source})
				break
			}
		}
	}

	for _, e := range changes {
		if moving[e.Target] || hasKind(e.Issues, IssueInvalidName) {
			continue
		}
		kind, err := occupancy(fsys, e.Source, e.Target, opts.Overwrite)
		if err != nil {
			return err
		}
		if kind >= 0 {
			e.Issues = append(e.Issues, Issue{Kind: kind, Source: e.Source, Target: e.Target})
		}
	}

	var issues []Issue
	for _, e := range plan.Entries {
		e.Valid = len(e.Issues) == 0
		issues = append(issues, e.Issues...)
	}
	if len(issues) > 0 {
		return &ConflictError{Issues: issues}
	}
	return nil
}

// occupancy returns the issue kind for an occupied target, or -1 when the
// target may be used.
func occupancy(fsys afero.Fs, source, target string, overwrite bool) (IssueKind, error) {
	info, err := fsop.Lstat(fsys, target)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return -1, nil
	case err != nil:
		return -1, fmt.Errorf("stat %s: %w", target, err)
	}
	if fsop.SameEntry(fsys, source, target) {
		return -1, nil
	}
	if info.IsDir() {
		return IssueTargetIsDir, nil
	}
	if overwrite {
		return -1, nil
	}
	return IssueTargetExists, nil
}

func hasKind(issues []Issue, kind IssueKind) bool {
	for _, is := range issues {
		if is.Kind == kind {
			return true
		}
	}
	return false
}
