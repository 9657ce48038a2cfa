package planner

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConflict is matched by every *ConflictError.
var ErrConflict = errors.New("plan has conflicts")

// IssueKind classifies why an entry cannot be renamed.
type IssueKind int

const (
	IssueDuplicateTarget IssueKind = iota // Another source maps to the same target.
	IssueTargetExists                     // Target is an existing file outside the rename set.
	IssueTargetIsDir                      // Target is an existing directory.
	IssueInvalidName                      // Rule produced an unusable name.
)

// Issue is one conflict found by [Validate].
type Issue struct {
	Kind   IssueKind
	Source string
	Target string
	Other  string // The other claimant for IssueDuplicateTarget.
}

// Reason is a short human-readable description of the issue.
func (i Issue) Reason() string {
	switch i.Kind {
	case IssueDuplicateTarget:
		return "duplicate target, also claimed by " + i.Other
	case IssueTargetExists:
		return "target exists"
	case IssueTargetIsDir:
		return "target is a directory"
	case IssueInvalidName:
		return "invalid name"
	default:
		return "conflict"
	}
}

func (i Issue) String() string {
	return fmt.Sprintf("%s -> %s (%s)", i.Source, i.Target, i.Reason())
}

// ConflictError aggregates every issue of a rejected plan. No file has been
// touched when it is returned.
type ConflictError struct {
	Issues []Issue
}

func (e *ConflictError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		parts[i] = is.String()
	}
	noun := "conflicts"
	if len(e.Issues) == 1 {
		noun = "conflict"
	}
	return fmt.Sprintf("%d %s: %s", len(e.Issues), noun, strings.Join(parts, "; "))
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
