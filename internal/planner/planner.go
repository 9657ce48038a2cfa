package planner

import (
	"path/filepath"
	"sort"

	"github.com/backmassage/renamer/internal/naming"
)

// Build applies rule to every source whose name it matches and returns the
// plan. Sources are sorted and de-duplicated first so plan order, and with
// it numbering, is deterministic.
//
// Flow:
//  1. Sort and de-duplicate sources
//  2. Skip sources the rule does not match
//  3. Apply the rule to the base name; keep the parent directory
//  4. Mark entries whose name does not change as unchanged
func Build(sources []string, rule naming.Rule) *Plan {
	sorted := make([]string, 0, len(sources))
	seen := make(map[string]bool, len(sources))
	for _, s := range sources {
		s = filepath.Clean(s)
		if seen[s] {
			continue
		}
		seen[s] = true
		sorted = append(sorted, s)
	}
	sort.Strings(sorted)

	plan := &Plan{Rule: rule}
	for _, src := range sorted {
		name := filepath.Base(src)
		if !rule.Matches(name) {
			continue
		}
		newName := rule.Apply(name, len(plan.Entries))
		e := &Entry{
			Source:  src,
			NewName: newName,
			Target:  naming.TargetPath(src, newName),
			Index:   len(plan.Entries),
			Valid:   true,
		}
		if newName == name {
			e.Target = src
			e.Status = StatusUnchanged
		}
		plan.Entries = append(plan.Entries, e)
	}
	return plan
}
