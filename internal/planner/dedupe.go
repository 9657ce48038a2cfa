package planner

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/backmassage/renamer/internal/naming"
)

// Dedupe rewrites colliding targets to free "_N" variants, in plan order,
// so the first claimant keeps the requested name. Every existing directory
// entry that is not a moving source is reserved first; with overwrite only
// in-plan duplicates are resolved.
func Dedupe(fsys afero.Fs, plan *Plan, overwrite bool) error {
	changes := plan.Changes()
	moving := make(map[string]bool, len(changes))
	for _, e := range changes {
		moving[e.Source] = true
	}

	resolver := naming.NewCollisionResolver()
	if !overwrite {
		listed := make(map[string]bool)
		for _, e := range changes {
			dir := filepath.Dir(e.Target)
			if listed[dir] {
				continue
			}
			listed[dir] = true
			infos, err := afero.ReadDir(fsys, dir)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return fmt.Errorf("list %s: %w", dir, err)
			}
			for _, info := range infos {
				p := filepath.Join(dir, info.Name())
				if !moving[p] {
					resolver.Reserve(p)
				}
			}
		}
	}

	for _, e := range changes {
		if naming.ValidateName(e.NewName) != nil {
			continue
		}
		resolved := resolver.Resolve(e.Source, e.Target)
		if resolved != e.Target {
			e.Target = resolved
			e.NewName = filepath.Base(resolved)
		}
	}
	return nil
}
