package planner

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/afero"

	"github.com/backmassage/renamer/internal/fsop"
)

// caseFolder builds claim keys for duplicate detection. Targets in a
// directory that resolves names case-insensitively are lower-cased so that
// "C.txt" and "c.txt" collide there as they would on disk.
type caseFolder struct {
	fs          afero.Fs
	insensitive map[string]bool // dir → resolves names case-insensitively
}

func newCaseFolder(fsys afero.Fs) *caseFolder {
	return &caseFolder{fs: fsys, insensitive: make(map[string]bool)}
}

// key returns the claim key for target. source is an existing file in the
// same directory, used to test it once.
func (c *caseFolder) key(source, target string) string {
	dir := filepath.Dir(target)
	folds, ok := c.insensitive[dir]
	if !ok && filepath.Dir(source) == dir {
		var known bool
		if folds, known = c.lookupSwapped(source); known {
			c.insensitive[dir] = folds
		}
	}
	if folds {
		return strings.ToLower(target)
	}
	return target
}

// lookupSwapped looks up source with its letter case swapped. The
// directory folds case when that name resolves but is not itself listed.
// known is false when the name has no letters to swap.
func (c *caseFolder) lookupSwapped(source string) (folds, known bool) {
	dir, base := filepath.Split(source)
	swapped := swapCase(base)
	if swapped == base {
		return false, false
	}
	if _, err := fsop.Lstat(c.fs, filepath.Join(dir, swapped)); err != nil {
		return false, true
	}
	infos, err := afero.ReadDir(c.fs, filepath.Clean(dir))
	if err != nil {
		return false, true
	}
	for _, info := range infos {
		if info.Name() == swapped {
			return false, true
		}
	}
	return true, true
}

func swapCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		default:
			return r
		}
	}, s)
}
