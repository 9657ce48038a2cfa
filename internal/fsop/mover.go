package fsop

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// Mover renames files on an afero filesystem.
type Mover struct {
	fs        afero.Fs
	overwrite bool
}

// NewMover returns a Mover on fsys. Without overwrite, Move refuses to
// replace an existing target even if it appeared after planning.
func NewMover(fsys afero.Fs, overwrite bool) *Mover {
	return &Mover{fs: fsys, overwrite: overwrite}
}

// Move renames source to target. Failures are returned as *Error.
func (m *Mover) Move(source, target string) error {
	if !m.overwrite {
		exists, err := m.Exists(target)
		if err != nil {
			return NewError(source, target, err)
		}
		if exists && !m.SameFile(source, target) {
			return NewError(source, target, ErrTargetExists)
		}
	}
	if err := m.fs.Rename(source, target); err != nil {
		return NewError(source, target, err)
	}
	return nil
}

// Exists reports whether a directory entry named path exists. Symlinks are
// not followed, so a dangling link counts as existing. A missing path is
// not an error.
func (m *Mover) Exists(path string) (bool, error) {
	_, err := Lstat(m.fs, path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
}

// SameFile reports whether a and b name the same directory entry, which is
// the case for case-only renames on case-insensitive filesystems. A symlink
// and the file it points to are different entries. Filesystems that cannot
// tell (in-memory ones) report false.
func (m *Mover) SameFile(a, b string) bool {
	return SameEntry(m.fs, a, b)
}

// Lstat stats path without following a final symlink when fsys supports
// it, and falls back to Stat otherwise.
func Lstat(fsys afero.Fs, path string) (os.FileInfo, error) {
	if l, ok := fsys.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return fsys.Stat(path)
}

// SameEntry compares the Lstat results of a and b.
func SameEntry(fsys afero.Fs, a, b string) bool {
	ai, err := Lstat(fsys, a)
	if err != nil {
		return false
	}
	bi, err := Lstat(fsys, b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}
