package naming

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrInvalidName is returned by [ValidateName] for names that cannot be a
// single directory entry.
var ErrInvalidName = errors.New("invalid file name")

// TargetPath places newName in the directory of source.
//
//	photos/IMG_1.jpg + photo_1.jpg -> photos/photo_1.jpg
func TargetPath(source, newName string) string {
	return filepath.Join(filepath.Dir(source), newName)
}

// ValidateName rejects names a rule must never produce: empty, "." or "..",
// or anything that would escape the source directory.
func ValidateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return ErrInvalidName
	case strings.ContainsRune(name, '/'), strings.ContainsRune(name, filepath.Separator):
		return ErrInvalidName
	case strings.ContainsRune(name, 0):
		return ErrInvalidName
	}
	return nil
}
