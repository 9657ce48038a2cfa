// Package check provides preflight validation of the renamer's inputs. It
// runs before enumeration so a missing path fails the run before any plan
// is built.
package check

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
)

// Sentinel errors returned by [Inputs].
var (
	ErrInputNotFound    = errors.New("input not found")
	ErrUnsupportedInput = errors.New("input is neither a regular file nor a directory")
)

// InputNotFoundError lists every input path that does not exist.
// It matches [ErrInputNotFound] with errors.Is.
type InputNotFoundError struct {
	Paths []string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInputNotFound, strings.Join(e.Paths, ", "))
}

func (e *InputNotFoundError) Is(target error) bool {
	return target == ErrInputNotFound
}

// Logger is the minimal logging interface needed by Inputs.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Debug(string, ...interface{})
}

// Inputs stats every path. Missing paths are collected into one
// *InputNotFoundError; other stat failures and special files (sockets,
// devices) are returned immediately.
func Inputs(fsys afero.Fs, paths []string, log Logger) error {
	var missing []string
	for _, p := range paths {
		info, err := fsys.Stat(p)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			missing = append(missing, p)
			continue
		case err != nil:
			return fmt.Errorf("stat %s: %w", p, err)
		}

		mode := info.Mode()
		if !mode.IsDir() && !mode.IsRegular() {
			return fmt.Errorf("%s: %w", p, ErrUnsupportedInput)
		}
		if mode.IsDir() {
			log.Debug("Input directory: %s", p)
		} else {
			log.Debug("Input file: %s", p)
		}
	}
	if len(missing) > 0 {
		return &InputNotFoundError{Paths: missing}
	}
	return nil
}
