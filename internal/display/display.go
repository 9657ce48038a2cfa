// Package display renders a rename plan and its outcome as plain text, a
// bordered table or a JSON document.
package display

import (
	"io"

	"github.com/spf13/afero"

	"github.com/backmassage/renamer/internal/config"
	"github.com/backmassage/renamer/internal/pipeline"
)

// New returns the reporter for format, writing to out. fsys is used to
// look up file sizes for the table.
func New(format config.OutputFormat, out io.Writer, fsys afero.Fs) pipeline.Reporter {
	switch format {
	case config.OutputTable:
		return &tableReporter{out: out, fs: fsys}
	case config.OutputJSON:
		return &jsonReporter{out: out}
	default:
		return &textReporter{out: out}
	}
}
