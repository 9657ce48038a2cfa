// Package config holds runtime configuration: defaults, CLI flag binding, and
// validation. Defaults keep the tool safe: preview only, no overwrite.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/backmassage/renamer/internal/naming"
)

// --- Enum types for validated string fields ---

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// OutputFormat selects how the plan and results are reported.
type OutputFormat string

const (
	OutputText  OutputFormat = "text"  // One line per rename (default).
	OutputTable OutputFormat = "table" // Bordered table.
	OutputJSON  OutputFormat = "json"  // Machine-readable document on stdout.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// mutated by flag parsing and [Config.SetPaths], then checked by
// [Config.Validate] before being passed (by pointer) to the pipeline.
type Config struct {
	// Inputs (positional args). Defaults to the current directory.
	Paths []string

	// Rule selection. Exactly one of Pattern, Case, NumberTemplate is set.
	Pattern        string
	Replacement    string
	Regex          bool            // Treat Pattern as a regular expression.
	Case           naming.CaseMode // Case transform.
	NumberTemplate string          // e.g. "photo_{n:3}".
	NumberStart    int             // Default: 1.
	NumberStep     int             // Default: 1.

	// Enumeration.
	Recursive bool
	Match     string // Glob on the file name; empty matches everything.

	// Behavior flags.
	DryRun    bool // Preview only. Wins over Apply.
	Apply     bool // Perform renames.
	Overwrite bool // Allow replacing existing files outside the rename set.
	Dedupe    bool // Suffix colliding targets with _N instead of rejecting.

	// Display and logging.
	Output    OutputFormat // Default: "text".
	ColorMode ColorMode    // Default: "auto".
	Verbose   bool
	LogFile   string // Optional log file path.
}

// DefaultConfig returns the base Config before flags apply.
func DefaultConfig() Config {
	return Config{
		NumberStart: 1,
		NumberStep:  1,
		Output:      OutputText,
		ColorMode:   ColorAuto,
	}
}

// SetPaths stores positional arguments, defaulting to ".".
func (c *Config) SetPaths(args []string) {
	if len(args) == 0 {
		c.Paths = []string{"."}
		return
	}
	c.Paths = make([]string, 0, len(args))
	for _, a := range args {
		c.Paths = append(c.Paths, NormalizePathArg(a))
	}
}

// NormalizePathArg strips trailing separators from a path argument.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizePathArg(path string) string {
	if path == "/" {
		return "/"
	}
	trimmed := strings.TrimRight(path, "/"+string(filepath.Separator))
	if trimmed == "" {
		return path
	}
	return trimmed
}

// Mutates reports whether this run may touch the filesystem.
func (c *Config) Mutates() bool {
	return c.Apply && !c.DryRun
}

// Validate checks enum fields and that exactly one rename rule is selected.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	switch c.Output {
	case OutputText, OutputTable, OutputJSON:
		// valid
	default:
		return errors.New("invalid output format (use 'text', 'table' or 'json')")
	}

	selected := 0
	if c.Pattern != "" {
		selected++
	}
	if c.Case != "" {
		selected++
	}
	if c.NumberTemplate != "" {
		selected++
	}
	switch {
	case selected == 0:
		return errors.New("no rule given (use --pattern, --case or --number)")
	case selected > 1:
		return errors.New("only one of --pattern, --case or --number may be given")
	}
	if c.Regex && c.Pattern == "" {
		return errors.New("--regex requires --pattern")
	}

	if c.Match != "" {
		if _, err := filepath.Match(c.Match, ""); err != nil {
			return fmt.Errorf("invalid --match glob %q: %w", c.Match, err)
		}
	}
	if len(c.Paths) == 0 {
		return errors.New("no input paths")
	}
	return nil
}

// Rule builds the rename rule selected by the config.
func (c *Config) Rule() (naming.Rule, error) {
	switch {
	case c.Case != "":
		return naming.Case(c.Case)
	case c.NumberTemplate != "":
		return naming.Number(c.NumberTemplate, c.NumberStart, c.NumberStep)
	case c.Regex:
		return naming.Regex(c.Pattern, c.Replacement)
	default:
		return naming.Literal(c.Pattern, c.Replacement)
	}
}
