package config

// This file binds CLI flags onto a pflag.FlagSet and renders grouped help.
// Flags are grouped into rule, selection, behavior, and display.
// Negated flags (e.g. --no-color) are applied after parsing so Config
// defaults hold unless set.

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/backmassage/renamer/internal/naming"
)

// Flags binds a Config to a flag set. Call [Flags.Finalize] after parsing.
type Flags struct {
	cfg     *Config
	negated negatedFlags
}

// negatedFlags holds boolean flags that are applied after parsing.
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
}

// BindFlags registers every renamer flag on fs, writing into cfg.
func BindFlags(fs *pflag.FlagSet, cfg *Config) *Flags {
	f := &Flags{cfg: cfg}
	defineRuleFlags(fs, cfg)
	defineSelectionFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &f.negated)
	fs.SortFlags = false
	return f
}

// ShowVersion reports whether --version was given.
func (f *Flags) ShowVersion() bool { return f.negated.showVersion }

// Finalize applies negated flags and stores the positional arguments.
func (f *Flags) Finalize(args []string) {
	applyNegatedFlags(f.cfg, &f.negated)
	f.cfg.SetPaths(args)
}

// defineRuleFlags registers -p/--pattern, -r/--replacement, -x/--regex, --case, --number, --start, --step.
func defineRuleFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.Pattern, "pattern", "p", "", "Text to replace in file names")
	fs.StringVarP(&cfg.Replacement, "replacement", "r", "", "Replacement text")
	fs.BoolVarP(&cfg.Regex, "regex", "x", false, "Treat --pattern as a regular expression")
	fs.Var(&caseModeValue{&cfg.Case}, "case", "Case transform: "+caseModeList())
	fs.StringVar(&cfg.NumberTemplate, "number", "", `Numbering template, e.g. "photo_{n:3}"`)
	fs.IntVar(&cfg.NumberStart, "start", cfg.NumberStart, "First number for --number")
	fs.IntVar(&cfg.NumberStep, "step", cfg.NumberStep, "Increment for --number")
}

// defineSelectionFlags registers -R/--recursive and -m/--match.
func defineSelectionFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.BoolVarP(&cfg.Recursive, "recursive", "R", false, "Descend into subdirectories")
	fs.StringVarP(&cfg.Match, "match", "m", "", "Only rename files whose name matches this glob")
}

// defineBehaviorFlags registers dry-run, apply, overwrite, dedupe.
func defineBehaviorFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Preview only; do not rename (default unless --apply)")
	fs.BoolVarP(&cfg.Apply, "apply", "a", false, "Perform the renames")
	fs.BoolVar(&cfg.Overwrite, "overwrite", false, "Allow replacing existing files outside the rename set")
	fs.BoolVar(&cfg.Dedupe, "dedupe", false, "Suffix colliding targets with _N instead of rejecting")
}

// defineDisplayFlags registers output format, color, verbose, log and version.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.VarP(&outputValue{&cfg.Output}, "output", "o", "Report format: text | table | json")
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")
	fs.BoolVarP(&n.showVersion, "version", "V", false, "Print version and exit")
}

// applyNegatedFlags copies negated and override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

func caseModeList() string {
	names := make([]string, len(naming.CaseModes))
	for i, m := range naming.CaseModes {
		names[i] = string(m)
	}
	return strings.Join(names, " | ")
}

// PrintUsage writes grouped help text. Column-aligned for readability.
func PrintUsage(w io.Writer, version string) {
	const col1 = 30 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "renamer v" + version + " - batch file renamer"},
		{"", ""},
		{"  renamer [OPTIONS] [path...]", ""},
		{"", ""},
		{"Rule (exactly one)", ""},
		{"  -p, --pattern <text>", "Text (or regex with -x) to replace"},
		{"  -r, --replacement <text>", "Replacement; $1 / ${name} with -x"},
		{"  -x, --regex", "Treat --pattern as a regular expression"},
		{"  --case <mode>", caseModeList()},
		{"  --number <template>", "Tokens {n} {n:W} {name} {ext}"},
		{"  --start <n>", "First number (default: 1)"},
		{"  --step <n>", "Number increment (default: 1)"},
		{"", ""},
		{"Selection", ""},
		{"  -R, --recursive", "Descend into subdirectories"},
		{"  -m, --match <glob>", "Only file names matching the glob"},
		{"", ""},
		{"Behavior", ""},
		{"  -n, --dry-run", "Preview only (default)"},
		{"  -a, --apply", "Perform the renames"},
		{"  --overwrite", "Replace existing files outside the rename set"},
		{"  --dedupe", "Suffix colliding targets with _N"},
		{"", ""},
		{"Display", ""},
		{"  -o, --output <format>", "text | table | json (default: text)"},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
		{"", ""},
		{"Exit codes: 0 ok, 1 rejected (conflicts, missing input), 2 partial failure", ""},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// pflag.Value adapters so enum types (CaseMode, OutputFormat) can be flags.

type caseModeValue struct{ p *naming.CaseMode }

func (c *caseModeValue) String() string { return string(*c.p) }
func (c *caseModeValue) Type() string   { return "mode" }
func (c *caseModeValue) Set(s string) error {
	m, err := naming.ParseCaseMode(s)
	if err != nil {
		return err
	}
	*c.p = m
	return nil
}

type outputValue struct{ p *OutputFormat }

func (o *outputValue) String() string { return string(*o.p) }
func (o *outputValue) Type() string   { return "format" }
func (o *outputValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "text":
		*o.p = OutputText
	case "table":
		*o.p = OutputTable
	case "json":
		*o.p = OutputJSON
	default:
		return fmt.Errorf("invalid output %q (use 'text', 'table' or 'json')", s)
	}
	return nil
}
