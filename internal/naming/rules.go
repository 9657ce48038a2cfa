package naming

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Kind identifies which transformation a [Rule] applies.
type Kind int

const (
	KindLiteral Kind = iota // Substring replace.
	KindRegex               // Regular expression substitute.
	KindCase                // Case transform.
	KindNumber              // Sequential numbering from a template.
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindRegex:
		return "regex"
	case KindCase:
		return "case"
	case KindNumber:
		return "number"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ErrEmptyPattern is returned when a literal or regex rule is built without a pattern.
var ErrEmptyPattern = errors.New("pattern must not be empty")

// Rule is an immutable rename rule. Exactly one transformation is active,
// selected by Kind; the zero value is not usable, build rules with
// [Literal], [Regex], [Case] or [Number].
type Rule struct {
	kind        Kind
	pattern     string
	replacement string
	re          *regexp.Regexp
	caseMode    CaseMode
	tmpl        *Template
	start       int
	step        int
}

// Literal replaces every occurrence of pattern with replacement.
func Literal(pattern, replacement string) (Rule, error) {
	if pattern == "" {
		return Rule{}, ErrEmptyPattern
	}
	return Rule{kind: KindLiteral, pattern: pattern, replacement: replacement}, nil
}

// Regex substitutes every match of pattern with replacement. The replacement
// may reference groups as $1 or ${name}.
func Regex(pattern, replacement string) (Rule, error) {
	if pattern == "" {
		return Rule{}, ErrEmptyPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("invalid regex %q: %w", pattern, err)
	}
	return Rule{kind: KindRegex, pattern: pattern, replacement: replacement, re: re}, nil
}

// Case changes letter case according to mode.
func Case(mode CaseMode) (Rule, error) {
	m, err := ParseCaseMode(string(mode))
	if err != nil {
		return Rule{}, err
	}
	return Rule{kind: KindCase, caseMode: m}, nil
}

// Number renders template for each file; the counter begins at start and
// advances by step per file in plan order.
func Number(template string, start, step int) (Rule, error) {
	t, err := ParseTemplate(template)
	if err != nil {
		return Rule{}, err
	}
	if step == 0 {
		return Rule{}, errors.New("number step must not be zero")
	}
	return Rule{kind: KindNumber, pattern: template, tmpl: t, start: start, step: step}, nil
}

// Kind reports the active transformation.
func (r Rule) Kind() Kind { return r.kind }

// Apply transforms a file name (not a path). index is the zero-based
// position of the file in plan order and only matters for numbering.
func (r Rule) Apply(name string, index int) string {
	switch r.kind {
	case KindLiteral:
		return strings.ReplaceAll(name, r.pattern, r.replacement)
	case KindRegex:
		return r.re.ReplaceAllString(name, r.replacement)
	case KindCase:
		return r.caseMode.apply(name)
	case KindNumber:
		stem, ext := SplitExt(name)
		return r.tmpl.Render(stem, ext, r.start+index*r.step)
	default:
		return name
	}
}

// Matches reports whether the rule has anything to act on in name. Case and
// number rules match every file.
func (r Rule) Matches(name string) bool {
	switch r.kind {
	case KindLiteral:
		return strings.Contains(name, r.pattern)
	case KindRegex:
		return r.re.MatchString(name)
	default:
		return true
	}
}

// String describes the rule for logs.
func (r Rule) String() string {
	switch r.kind {
	case KindLiteral, KindRegex:
		return fmt.Sprintf("%s %q -> %q", r.kind, r.pattern, r.replacement)
	case KindCase:
		return fmt.Sprintf("case %s", r.caseMode)
	case KindNumber:
		return fmt.Sprintf("number %q (start %d, step %d)", r.pattern, r.start, r.step)
	default:
		return r.kind.String()
	}
}

// SplitExt splits name into stem and extension (with its dot). Dotfiles
// without a further extension (".bashrc") are all stem.
func SplitExt(name string) (stem, ext string) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, ""
	}
	return name[:i], name[i:]
}
