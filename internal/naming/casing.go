package naming

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseMode selects the case transform of a [KindCase] rule.
type CaseMode string

const (
	CaseLower  CaseMode = "lower"  // Whole name, extension included.
	CaseUpper  CaseMode = "upper"  // Whole name, extension included.
	CaseTitle  CaseMode = "title"  // Stem only: "my photo" -> "My Photo".
	CaseSnake  CaseMode = "snake"  // Stem only: "My Photo" -> "my_photo".
	CaseKebab  CaseMode = "kebab"  // Stem only: "My Photo" -> "my-photo".
	CaseCamel  CaseMode = "camel"  // Stem only: "my photo" -> "myPhoto".
	CasePascal CaseMode = "pascal" // Stem only: "my photo" -> "MyPhoto".
)

// CaseModes lists the accepted modes in help order.
var CaseModes = []CaseMode{CaseLower, CaseUpper, CaseTitle, CaseSnake, CaseKebab, CaseCamel, CasePascal}

// ParseCaseMode validates s (case-insensitively) as a CaseMode.
func ParseCaseMode(s string) (CaseMode, error) {
	m := CaseMode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range CaseModes {
		if m == known {
			return m, nil
		}
	}
	names := make([]string, len(CaseModes))
	for i, known := range CaseModes {
		names[i] = string(known)
	}
	return "", fmt.Errorf("invalid case %q (use %s)", s, strings.Join(names, ", "))
}

func (m CaseMode) apply(name string) string {
	switch m {
	case CaseLower:
		return cases.Lower(language.Und).String(name)
	case CaseUpper:
		return cases.Upper(language.Und).String(name)
	}

	stem, ext := SplitExt(name)
	switch m {
	case CaseTitle:
		stem = cases.Title(language.Und).String(stem)
	case CaseSnake:
		stem = strcase.ToSnake(stem)
	case CaseKebab:
		stem = strcase.ToKebab(stem)
	case CaseCamel:
		stem = strcase.ToLowerCamel(stem)
	case CasePascal:
		stem = strcase.ToCamel(stem)
	}
	return stem + ext
}
