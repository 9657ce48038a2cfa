package naming

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/umisama/go-regexpcache"
)

// Template is a parsed numbering template. Tokens:
//
//	{n}     the counter
//	{n:W}   the counter zero-padded to width W
//	{name}  the original stem
//	{ext}   the original extension, with its dot
//
// When {ext} is absent the original extension is appended.
type Template struct {
	raw    string
	hasExt bool
}

const tokenPattern = `\{([^{}]*)\}`

// ParseTemplate validates raw. It must contain a counter token and no unknown tokens.
func ParseTemplate(raw string) (*Template, error) {
	if raw == "" {
		return nil, errors.New("number template must not be empty")
	}
	t := &Template{raw: raw}
	hasCounter := false
	for _, m := range regexpcache.MustCompile(tokenPattern).FindAllStringSubmatch(raw, -1) {
		switch tok := m[1]; {
		case tok == "n":
			hasCounter = true
		case tok == "name":
		case tok == "ext":
			t.hasExt = true
		default:
			if _, ok := counterWidth(tok); !ok {
				return nil, fmt.Errorf("unknown token {%s} in number template %q", tok, raw)
			}
			hasCounter = true
		}
	}
	if !hasCounter {
		return nil, fmt.Errorf("number template %q must contain {n}", raw)
	}
	return t, nil
}

// Render expands the template for one file.
func (t *Template) Render(stem, ext string, n int) string {
	out := regexpcache.MustCompile(tokenPattern).ReplaceAllStringFunc(t.raw, func(token string) string {
		tok := token[1 : len(token)-1]
		switch tok {
		case "n":
			return strconv.Itoa(n)
		case "name":
			return stem
		case "ext":
			return ext
		}
		w, _ := counterWidth(tok)
		return fmt.Sprintf("%0*d", w, n)
	})
	if !t.hasExt {
		out += ext
	}
	return out
}

// counterWidth parses "n:W" tokens.
func counterWidth(tok string) (int, bool) {
	m := regexpcache.MustCompile(`^n:(\d{1,2})$`).FindStringSubmatch(tok)
	if m == nil {
		return 0, false
	}
	w, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return w, true
}
