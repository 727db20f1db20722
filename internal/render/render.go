package render

import (
	"regexp"
	"slices"
	"strings"
)

var tokenPattern = regexp.MustCompile(`\{! ([A-Za-z][A-Za-z0-9_]*) !\}`)

// Render replaces every token of a bound placeholder with its value.
// Substitution is a single left-to-right pass: values are never re-scanned,
// and tokens without a binding are left in place.
func Render(text string, bindings []Binding) string {
	if len(bindings) == 0 {
		return text
	}
	pairs := make([]string, 0, 2*len(bindings))
	for _, b := range bindings {
		pairs = append(pairs, b.Placeholder.Token(), b.Value)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// Tokens returns the distinct placeholder names referenced by text, in order of first use.
func Tokens(text string) []Placeholder {
	var names []Placeholder
	for _, m := range tokenPattern.FindAllStringSubmatch(text, -1) {
		p := Placeholder(m[1])
		if !slices.Contains(names, p) {
			names = append(names, p)
		}
	}
	return names
}
