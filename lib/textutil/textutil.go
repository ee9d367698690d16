package textutil

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

// NormalizeText canonicalizes text extracted from problem markup.
// NFKC runs first so typographic variants (superscript minus,
// non-breaking spaces) fold into their plain forms before the minus
// replacement; applying the function twice yields the same output.
func NormalizeText(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ReplaceAll(s, "−", "-")
	s = strings.ReplaceAll(s, "­", "")
	return s
}
