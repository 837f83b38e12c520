package extractor

import (
	"regexp"
	"strings"

	"github.com/londailey6937/chapter-analysis/internal/library"
)

// Generic fallback check: a window must show programming vocabulary or code
// syntax for an ambiguous term to count in a code-bearing domain.
var (
	genericKeywords = []string{
		"function", "variable", "return", "const", "class", "import",
		"method", "parameter", "argument", "compile", "runtime", "syntax",
	}
	genericSyntax = []string{"()", "[]", "{}", "=>", "::", "->"}
)

// disambiguator validates mentions of ambiguous terms against their context
// windows. Patterns are supplied by the library per term; terms without a
// specific pattern set fall back to the generic keyword and syntax check.
// A nil disambiguator (non-ambiguous domain, or discovery mode) accepts
// every mention.
type disambiguator struct {
	perTerm map[string][]*regexp.Regexp
}

// newDisambiguator compiles the library's validation patterns. Returns nil
// when the library does not require disambiguation.
func newDisambiguator(lib *library.Library) *disambiguator {
	if lib == nil || !lib.Disambiguate {
		return nil
	}

	d := &disambiguator{perTerm: make(map[string][]*regexp.Regexp)}
	for term, patterns := range lib.TermPatterns {
		key := normalizeTerm(term)
		compiled := make([]*regexp.Regexp, 0, len(patterns))
		for _, p := range patterns {
			re, err := regexp.Compile(`(?i)` + p)
			if err != nil {
				continue
			}
			compiled = append(compiled, re)
		}
		if len(compiled) > 0 {
			d.perTerm[key] = compiled
		}
	}
	return d
}

// valid reports whether a mention of term should be kept given its window.
func (d *disambiguator) valid(term, window string) bool {
	if patterns, ok := d.perTerm[normalizeTerm(term)]; ok {
		for _, re := range patterns {
			if re.MatchString(window) {
				return true
			}
		}
		return false
	}
	return genericContextCheck(window)
}

func genericContextCheck(window string) bool {
	lower := strings.ToLower(window)
	for _, kw := range genericKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	for _, syn := range genericSyntax {
		if strings.Contains(window, syn) {
			return true
		}
	}
	return false
}
