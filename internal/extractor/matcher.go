package extractor

import (
	"regexp"
	"sort"
	"strings"
)

// patternTable caches one compiled whole-word pattern per normalized term.
// The discoverer and the mention tracker share a table per extraction call so
// discovery and tracking match with identical semantics and no term is
// compiled twice.
type patternTable struct {
	patterns map[string]*regexp.Regexp
}

func newPatternTable() *patternTable {
	return &patternTable{patterns: make(map[string]*regexp.Regexp)}
}

// normalizeTerm lowercases a term and collapses internal whitespace.
func normalizeTerm(term string) string {
	return strings.ToLower(strings.Join(strings.Fields(term), " "))
}

// compile builds the pattern for a term on first use. All literal characters
// are escaped, so user-supplied vocabularies cannot inject regex syntax.
// Internal whitespace in the term matches one or more whitespace or hyphen
// characters in the text, and matching is case-insensitive with whole-word
// boundaries. Returns nil for degenerate terms.
func (t *patternTable) compile(term string) *regexp.Regexp {
	key := normalizeTerm(term)
	if key == "" {
		return nil
	}
	if re, ok := t.patterns[key]; ok {
		return re
	}

	parts := strings.Fields(key)
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = regexp.QuoteMeta(p)
	}
	re, err := regexp.Compile(`(?i)\b` + strings.Join(escaped, `[\s-]+`) + `\b`)
	if err != nil {
		return nil
	}
	t.patterns[key] = re
	return re
}

type termMatch struct {
	start int
	end   int
	text  string
}

// match finds every whole-word occurrence of term in text.
func (t *patternTable) match(term, text string) []termMatch {
	re := t.compile(term)
	if re == nil {
		return nil
	}
	locs := re.FindAllStringIndex(text, -1)
	matches := make([]termMatch, 0, len(locs))
	for _, loc := range locs {
		matches = append(matches, termMatch{start: loc[0], end: loc[1], text: text[loc[0]:loc[1]]})
	}
	return matches
}

type conceptMatch struct {
	start   int
	end     int
	text    string
	isAlias bool
}

// matchConcept finds all occurrences of a canonical term and its aliases.
// When a canonical match and an alias match start at the same offset the
// canonical match wins; among alias matches at the same offset the longest
// surface form wins.
func (t *patternTable) matchConcept(canonical string, aliases []string, text string) []conceptMatch {
	byStart := make(map[int]conceptMatch)

	for _, m := range t.match(canonical, text) {
		byStart[m.start] = conceptMatch{start: m.start, end: m.end, text: m.text}
	}
	for _, alias := range aliases {
		for _, m := range t.match(alias, text) {
			if prev, ok := byStart[m.start]; ok {
				if !prev.isAlias || len(prev.text) >= len(m.text) {
					continue
				}
			}
			byStart[m.start] = conceptMatch{start: m.start, end: m.end, text: m.text, isAlias: true}
		}
	}

	matches := make([]conceptMatch, 0, len(byStart))
	for _, m := range byStart {
		matches = append(matches, m)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].start < matches[j].start })
	return matches
}
