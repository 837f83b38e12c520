package extractor

import (
	"regexp"
	"sort"
	"strings"

	"github.com/londailey6937/chapter-analysis/internal/graph"
	"github.com/londailey6937/chapter-analysis/internal/library"
)

// Mining limits for the n-gram pass.
const (
	maxBigrams     = 25
	maxTrigrams    = 15
	minGramCount   = 2
	minBareWordLen = 5
)

var (
	tokenPattern     = regexp.MustCompile(`[A-Za-z][A-Za-z0-9'-]*`)
	sentenceSplitter = regexp.MustCompile(`[.!?]`)

	dottedIdentPattern = regexp.MustCompile(`\b[A-Za-z_][A-Za-z0-9_]*\.[A-Za-z_][A-Za-z0-9_]*\b`)
	bareIdentPattern   = regexp.MustCompile(`\b(?:[a-z]+[A-Z][A-Za-z0-9]*|[A-Za-z]+_[A-Za-z0-9_]+)\b`)

	definitionPattern = regexp.MustCompile(`(?i)^\s*(?:the\s+)?([A-Za-z][A-Za-z0-9' -]{1,60}?)\s+is\s+(?:a|an|the)\s+(.+)$`)
	refersToPattern   = regexp.MustCompile(`(?i)^\s*(?:the\s+)?([A-Za-z][A-Za-z0-9' -]{1,60}?)\s+refers\s+to\s+(.+)$`)
	capitalRunPattern = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3}\b`)
	chemTokenPattern  = regexp.MustCompile(`\b[A-Z][A-Za-z0-9]{1,9}\b`)
	technicalPattern  = regexp.MustCompile(`\b([a-z]+(?:\s+[a-z]+){1,2})\s+(?:is|are|refers|means|involves)\b`)
)

// discoverer generates candidate terms from structural and linguistic
// signals when no fixed vocabulary is supplied. Each mining pass takes the
// text and the shared pool, and mutates the pool in place.
type discoverer struct {
	lists WordLists
	table *patternTable
}

func newDiscoverer(lists WordLists, table *patternTable) *discoverer {
	return &discoverer{lists: lists, table: table}
}

func (d *discoverer) discover(text string, sections []graph.Section, partial *library.Library) *candidatePool {
	pool := newCandidatePool()

	d.seedLibrary(text, partial, pool)
	d.mineHeadings(text, sections, pool)
	d.mineNGrams(text, pool)
	d.mineIdentifiers(text, pool)
	d.mineSentences(text, pool)
	d.recount(text, pool)

	return pool
}

// seedLibrary scans for every term of a partial library, contributing
// frequency and positions to the pool.
func (d *discoverer) seedLibrary(text string, partial *library.Library, pool *candidatePool) {
	if !partial.Valid() {
		return
	}
	for _, def := range partial.Concepts {
		matches := d.table.match(def.Name, text)
		if len(matches) == 0 {
			continue
		}
		c := pool.get(def.Name)
		c.IsLibraryTerm = true
		for _, m := range matches {
			c.Frequency++
			c.Positions = append(c.Positions, m.start)
		}
	}
}

// mineHeadings tokenizes every section heading into candidate phrases. A
// heading hit is a strong salience signal scored separately from frequency.
func (d *discoverer) mineHeadings(text string, sections []graph.Section, pool *candidatePool) {
	for _, section := range sections {
		heading := cleanHeading(section.Heading)
		if heading == "" {
			continue
		}

		if d.acceptable(heading, pool) {
			c := pool.get(heading)
			c.HeadingCount++
			if len(c.Positions) == 0 && section.Start >= 0 {
				c.Positions = append(c.Positions, section.Start)
			}
		}

		for _, word := range strings.Fields(heading) {
			if word == heading || !d.acceptable(word, pool) {
				continue
			}
			c := pool.get(word)
			c.HeadingCount++
			if len(c.Positions) == 0 && section.Start >= 0 {
				c.Positions = append(c.Positions, section.Start)
			}
		}
	}
}

// cleanHeading strips numbering and trailing punctuation from a heading.
func cleanHeading(heading string) string {
	h := strings.TrimSpace(heading)
	h = regexp.MustCompile(`^[\d.\s]+`).ReplaceAllString(h, "")
	h = strings.Trim(h, " .:;-")
	return strings.ToLower(h)
}

type gram struct {
	text  string
	count int
	first int
	order int
}

// mineNGrams adds repeated bigrams and trigrams of non-stopword tokens.
func (d *discoverer) mineNGrams(text string, pool *candidatePool) {
	locs := tokenPattern.FindAllStringIndex(text, -1)
	type token struct {
		text string
		pos  int
	}
	tokens := make([]token, 0, len(locs))
	for _, loc := range locs {
		word := strings.ToLower(text[loc[0]:loc[1]])
		if d.lists.Stopwords[word] || d.lists.NonConcepts[word] || len(word) < 3 {
			continue
		}
		tokens = append(tokens, token{text: word, pos: loc[0]})
	}

	collect := func(n int) []gram {
		seen := make(map[string]*gram)
		var orderCount int
		for i := 0; i+n <= len(tokens); i++ {
			// n-grams must be adjacent in the source text, not merely
			// adjacent after stopword removal
			if tokens[i+n-1].pos-tokens[i].pos > n*24 {
				continue
			}
			parts := make([]string, n)
			for j := 0; j < n; j++ {
				parts[j] = tokens[i+j].text
			}
			key := strings.Join(parts, " ")
			if g, ok := seen[key]; ok {
				g.count++
				continue
			}
			seen[key] = &gram{text: key, count: 1, first: tokens[i].pos, order: orderCount}
			orderCount++
		}
		grams := make([]gram, 0, len(seen))
		for _, g := range seen {
			if g.count >= minGramCount {
				grams = append(grams, *g)
			}
		}
		sort.Slice(grams, func(a, b int) bool {
			if grams[a].count != grams[b].count {
				return grams[a].count > grams[b].count
			}
			return grams[a].order < grams[b].order
		})
		return grams
	}

	addTop := func(grams []gram, limit int) {
		if len(grams) > limit {
			grams = grams[:limit]
		}
		for _, g := range grams {
			c := pool.get(g.text)
			c.Frequency += g.count
			c.Positions = append(c.Positions, g.first)
		}
	}

	addTop(collect(2), maxBigrams)
	addTop(collect(3), maxTrigrams)
}

// mineIdentifiers captures code-like identifiers: dotted names such as
// Object.create, and bare camelCase or snake_case names of 4+ characters.
func (d *discoverer) mineIdentifiers(text string, pool *candidatePool) {
	for _, loc := range dottedIdentPattern.FindAllStringIndex(text, -1) {
		ident := text[loc[0]:loc[1]]
		if isNumericIdent(ident) {
			continue
		}
		c := pool.add(ident, loc[0])
		c.IsTechnicalTerm = true
	}
	for _, loc := range bareIdentPattern.FindAllStringIndex(text, -1) {
		ident := text[loc[0]:loc[1]]
		if len(ident) < 4 {
			continue
		}
		c := pool.add(ident, loc[0])
		c.IsTechnicalTerm = true
	}
}

func isNumericIdent(ident string) bool {
	for _, part := range strings.Split(ident, ".") {
		hasLetter := false
		for _, r := range part {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				hasLetter = true
				break
			}
		}
		if !hasLetter {
			return true
		}
	}
	return false
}

// mineSentences runs the per-sentence patterns: definitional phrasing,
// capitalized runs, chemical-formula tokens and technical phrases.
func (d *discoverer) mineSentences(text string, pool *candidatePool) {
	offset := 0
	for _, sentence := range sentenceSplitter.Split(text, -1) {
		pos := offset
		offset += len(sentence) + 1
		trimmed := strings.TrimSpace(sentence)
		if trimmed == "" {
			continue
		}

		d.mineDefinition(sentence, pos, pool)
		d.mineCapitalRuns(sentence, pos, pool)
		d.mineChemicalTokens(sentence, pos, pool)
		d.mineTechnicalPhrases(sentence, pos, pool)
	}
}

func (d *discoverer) mineDefinition(sentence string, pos int, pool *candidatePool) {
	for _, pattern := range []*regexp.Regexp{definitionPattern, refersToPattern} {
		m := pattern.FindStringSubmatch(sentence)
		if m == nil {
			continue
		}
		term := strings.TrimSpace(m[1])
		def := strings.TrimSpace(m[2])
		if term == "" || def == "" || !d.acceptable(term, pool) {
			continue
		}
		c := pool.add(term, pos+strings.Index(sentence, m[1]))
		c.HasInlineDefinition = true
		c.Definitions = append(c.Definitions, def)
		return
	}
}

func (d *discoverer) mineCapitalRuns(sentence string, pos int, pool *candidatePool) {
	// only runs at or near the sentence start are considered title-like
	window := sentence
	if len(window) > 80 {
		window = window[:80]
	}
	for _, loc := range capitalRunPattern.FindAllStringIndex(window, -1) {
		run := window[loc[0]:loc[1]]
		if !d.acceptable(run, pool) {
			continue
		}
		lower := strings.ToLower(run)
		words := strings.Fields(lower)
		skip := false
		for _, w := range words {
			if d.lists.Stopwords[w] || d.lists.NonConcepts[w] {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		pool.add(run, pos+loc[0])
	}
}

func (d *discoverer) mineChemicalTokens(sentence string, pos int, pool *candidatePool) {
	for _, loc := range chemTokenPattern.FindAllStringIndex(sentence, -1) {
		token := sentence[loc[0]:loc[1]]
		if !looksChemical(token) {
			continue
		}
		c := pool.add(token, pos+loc[0])
		c.IsChemicalFormula = true
	}
}

// looksChemical reports whether a token resembles a chemical formula: a
// capital-initial run of 10 or fewer characters mixing case and digits.
func looksChemical(token string) bool {
	if len(token) > 10 {
		return false
	}
	digits, uppers := 0, 0
	for _, r := range token {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r >= 'A' && r <= 'Z':
			uppers++
		}
	}
	// H2O, NaCl, CO2: either a digit or a second capital past the first
	return digits > 0 || uppers >= 2
}

func (d *discoverer) mineTechnicalPhrases(sentence string, pos int, pool *candidatePool) {
	for _, m := range technicalPattern.FindAllStringSubmatchIndex(sentence, -1) {
		phrase := strings.TrimSpace(sentence[m[2]:m[3]])
		if !d.acceptable(phrase, pool) {
			continue
		}
		words := strings.Fields(phrase)
		skip := false
		for _, w := range words {
			if d.lists.Stopwords[w] || d.lists.NonConcepts[w] {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		pool.add(phrase, pos+m[2])
	}
}

// acceptable applies the pool admission rule: known library terms always
// enter; otherwise multi-word phrases, or single words of 5+ characters
// outside the stopword and non-concept lists.
func (d *discoverer) acceptable(term string, pool *candidatePool) bool {
	key := normalizeTerm(term)
	if key == "" {
		return false
	}
	if c, ok := pool.lookup(key); ok && c.IsLibraryTerm {
		return true
	}
	if strings.Contains(key, " ") {
		return true
	}
	if len(key) < minBareWordLen {
		return false
	}
	return !d.lists.Stopwords[key] && !d.lists.NonConcepts[key]
}

// recount replaces mined frequencies with whole-word occurrence counts from
// the shared pattern table, so scoring sees the same match set the mention
// tracker will.
func (d *discoverer) recount(text string, pool *candidatePool) {
	for _, c := range pool.ordered() {
		matches := d.table.match(c.Term, text)
		if len(matches) == 0 {
			continue
		}
		c.Frequency = len(matches)
		positions := make([]int, len(matches))
		for i, m := range matches {
			positions[i] = m.start
		}
		c.Positions = positions
	}
}
