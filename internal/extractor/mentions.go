package extractor

import (
	"regexp"
	"strings"

	"github.com/londailey6937/chapter-analysis/internal/graph"
)

const defaultContextRadius = 100

var (
	tocTrailingDigits = regexp.MustCompile(`\s\d{1,4}\s*$`)
	dottedLeader      = "...."

	explanatoryCues = []string{"because", "therefore", "results in", "means", "involves"}
	exampleCues     = []string{"for example", "such as", "e.g.", "including"}
)

// mentionTracker locates every occurrence of a concept's term and aliases,
// builds bounded context windows and classifies elaboration depth. Mentions
// on table-of-contents lines are dropped, as are mentions rejected by the
// disambiguation gate; both decisions happen before the mention list is
// finalized, so mentions.length reflects content mentions only.
type mentionTracker struct {
	table  *patternTable
	radius int
	gate   *disambiguator
}

func newMentionTracker(table *patternTable, radius int, gate *disambiguator) *mentionTracker {
	if radius <= 0 {
		radius = defaultContextRadius
	}
	return &mentionTracker{table: table, radius: radius, gate: gate}
}

// track returns the surviving mentions of a concept, sorted ascending by
// position with revisit flags set.
func (mt *mentionTracker) track(text, canonical string, aliases []string) []graph.Mention {
	matches := mt.table.matchConcept(canonical, aliases, text)
	mentions := make([]graph.Mention, 0, len(matches))

	for _, m := range matches {
		if isTOCLine(text, m.start, m.end) {
			continue
		}
		window := contextWindow(text, m.start, m.end, mt.radius)
		if mt.gate != nil && !mt.gate.valid(canonical, window) {
			continue
		}
		mentions = append(mentions, graph.Mention{
			Position:    m.start,
			MatchedText: m.text,
			Context:     window,
			Depth:       classifyDepth(window),
			IsRevisit:   len(mentions) > 0,
			IsAlias:     m.isAlias,
		})
	}
	return mentions
}

// contextWindow returns a fixed-radius window around a match, trimmed to the
// text bounds and ellipsis-marked when truncated.
func contextWindow(text string, start, end, radius int) string {
	lo := start - radius
	if lo < 0 {
		lo = 0
	}
	hi := end + radius
	if hi > len(text) {
		hi = len(text)
	}

	window := text[lo:hi]
	if lo > 0 {
		window = "..." + window
	}
	if hi < len(text) {
		window = window + "..."
	}
	return window
}

// isTOCLine reports whether the line containing a match looks like a
// table-of-contents entry: it ends in a run of digits, or is short and
// carries a dotted leader.
func isTOCLine(text string, start, end int) bool {
	lineStart := strings.LastIndexByte(text[:start], '\n') + 1
	lineEnd := strings.IndexByte(text[end:], '\n')
	if lineEnd < 0 {
		lineEnd = len(text)
	} else {
		lineEnd += end
	}

	line := strings.TrimRight(text[lineStart:lineEnd], " \t")
	if line == "" {
		return false
	}
	if tocTrailingDigits.MatchString(line) && (strings.Contains(line, dottedLeader) || len(line) < 40) {
		return true
	}
	return len(line) < 60 && strings.Contains(line, dottedLeader)
}

// classifyDepth estimates elaboration: deep when the window mixes an
// explanatory cue with an example cue, moderate when only one class is
// present, shallow otherwise.
func classifyDepth(window string) string {
	lower := strings.ToLower(window)

	hasExplanation := containsAny(lower, explanatoryCues)
	hasExample := containsAny(lower, exampleCues)

	switch {
	case hasExplanation && hasExample:
		return graph.DepthDeep
	case hasExplanation || hasExample:
		return graph.DepthModerate
	default:
		return graph.DepthShallow
	}
}

func containsAny(s string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(s, cue) {
			return true
		}
	}
	return false
}
