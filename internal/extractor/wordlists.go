package extractor

// WordLists holds the stopword and non-concept vocabularies used by the
// candidate discoverer. They are injected through the config rather than
// read from package state so tests can substitute smaller lists.
type WordLists struct {
	Stopwords   map[string]bool
	NonConcepts map[string]bool
}

// DefaultWordLists returns the curated lists used in production.
func DefaultWordLists() WordLists {
	return WordLists{
		Stopwords:   buildSet(defaultStopwords),
		NonConcepts: buildSet(defaultNonConcepts),
	}
}

func buildSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

var defaultStopwords = []string{
	"a", "an", "the", "and", "or", "but", "if", "then", "else", "when",
	"at", "by", "for", "with", "about", "against", "between", "into",
	"through", "during", "before", "after", "above", "below", "to", "from",
	"up", "down", "in", "out", "on", "off", "over", "under", "again",
	"further", "once", "here", "there", "all", "any", "both", "each",
	"few", "more", "most", "other", "some", "such", "no", "nor", "not",
	"only", "own", "same", "so", "than", "too", "very", "can", "will",
	"just", "should", "now", "is", "are", "was", "were", "be", "been",
	"being", "have", "has", "had", "do", "does", "did", "of", "as", "it",
	"its", "this", "that", "these", "those", "they", "them", "their",
	"we", "our", "you", "your", "he", "she", "his", "her", "which", "who",
	"what", "where", "why", "how", "also", "because", "while", "until",
}

var defaultNonConcepts = []string{
	"chapter", "section", "figure", "table", "page", "example", "exercise",
	"question", "answer", "summary", "review", "introduction", "conclusion",
	"overview", "appendix", "important", "different", "various", "certain",
	"following", "several", "additional", "specific", "general", "common",
	"first", "second", "third", "next", "previous", "many", "much",
	"things", "thing", "way", "ways", "part", "parts", "note", "notes",
}
