package extractor

import (
	"sort"
	"strings"
)

// Scoring weights. The threshold and cap are tunable through Config; the
// relative weights are fixed for behavioral parity across deployments.
const (
	tfScale            = 1000.0
	tfCap              = 30.0
	headingWeight      = 25.0
	definitionBonus    = 30.0
	wordCountWeight    = 5.0
	wordCountCap       = 15.0
	earlyBonus         = 10.0
	revisitWeight      = 3.0
	revisitCap         = 20.0
	libraryBonus       = 50.0
	chemicalBonus      = 20.0
	technicalBonus     = 15.0
	shortWordPenalty   = 10.0
	shortWordMaxLen    = 4
	shortWordMinFreq   = 3
	earlyDocumentShare = 0.1
)

// scoreCandidate assigns the salience score: a sum of independently capped
// signal contributions.
func scoreCandidate(c *candidate, totalWords, textLen int) float64 {
	score := 0.0

	if totalWords > 0 {
		tf := float64(c.Frequency) / float64(totalWords) * tfScale
		if tf > tfCap {
			tf = tfCap
		}
		score += tf
	}

	score += float64(c.HeadingCount) * headingWeight

	if c.HasInlineDefinition {
		score += definitionBonus
	}

	wc := float64(len(strings.Fields(c.Key))) * wordCountWeight
	if wc > wordCountCap {
		wc = wordCountCap
	}
	score += wc

	if len(c.Positions) > 0 && textLen > 0 {
		if float64(c.Positions[0]) < float64(textLen)*earlyDocumentShare {
			score += earlyBonus
		}
	}

	if c.Frequency > 1 {
		revisit := float64(c.Frequency) * revisitWeight
		if revisit > revisitCap {
			revisit = revisitCap
		}
		score += revisit
	}

	if c.IsLibraryTerm {
		score += libraryBonus
	}
	if c.IsChemicalFormula {
		score += chemicalBonus
	}
	if c.IsTechnicalTerm {
		score += technicalBonus
	}

	if !c.IsLibraryTerm && !strings.Contains(c.Key, " ") &&
		len(c.Key) <= shortWordMaxLen && c.Frequency < shortWordMinFreq {
		score -= shortWordPenalty
	}

	return score
}

// filterCandidates scores the pool, discards candidates at or below the
// threshold and returns the survivors in descending score order, capped to
// maxConcepts. Ties keep insertion order so output stays deterministic.
func filterCandidates(pool *candidatePool, totalWords, textLen int, threshold float64, maxConcepts int) []*candidate {
	ordered := pool.ordered()
	survivors := make([]*candidate, 0, len(ordered))
	rank := make(map[*candidate]int, len(ordered))

	for i, c := range ordered {
		c.Score = scoreCandidate(c, totalWords, textLen)
		if c.Score <= threshold {
			continue
		}
		rank[c] = i
		survivors = append(survivors, c)
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		if survivors[i].Score != survivors[j].Score {
			return survivors[i].Score > survivors[j].Score
		}
		return rank[survivors[i]] < rank[survivors[j]]
	})

	if maxConcepts > 0 && len(survivors) > maxConcepts {
		survivors = survivors[:maxConcepts]
	}
	return survivors
}
