package extractor

import (
	"strings"

	"github.com/londailey6937/chapter-analysis/internal/graph"
)

const (
	defaultProximity = 500
	cueThreshold     = 2
	unionPadding     = 100
)

var (
	prerequisiteCues = []string{"before", "first", "foundation", "builds on", "requires", "prerequisite"}
	contrastCues     = []string{"unlike", "whereas", "in contrast", "however", "but", "different from"}
)

// inferRelationships classifies pairwise relationships between concepts from
// mention proximity and lexical cues. Precedence: prerequisite > contrasts >
// example > related. Related edges are mirrored; typed edges are not.
func inferRelationships(text string, concepts []graph.Concept, proximity int) []graph.Relationship {
	if proximity <= 0 {
		proximity = defaultProximity
	}

	relationships := []graph.Relationship{}
	for i := 0; i < len(concepts); i++ {
		for j := i + 1; j < len(concepts); j++ {
			rels := classifyPair(text, &concepts[i], &concepts[j], proximity)
			relationships = append(relationships, rels...)
		}
	}
	return relationships
}

func classifyPair(text string, a, b *graph.Concept, proximity int) []graph.Relationship {
	var (
		cooccur              int
		prereqFwd, prereqRev int // fwd: a's mention precedes b's
		contrasts            int
		exampleFwd           int // b given as an example of a
		exampleRev           int // a given as an example of b
	)

	nameA := strings.ToLower(a.Name)
	nameB := strings.ToLower(b.Name)

	for _, ma := range a.Mentions {
		for _, mb := range b.Mentions {
			dist := ma.Position - mb.Position
			if dist < 0 {
				dist = -dist
			}
			if dist >= proximity {
				continue
			}
			cooccur++

			window := strings.ToLower(unionWindow(text, ma, mb))

			for _, cue := range prerequisiteCues {
				if strings.Contains(window, cue) {
					if ma.Position < mb.Position {
						prereqFwd++
					} else {
						prereqRev++
					}
				}
			}
			for _, cue := range contrastCues {
				if strings.Contains(window, cue) {
					contrasts++
				}
			}
			if matchesExamplePattern(window, nameA, nameB) {
				exampleFwd++
			}
			if matchesExamplePattern(window, nameB, nameA) {
				exampleRev++
			}
		}
	}

	switch {
	case prereqFwd+prereqRev >= cueThreshold:
		src, dst := a.ID, b.ID
		if prereqRev > prereqFwd {
			src, dst = b.ID, a.ID
		}
		return []graph.Relationship{{
			Source: src, Target: dst,
			Type:     graph.RelationPrerequisite,
			Strength: cueStrength(prereqFwd + prereqRev),
		}}
	case contrasts >= cueThreshold:
		return []graph.Relationship{{
			Source: a.ID, Target: b.ID,
			Type:     graph.RelationContrasts,
			Strength: cueStrength(contrasts),
		}}
	case exampleFwd+exampleRev >= cueThreshold:
		// the example is the source of the edge
		src, dst := b.ID, a.ID
		if exampleRev > exampleFwd {
			src, dst = a.ID, b.ID
		}
		return []graph.Relationship{{
			Source: src, Target: dst,
			Type:     graph.RelationExample,
			Strength: cueStrength(exampleFwd + exampleRev),
		}}
	case cooccur > 0:
		strength := float64(cooccur) * 0.1
		if strength > 1 {
			strength = 1
		}
		return []graph.Relationship{
			{Source: a.ID, Target: b.ID, Type: graph.RelationRelated, Strength: strength},
			{Source: b.ID, Target: a.ID, Type: graph.RelationRelated, Strength: strength},
		}
	}
	return nil
}

func cueStrength(hits int) float64 {
	strength := float64(hits) * 0.25
	if strength > 1 {
		strength = 1
	}
	return strength
}

// unionWindow spans both mentions plus padding on each side.
func unionWindow(text string, a, b graph.Mention) string {
	lo := a.Position
	if b.Position < lo {
		lo = b.Position
	}
	hi := a.Position + len(a.MatchedText)
	if end := b.Position + len(b.MatchedText); end > hi {
		hi = end
	}

	lo -= unionPadding
	if lo < 0 {
		lo = 0
	}
	hi += unionPadding
	if hi > len(text) {
		hi = len(text)
	}
	return text[lo:hi]
}

// matchesExamplePattern checks the literal sentence templates that present
// example as an instance of general.
func matchesExamplePattern(window, general, example string) bool {
	if general == "" || example == "" {
		return false
	}
	templates := []string{
		general + " such as " + example,
		general + " like " + example,
		general + " (e.g., " + example,
		example + " is an example of " + general,
		example + " exemplifies " + general,
	}
	for _, tpl := range templates {
		if strings.Contains(window, tpl) {
			return true
		}
	}
	return false
}

// attachRelations back-fills the per-concept ID lists from the edge set.
func attachRelations(concepts []graph.Concept, relationships []graph.Relationship) {
	index := make(map[string]*graph.Concept, len(concepts))
	for i := range concepts {
		index[concepts[i].ID] = &concepts[i]
	}

	for _, rel := range relationships {
		src, okSrc := index[rel.Source]
		dst, okDst := index[rel.Target]
		if !okSrc || !okDst {
			continue
		}
		switch rel.Type {
		case graph.RelationRelated:
			src.RelatedConcepts = appendUnique(src.RelatedConcepts, rel.Target)
		case graph.RelationPrerequisite:
			dst.Prerequisites = appendUnique(dst.Prerequisites, rel.Source)
		case graph.RelationExample:
			dst.Applications = appendUnique(dst.Applications, rel.Source)
		}
	}
}

func appendUnique(list []string, id string) []string {
	for _, existing := range list {
		if existing == id {
			return list
		}
	}
	return append(list, id)
}
