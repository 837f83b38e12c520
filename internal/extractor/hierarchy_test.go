package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/londailey6937/chapter-analysis/internal/graph"
)

func conceptWithMentions(id string, firstPos, count int) graph.Concept {
	mentions := make([]graph.Mention, count)
	for i := range mentions {
		mentions[i] = graph.Mention{Position: firstPos + i*50, IsRevisit: i > 0}
	}
	return graph.Concept{ID: id, FirstMentionPosition: firstPos, Mentions: mentions}
}

func TestBuildHierarchyPartition(t *testing.T) {
	concepts := []graph.Concept{
		conceptWithMentions("concept_1", 0, 9),
		conceptWithMentions("concept_2", 100, 6),
		conceptWithMentions("concept_3", 200, 4),
		conceptWithMentions("concept_4", 300, 2),
		conceptWithMentions("concept_5", 400, 1),
	}

	h := buildHierarchy(concepts)

	// ceil(5*0.2)=1 core, ceil(5*0.3)=2 supporting, 2 detail
	assert.Equal(t, []string{"concept_1"}, h.Core)
	assert.Equal(t, []string{"concept_2", "concept_3"}, h.Supporting)
	assert.Equal(t, []string{"concept_4", "concept_5"}, h.Detail)

	// every concept lands in exactly one tier
	seen := map[string]int{}
	for _, id := range append(append(append([]string{}, h.Core...), h.Supporting...), h.Detail...) {
		seen[id]++
	}
	require.Len(t, seen, len(concepts))
	for id, n := range seen {
		assert.Equal(t, 1, n, "concept %s assigned to multiple tiers", id)
	}

	// importance fields were rewritten to match the tiers
	assert.Equal(t, graph.ImportanceCore, concepts[0].Importance)
	assert.Equal(t, graph.ImportanceSupporting, concepts[1].Importance)
	assert.Equal(t, graph.ImportanceDetail, concepts[4].Importance)
}

func TestBuildHierarchyIdempotent(t *testing.T) {
	concepts := []graph.Concept{
		conceptWithMentions("concept_1", 10, 3),
		conceptWithMentions("concept_2", 50, 5),
		conceptWithMentions("concept_3", 90, 1),
	}

	first := buildHierarchy(concepts)
	second := buildHierarchy(concepts)
	assert.Equal(t, first, second)
}

func TestBuildHierarchyEarlierBreaksMentionTies(t *testing.T) {
	concepts := []graph.Concept{
		conceptWithMentions("concept_1", 500, 2),
		conceptWithMentions("concept_2", 10, 2),
	}

	h := buildHierarchy(concepts)
	assert.Equal(t, []string{"concept_2"}, h.Core)
}

func TestBuildHierarchyEmpty(t *testing.T) {
	h := buildHierarchy(nil)
	assert.Empty(t, h.Core)
	assert.Empty(t, h.Supporting)
	assert.Empty(t, h.Detail)
	assert.NotNil(t, h.Core)
}

func TestBuildSequence(t *testing.T) {
	concepts := []graph.Concept{
		{ID: "concept_1", FirstMentionPosition: 300},
		{ID: "concept_2", FirstMentionPosition: 10},
		{ID: "concept_3", FirstMentionPosition: 150},
	}

	seq := buildSequence(concepts)
	assert.Equal(t, []string{"concept_2", "concept_3", "concept_1"}, seq)
}

func TestBuildSequenceStableOnTies(t *testing.T) {
	concepts := []graph.Concept{
		{ID: "concept_1", FirstMentionPosition: 100},
		{ID: "concept_2", FirstMentionPosition: 100},
	}

	seq := buildSequence(concepts)
	assert.Equal(t, []string{"concept_1", "concept_2"}, seq)
}
