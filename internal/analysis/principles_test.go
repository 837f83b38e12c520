package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/londailey6937/chapter-analysis/internal/graph"
)

func mentionsWithDepth(depths ...string) []graph.Mention {
	mentions := make([]graph.Mention, len(depths))
	for i, d := range depths {
		mentions[i] = graph.Mention{Position: i * 100, Depth: d, IsRevisit: i > 0}
	}
	return mentions
}

func TestDefaultEvaluators(t *testing.T) {
	evaluators := DefaultEvaluators()
	require.Len(t, evaluators, 3)

	names := map[string]bool{}
	for _, ev := range evaluators {
		names[ev.Principle()] = true
	}
	assert.True(t, names["spaced_repetition"])
	assert.True(t, names["elaboration"])
	assert.True(t, names["concrete_examples"])
}

func TestSpacedRepetitionEvaluator(t *testing.T) {
	g := &graph.ConceptGraph{Concepts: []graph.Concept{
		{ID: "concept_1", Importance: graph.ImportanceCore,
			Mentions: mentionsWithDepth(graph.DepthShallow, graph.DepthShallow)},
		{ID: "concept_2", Importance: graph.ImportanceCore,
			Mentions: mentionsWithDepth(graph.DepthShallow)},
		{ID: "concept_3", Importance: graph.ImportanceDetail,
			Mentions: mentionsWithDepth(graph.DepthShallow, graph.DepthShallow)},
		{ID: "concept_4", Importance: graph.ImportanceDetail,
			Mentions: mentionsWithDepth(graph.DepthShallow)},
	}}

	ps, err := (&spacedRepetitionEvaluator{}).Evaluate(&graph.Document{}, g)
	require.NoError(t, err)

	assert.InDelta(t, 50, ps.Score, 0.001)
	assert.InDelta(t, 1.2, ps.Weight, 0.001)

	// only the single-mention core concept triggers the suggestion
	require.Len(t, ps.Suggestions, 1)
	assert.Equal(t, priorityHigh, ps.Suggestions[0].Priority)
	assert.Equal(t, []string{"concept_2"}, ps.Suggestions[0].AffectedConcepts)
}

func TestSpacedRepetitionEmptyGraph(t *testing.T) {
	ps, err := (&spacedRepetitionEvaluator{}).Evaluate(&graph.Document{}, graph.NewEmptyGraph())
	require.NoError(t, err)
	assert.Equal(t, 0.0, ps.Score)
}

func TestElaborationEvaluator(t *testing.T) {
	g := &graph.ConceptGraph{Concepts: []graph.Concept{
		{ID: "concept_1", Importance: graph.ImportanceCore,
			Mentions: mentionsWithDepth(graph.DepthDeep, graph.DepthModerate)},
		{ID: "concept_2", Importance: graph.ImportanceCore,
			Mentions: mentionsWithDepth(graph.DepthShallow, graph.DepthShallow)},
	}}

	ps, err := (&elaborationEvaluator{}).Evaluate(&graph.Document{}, g)
	require.NoError(t, err)

	// (1 deep + 0.5*1 moderate) / 4 mentions
	assert.InDelta(t, 37.5, ps.Score, 0.001)

	require.Len(t, ps.Suggestions, 1)
	assert.Equal(t, []string{"concept_2"}, ps.Suggestions[0].AffectedConcepts)
}

func TestConcreteExamplesEvaluator(t *testing.T) {
	g := &graph.ConceptGraph{
		Concepts: []graph.Concept{
			{ID: "concept_1", Importance: graph.ImportanceCore,
				Mentions: mentionsWithDepth(graph.DepthShallow)},
			{ID: "concept_2", Importance: graph.ImportanceSupporting,
				Mentions: mentionsWithDepth(graph.DepthShallow)},
			{ID: "concept_3", Importance: graph.ImportanceDetail,
				Mentions: mentionsWithDepth(graph.DepthShallow)},
		},
		Relationships: []graph.Relationship{
			{Source: "concept_3", Target: "concept_1", Type: graph.RelationExample},
		},
	}

	ps, err := (&concreteExamplesEvaluator{}).Evaluate(&graph.Document{}, g)
	require.NoError(t, err)

	assert.InDelta(t, 100.0/3, ps.Score, 0.001)

	// low score promotes the ungrounded non-detail concepts
	require.Len(t, ps.Suggestions, 1)
	assert.Equal(t, priorityHigh, ps.Suggestions[0].Priority)
	assert.Equal(t, []string{"concept_2"}, ps.Suggestions[0].AffectedConcepts)
}

func TestConcreteExamplesDeepMentionCounts(t *testing.T) {
	g := &graph.ConceptGraph{Concepts: []graph.Concept{
		{ID: "concept_1", Mentions: mentionsWithDepth(graph.DepthDeep)},
		{ID: "concept_2", Mentions: mentionsWithDepth(graph.DepthShallow)},
	}}

	ps, err := (&concreteExamplesEvaluator{}).Evaluate(&graph.Document{}, g)
	require.NoError(t, err)
	assert.InDelta(t, 50, ps.Score, 0.001)
}
