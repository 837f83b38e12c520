package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/londailey6937/chapter-analysis/internal/extractor"
	"github.com/londailey6937/chapter-analysis/internal/graph"
)

type stubEvaluator struct {
	name        string
	score       float64
	weight      float64
	suggestions []Suggestion
	err         error
	panics      bool
}

func (s *stubEvaluator) Principle() string { return s.name }

func (s *stubEvaluator) Evaluate(doc *graph.Document, g *graph.ConceptGraph) (*PrincipleScore, error) {
	if s.panics {
		panic("evaluator blew up")
	}
	if s.err != nil {
		return nil, s.err
	}
	return &PrincipleScore{
		Principle:   s.name,
		Score:       s.score,
		Weight:      s.weight,
		Findings:    []Finding{},
		Suggestions: s.suggestions,
	}, nil
}

func newTestAnalyzer(evaluators ...Evaluator) *Analyzer {
	ex := extractor.New(extractor.DefaultConfig(), nil)
	return NewAnalyzer(ex, evaluators, nil)
}

func TestAnalyzeRequiresDocument(t *testing.T) {
	a := newTestAnalyzer()
	_, err := a.Analyze(context.Background(), nil, nil)
	assert.Error(t, err)
}

func TestAnalyzeWeightedMean(t *testing.T) {
	a := newTestAnalyzer(
		&stubEvaluator{name: "one", score: 80, weight: 1},
		&stubEvaluator{name: "two", score: 60, weight: 3},
	)

	report, err := a.Analyze(context.Background(), &graph.Document{Text: "Some chapter text here."}, nil)
	require.NoError(t, err)

	// (80*1 + 60*3) / 4
	assert.InDelta(t, 65, report.OverallScore, 0.001)
	assert.Len(t, report.Principles, 2)
	assert.NotEmpty(t, report.ID)
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestAnalyzeDefaultsWeightToOne(t *testing.T) {
	a := newTestAnalyzer(
		&stubEvaluator{name: "one", score: 40},
		&stubEvaluator{name: "two", score: 80},
	)

	report, err := a.Analyze(context.Background(), &graph.Document{Text: "text"}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 60, report.OverallScore, 0.001)
	for _, ps := range report.Principles {
		assert.Equal(t, 1.0, ps.Weight)
	}
}

func TestAnalyzeClampsScores(t *testing.T) {
	a := newTestAnalyzer(
		&stubEvaluator{name: "hot", score: 150, weight: 1},
		&stubEvaluator{name: "cold", score: -20, weight: 1},
	)

	report, err := a.Analyze(context.Background(), &graph.Document{Text: "text"}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 50, report.OverallScore, 0.001)
	assert.InDelta(t, 100, report.Principles[0].Score, 0.001)
	assert.InDelta(t, 0, report.Principles[1].Score, 0.001)
}

func TestAnalyzeIsolatesFailingEvaluators(t *testing.T) {
	a := newTestAnalyzer(
		&stubEvaluator{name: "broken", err: errors.New("no data")},
		&stubEvaluator{name: "explosive", panics: true},
		&stubEvaluator{name: "fine", score: 75, weight: 1},
	)

	report, err := a.Analyze(context.Background(), &graph.Document{Text: "text"}, nil)
	require.NoError(t, err)

	require.Len(t, report.Principles, 1)
	assert.Equal(t, "fine", report.Principles[0].Principle)
	assert.InDelta(t, 75, report.OverallScore, 0.001)
}

type nilScoreEvaluator struct{}

func (nilScoreEvaluator) Principle() string { return "nil_score" }
func (nilScoreEvaluator) Evaluate(*graph.Document, *graph.ConceptGraph) (*PrincipleScore, error) {
	return nil, nil
}

func TestAnalyzeSkipsNilScores(t *testing.T) {
	a := newTestAnalyzer(nilScoreEvaluator{}, &stubEvaluator{name: "ok", score: 90})

	report, err := a.Analyze(context.Background(), &graph.Document{Text: "text"}, nil)
	require.NoError(t, err)
	require.Len(t, report.Principles, 1)
	assert.Equal(t, "ok", report.Principles[0].Principle)
}

func TestAnalyzeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAnalyzer(&stubEvaluator{name: "one", score: 50})
	_, err := a.Analyze(ctx, &graph.Document{Text: "text"}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildRecommendations(t *testing.T) {
	principles := []PrincipleScore{
		{
			Principle: "low", Score: 40,
			Suggestions: []Suggestion{{Title: "Fix low", Description: "low principle suggestion"}},
		},
		{
			Principle: "high_priority", Score: 90,
			Suggestions: []Suggestion{{Priority: priorityHigh, Title: "Urgent", Description: "always promoted"}},
		},
		{
			Principle: "healthy", Score: 90,
			Suggestions: []Suggestion{{Priority: priorityMedium, Title: "Ignored", Description: "healthy principle"}},
		},
	}

	recs := buildRecommendations(principles)
	require.Len(t, recs, 2)

	assert.Equal(t, "rec_1", recs[0].ID)
	assert.Equal(t, "Fix low", recs[0].Title)
	assert.Equal(t, priorityMedium, recs[0].Priority, "empty priority defaults to medium")

	assert.Equal(t, "rec_2", recs[1].ID)
	assert.Equal(t, "Urgent", recs[1].Title)
	assert.Equal(t, priorityHigh, recs[1].Priority)
}

func TestBuildSummary(t *testing.T) {
	doc := &graph.Document{
		Text: "alpha beta gamma delta epsilon zeta eta theta",
		Sections: []graph.Section{
			{Heading: "A", Start: 0, End: 20},
			{Heading: "B", Start: 20, End: 46},
		},
	}
	g := &graph.ConceptGraph{Concepts: []graph.Concept{{ID: "concept_1"}, {ID: "concept_2"}}}

	s := buildSummary(doc, g)
	assert.Equal(t, 8, s.WordCount)
	assert.Equal(t, 1, s.ReadingTimeMinutes)
	assert.Equal(t, 23, s.AvgSectionLength)
	assert.InDelta(t, 250, s.ConceptDensity, 0.001)
}

func TestBuildSummaryEmptyDocument(t *testing.T) {
	s := buildSummary(&graph.Document{}, graph.NewEmptyGraph())
	assert.Equal(t, 0, s.WordCount)
	assert.Equal(t, 0, s.ReadingTimeMinutes)
	assert.Equal(t, 0, s.AvgSectionLength)
	assert.Equal(t, 0.0, s.ConceptDensity)
}
