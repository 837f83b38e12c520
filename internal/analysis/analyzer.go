package analysis

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/londailey6937/chapter-analysis/internal/extractor"
	"github.com/londailey6937/chapter-analysis/internal/graph"
	"github.com/londailey6937/chapter-analysis/internal/library"
)

const (
	readingWordsPerMinute = 200
	lowScoreThreshold     = 70
	priorityHigh          = "high"
	priorityMedium        = "medium"
)

type Finding struct {
	Description string   `json:"description"`
	Concepts    []string `json:"concepts,omitempty"`
}

type Suggestion struct {
	Priority         string   `json:"priority"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	AffectedConcepts []string `json:"affected_concepts,omitempty"`
	ActionItems      []string `json:"action_items,omitempty"`
}

// PrincipleScore is the result of one learning-principle evaluator.
type PrincipleScore struct {
	Principle   string       `json:"principle"`
	Score       float64      `json:"score"`
	Weight      float64      `json:"weight"`
	Findings    []Finding    `json:"findings"`
	Suggestions []Suggestion `json:"suggestions"`
}

// Evaluator scores one dimension of document quality from the concept graph.
// The analyzer knows nothing about evaluator internals, only this contract.
type Evaluator interface {
	Principle() string
	Evaluate(doc *graph.Document, g *graph.ConceptGraph) (*PrincipleScore, error)
}

type Recommendation struct {
	ID               string   `json:"id"`
	Priority         string   `json:"priority"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	AffectedConcepts []string `json:"affected_concepts"`
	ActionItems      []string `json:"action_items"`
}

type Summary struct {
	WordCount          int     `json:"word_count"`
	ReadingTimeMinutes int     `json:"reading_time_minutes"`
	AvgSectionLength   int     `json:"avg_section_length"`
	ConceptDensity     float64 `json:"concept_density"`
}

type Report struct {
	ID              string           `json:"id"`
	GeneratedAt     time.Time        `json:"generated_at"`
	Graph           *graph.ConceptGraph `json:"graph"`
	Principles      []PrincipleScore `json:"principles"`
	OverallScore    float64          `json:"overall_score"`
	Recommendations []Recommendation `json:"recommendations"`
	Summary         Summary          `json:"summary"`
}

// Analyzer runs extraction and aggregates the registered evaluators into a
// single report.
type Analyzer struct {
	extractor  *extractor.Extractor
	evaluators []Evaluator
	log        *zap.Logger
}

func NewAnalyzer(ex *extractor.Extractor, evaluators []Evaluator, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{extractor: ex, evaluators: evaluators, log: log}
}

// Analyze extracts the concept graph, runs every evaluator and compiles the
// aggregated report. A failing or panicking evaluator is skipped; the
// overall score is the weighted mean of the evaluators that succeeded.
func (a *Analyzer) Analyze(ctx context.Context, doc *graph.Document, lib *library.Library) (*Report, error) {
	if doc == nil {
		return nil, fmt.Errorf("document is required")
	}

	conceptGraph := a.extractor.Extract(doc, lib)
	a.log.Info("Concept graph extracted",
		zap.Int("concepts", len(conceptGraph.Concepts)),
		zap.Int("relationships", len(conceptGraph.Relationships)),
	)

	principles := make([]PrincipleScore, 0, len(a.evaluators))
	var weightedSum, weightTotal float64

	for _, ev := range a.evaluators {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		ps, err := a.runEvaluator(ev, doc, conceptGraph)
		if err != nil {
			a.log.Warn("Evaluator failed, skipping",
				zap.String("principle", ev.Principle()),
				zap.Error(err),
			)
			continue
		}

		ps.Score = clamp(ps.Score, 0, 100)
		if ps.Weight <= 0 {
			ps.Weight = 1
		}
		principles = append(principles, *ps)
		weightedSum += ps.Score * ps.Weight
		weightTotal += ps.Weight
	}

	overall := 0.0
	if weightTotal > 0 {
		overall = clamp(weightedSum/weightTotal, 0, 100)
	}

	report := &Report{
		ID:              uuid.New().String(),
		GeneratedAt:     time.Now().UTC(),
		Graph:           conceptGraph,
		Principles:      principles,
		OverallScore:    overall,
		Recommendations: buildRecommendations(principles),
		Summary:         buildSummary(doc, conceptGraph),
	}

	a.log.Info("Analysis complete",
		zap.String("report_id", report.ID),
		zap.Float64("overall_score", report.OverallScore),
		zap.Int("recommendations", len(report.Recommendations)),
	)
	return report, nil
}

// runEvaluator isolates one evaluator call; a panic becomes an error instead
// of aborting the whole report.
func (a *Analyzer) runEvaluator(ev Evaluator, doc *graph.Document, g *graph.ConceptGraph) (ps *PrincipleScore, err error) {
	defer func() {
		if r := recover(); r != nil {
			ps = nil
			err = fmt.Errorf("evaluator %s panicked: %v", ev.Principle(), r)
		}
	}()
	ps, err = ev.Evaluate(doc, g)
	if err == nil && ps == nil {
		err = fmt.Errorf("evaluator %s returned no score", ev.Principle())
	}
	return ps, err
}

// buildRecommendations promotes every high-priority suggestion, and every
// suggestion from a principle scoring below 70, into a recommendation.
func buildRecommendations(principles []PrincipleScore) []Recommendation {
	recommendations := []Recommendation{}
	for _, ps := range principles {
		for _, s := range ps.Suggestions {
			if s.Priority != priorityHigh && ps.Score >= lowScoreThreshold {
				continue
			}
			priority := s.Priority
			if priority == "" {
				priority = priorityMedium
			}
			recommendations = append(recommendations, Recommendation{
				ID:               fmt.Sprintf("rec_%d", len(recommendations)+1),
				Priority:         priority,
				Title:            s.Title,
				Description:      s.Description,
				AffectedConcepts: append([]string{}, s.AffectedConcepts...),
				ActionItems:      append([]string{}, s.ActionItems...),
			})
		}
	}
	return recommendations
}

func buildSummary(doc *graph.Document, g *graph.ConceptGraph) Summary {
	words := doc.WordCount()

	avgSection := 0
	if len(doc.Sections) > 0 {
		total := 0
		for _, s := range doc.Sections {
			if s.End > s.Start {
				total += s.End - s.Start
			}
		}
		avgSection = total / len(doc.Sections)
	}

	density := 0.0
	if words > 0 {
		density = float64(len(g.Concepts)) / float64(words) * 1000
	}

	return Summary{
		WordCount:          words,
		ReadingTimeMinutes: int(math.Ceil(float64(words) / readingWordsPerMinute)),
		AvgSectionLength:   avgSection,
		ConceptDensity:     density,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
