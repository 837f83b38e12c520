package analysis

import (
	"fmt"

	"github.com/londailey6937/chapter-analysis/internal/graph"
)

// DefaultEvaluators returns the built-in learning-principle evaluators.
// Callers may append their own implementations of the Evaluator contract.
func DefaultEvaluators() []Evaluator {
	return []Evaluator{
		&spacedRepetitionEvaluator{},
		&elaborationEvaluator{},
		&concreteExamplesEvaluator{},
	}
}

// spacedRepetitionEvaluator checks whether concepts are revisited after
// their introduction rather than mentioned once and abandoned.
type spacedRepetitionEvaluator struct{}

func (e *spacedRepetitionEvaluator) Principle() string { return "spaced_repetition" }

func (e *spacedRepetitionEvaluator) Evaluate(doc *graph.Document, g *graph.ConceptGraph) (*PrincipleScore, error) {
	if len(g.Concepts) == 0 {
		return &PrincipleScore{Principle: e.Principle(), Score: 0, Weight: 1.2,
			Findings: []Finding{}, Suggestions: []Suggestion{}}, nil
	}

	revisited := 0
	var singleUse []string
	for _, c := range g.Concepts {
		if len(c.Mentions) > 1 {
			revisited++
		} else if c.Importance == graph.ImportanceCore {
			singleUse = append(singleUse, c.ID)
		}
	}

	score := float64(revisited) / float64(len(g.Concepts)) * 100
	ps := &PrincipleScore{
		Principle: e.Principle(),
		Score:     score,
		Weight:    1.2,
		Findings: []Finding{{
			Description: fmt.Sprintf("%d of %d concepts are revisited after introduction", revisited, len(g.Concepts)),
		}},
		Suggestions: []Suggestion{},
	}

	if len(singleUse) > 0 {
		ps.Suggestions = append(ps.Suggestions, Suggestion{
			Priority:         priorityHigh,
			Title:            "Revisit core concepts",
			Description:      "Core concepts introduced once are never reinforced later in the chapter",
			AffectedConcepts: singleUse,
			ActionItems:      []string{"Reference these concepts again in later sections or summaries"},
		})
	}
	return ps, nil
}

// elaborationEvaluator measures how deeply mentions are elaborated with
// explanations and examples rather than name-dropped.
type elaborationEvaluator struct{}

func (e *elaborationEvaluator) Principle() string { return "elaboration" }

func (e *elaborationEvaluator) Evaluate(doc *graph.Document, g *graph.ConceptGraph) (*PrincipleScore, error) {
	total, deep, moderate := 0, 0, 0
	var shallowOnly []string
	for _, c := range g.Concepts {
		allShallow := true
		for _, m := range c.Mentions {
			total++
			switch m.Depth {
			case graph.DepthDeep:
				deep++
				allShallow = false
			case graph.DepthModerate:
				moderate++
				allShallow = false
			}
		}
		if allShallow && c.Importance == graph.ImportanceCore {
			shallowOnly = append(shallowOnly, c.ID)
		}
	}

	if total == 0 {
		return &PrincipleScore{Principle: e.Principle(), Score: 0, Weight: 1,
			Findings: []Finding{}, Suggestions: []Suggestion{}}, nil
	}

	score := (float64(deep)*1.0 + float64(moderate)*0.5) / float64(total) * 100
	ps := &PrincipleScore{
		Principle: e.Principle(),
		Score:     score,
		Weight:    1,
		Findings: []Finding{{
			Description: fmt.Sprintf("%d deep and %d moderate mentions out of %d", deep, moderate, total),
		}},
		Suggestions: []Suggestion{},
	}

	if len(shallowOnly) > 0 {
		ps.Suggestions = append(ps.Suggestions, Suggestion{
			Priority:         priorityMedium,
			Title:            "Elaborate on core concepts",
			Description:      "Some core concepts are only ever mentioned in passing",
			AffectedConcepts: shallowOnly,
			ActionItems:      []string{"Add explanations of why the concept matters", "Show a worked example"},
		})
	}
	return ps, nil
}

// concreteExamplesEvaluator rewards chapters that ground concepts with
// explicit examples, measured from example edges and example-bearing windows.
type concreteExamplesEvaluator struct{}

func (e *concreteExamplesEvaluator) Principle() string { return "concrete_examples" }

func (e *concreteExamplesEvaluator) Evaluate(doc *graph.Document, g *graph.ConceptGraph) (*PrincipleScore, error) {
	if len(g.Concepts) == 0 {
		return &PrincipleScore{Principle: e.Principle(), Score: 0, Weight: 1,
			Findings: []Finding{}, Suggestions: []Suggestion{}}, nil
	}

	exemplified := make(map[string]bool)
	for _, rel := range g.Relationships {
		if rel.Type == graph.RelationExample {
			exemplified[rel.Target] = true
		}
	}
	for _, c := range g.Concepts {
		if exemplified[c.ID] {
			continue
		}
		for _, m := range c.Mentions {
			if m.Depth == graph.DepthDeep {
				exemplified[c.ID] = true
				break
			}
		}
	}

	score := float64(len(exemplified)) / float64(len(g.Concepts)) * 100
	ps := &PrincipleScore{
		Principle: e.Principle(),
		Score:     score,
		Weight:    1,
		Findings: []Finding{{
			Description: fmt.Sprintf("%d of %d concepts are grounded with examples", len(exemplified), len(g.Concepts)),
		}},
		Suggestions: []Suggestion{},
	}

	if score < 50 {
		var missing []string
		for _, c := range g.Concepts {
			if !exemplified[c.ID] && c.Importance != graph.ImportanceDetail {
				missing = append(missing, c.ID)
			}
		}
		ps.Suggestions = append(ps.Suggestions, Suggestion{
			Priority:         priorityHigh,
			Title:            "Add concrete examples",
			Description:      "Most concepts lack a concrete example near their mentions",
			AffectedConcepts: missing,
			ActionItems:      []string{"Introduce an example with 'such as' or 'for example' near first use"},
		})
	}
	return ps, nil
}
