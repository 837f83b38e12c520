package extractor

import (
	"math"
	"sort"

	"github.com/londailey6937/chapter-analysis/internal/graph"
)

// rankScore combines mention count with earliness of first mention.
func rankScore(c *graph.Concept) float64 {
	return float64(len(c.Mentions))*10 + (1000-float64(c.FirstMentionPosition))*0.01
}

// buildHierarchy partitions concepts into core, supporting and detail tiers
// by relative rank: top 20% core, next 30% supporting, remainder detail
// (ceil at each boundary). Concept importance is overwritten to match the
// assigned tier. Re-running on unchanged mention data reproduces the same
// assignment.
func buildHierarchy(concepts []graph.Concept) graph.Hierarchy {
	hierarchy := graph.Hierarchy{
		Core:       []string{},
		Supporting: []string{},
		Detail:     []string{},
	}
	if len(concepts) == 0 {
		return hierarchy
	}

	order := make([]int, len(concepts))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return rankScore(&concepts[order[a]]) > rankScore(&concepts[order[b]])
	})

	coreCount := int(math.Ceil(float64(len(concepts)) * 0.2))
	supportingCount := int(math.Ceil(float64(len(concepts)) * 0.3))

	for rank, idx := range order {
		c := &concepts[idx]
		switch {
		case rank < coreCount:
			c.Importance = graph.ImportanceCore
			hierarchy.Core = append(hierarchy.Core, c.ID)
		case rank < coreCount+supportingCount:
			c.Importance = graph.ImportanceSupporting
			hierarchy.Supporting = append(hierarchy.Supporting, c.ID)
		default:
			c.Importance = graph.ImportanceDetail
			hierarchy.Detail = append(hierarchy.Detail, c.ID)
		}
	}
	return hierarchy
}

// buildSequence orders concept IDs by first mention position, ties broken by
// original insertion order.
func buildSequence(concepts []graph.Concept) []string {
	order := make([]int, len(concepts))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return concepts[order[a]].FirstMentionPosition < concepts[order[b]].FirstMentionPosition
	})

	sequence := make([]string, len(concepts))
	for i, idx := range order {
		sequence[i] = concepts[idx].ID
	}
	return sequence
}
