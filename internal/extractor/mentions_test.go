package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/londailey6937/chapter-analysis/internal/graph"
	"github.com/londailey6937/chapter-analysis/internal/library"
)

func TestTrackOrderingAndRevisitFlags(t *testing.T) {
	text := "Diffusion moves particles. Later, diffusion continues. Finally diffusion stops."
	tracker := newMentionTracker(newPatternTable(), 100, nil)

	mentions := tracker.track(text, "diffusion", nil)
	require.Len(t, mentions, 3)

	assert.False(t, mentions[0].IsRevisit)
	assert.True(t, mentions[1].IsRevisit)
	assert.True(t, mentions[2].IsRevisit)
	for i := 1; i < len(mentions); i++ {
		assert.Greater(t, mentions[i].Position, mentions[i-1].Position)
	}
}

func TestTrackAliasMentions(t *testing.T) {
	text := "A cell divides. The cells then specialize."
	tracker := newMentionTracker(newPatternTable(), 100, nil)

	mentions := tracker.track(text, "cell", []string{"cells"})
	require.Len(t, mentions, 2)
	assert.False(t, mentions[0].IsAlias)
	assert.True(t, mentions[1].IsAlias)
	assert.Equal(t, "cells", mentions[1].MatchedText)
}

func TestTrackSkipsTOCLines(t *testing.T) {
	text := "Diffusion ......................... 4\n" +
		"\n" +
		"The process of diffusion moves solutes from high to low concentration."
	tracker := newMentionTracker(newPatternTable(), 100, nil)

	mentions := tracker.track(text, "diffusion", nil)
	require.Len(t, mentions, 1)
	assert.Equal(t, strings.Index(text, "diffusion moves"), mentions[0].Position)
}

func TestTrackDisambiguationGateDropsMentions(t *testing.T) {
	lib, ok := library.Builtin("computing")
	require.True(t, ok)
	gate := newDisambiguator(lib)
	require.NotNil(t, gate)

	tracker := newMentionTracker(newPatternTable(), 100, gate)

	plain := tracker.track("I promise to finish the report soon.", "promise", nil)
	assert.Empty(t, plain)

	code := tracker.track("const p = new Promise((resolve) => resolve(1));", "promise", nil)
	require.Len(t, code, 1)
	assert.Equal(t, "Promise", code[0].MatchedText)
}

func TestContextWindowEllipsis(t *testing.T) {
	text := strings.Repeat("x", 300)

	window := contextWindow(text, 150, 155, 100)
	assert.True(t, strings.HasPrefix(window, "..."))
	assert.True(t, strings.HasSuffix(window, "..."))

	full := contextWindow(text, 0, 5, 400)
	assert.Equal(t, text, full)
}

func TestIsTOCLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"dotted leader with page", "Osmosis ................. 12", true},
		{"short entry with page", "Osmosis 12", true},
		{"short dotted leader without page", "Osmosis ..........", true},
		{"prose ending in a year", "The technique of osmosis was first described rigorously by plant physiologists in 1877", false},
		{"plain prose", "Osmosis moves water across membranes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := strings.Index(strings.ToLower(tt.line), "osmosis")
			require.GreaterOrEqual(t, start, 0)
			assert.Equal(t, tt.want, isTOCLine(tt.line, start, start+len("osmosis")))
		})
	}
}

func TestClassifyDepth(t *testing.T) {
	deep := "this works because pressure rises, for example in sealed containers"
	moderate := "this happens because pressure rises steadily"
	example := "metals such as sodium conduct heat"
	shallow := "the pressure rises"

	assert.Equal(t, graph.DepthDeep, classifyDepth(deep))
	assert.Equal(t, graph.DepthModerate, classifyDepth(moderate))
	assert.Equal(t, graph.DepthModerate, classifyDepth(example))
	assert.Equal(t, graph.DepthShallow, classifyDepth(shallow))
}
