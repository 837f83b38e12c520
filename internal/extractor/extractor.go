package extractor

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/londailey6937/chapter-analysis/internal/graph"
	"github.com/londailey6937/chapter-analysis/internal/library"
)

// Config carries the tunable extraction policy. Zero values fall back to the
// defaults below; the relative scoring weights are not configurable.
type Config struct {
	MaxConcepts        int
	ScoreThreshold     float64
	ContextRadius      int
	ProximityThreshold int
	InferRelationships bool
	WordLists          WordLists
}

func DefaultConfig() Config {
	return Config{
		MaxConcepts:        60,
		ScoreThreshold:     20,
		ContextRadius:      defaultContextRadius,
		ProximityThreshold: defaultProximity,
		InferRelationships: true,
		WordLists:          DefaultWordLists(),
	}
}

// Extractor runs the concept extraction pipeline. It holds no per-document
// state, so one Extractor may serve concurrent calls.
type Extractor struct {
	cfg Config
	log *zap.Logger
}

func New(cfg Config, log *zap.Logger) *Extractor {
	if cfg.MaxConcepts == 0 {
		cfg.MaxConcepts = 60
	}
	if cfg.ScoreThreshold == 0 {
		cfg.ScoreThreshold = 20
	}
	if cfg.ContextRadius == 0 {
		cfg.ContextRadius = defaultContextRadius
	}
	if cfg.ProximityThreshold == 0 {
		cfg.ProximityThreshold = defaultProximity
	}
	if cfg.WordLists.Stopwords == nil {
		cfg.WordLists = DefaultWordLists()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{cfg: cfg, log: log}
}

// Extract builds a concept graph from a document. A valid library switches
// the pipeline into library-guided mode; otherwise candidates are discovered
// from the text itself. The result is a pure function of the inputs.
func (e *Extractor) Extract(doc *graph.Document, lib *library.Library) *graph.ConceptGraph {
	if doc == nil || strings.TrimSpace(doc.Text) == "" {
		return graph.NewEmptyGraph()
	}
	text := doc.Text

	table := newPatternTable()
	guided := lib.Valid()

	var pool *candidatePool
	if guided {
		pool = e.seedFromLibrary(text, lib, table)
	} else {
		pool = newDiscoverer(e.cfg.WordLists, table).discover(text, doc.Sections, nil)
	}

	survivors := filterCandidates(pool, doc.WordCount(), len(text), e.cfg.ScoreThreshold, e.cfg.MaxConcepts)
	e.log.Debug("Candidates filtered",
		zap.Int("pool", pool.size()),
		zap.Int("survivors", len(survivors)),
		zap.Bool("library_mode", guided),
	)

	var gate *disambiguator
	if guided {
		gate = newDisambiguator(lib)
	}
	tracker := newMentionTracker(table, e.cfg.ContextRadius, gate)

	concepts := []graph.Concept{}
	for _, cand := range survivors {
		var aliases []string
		var def library.ConceptDefinition
		var hasDef bool
		if guided {
			if def, hasDef = lib.Definition(cand.Term); hasDef {
				aliases = def.Aliases
			}
		}

		mentions := tracker.track(text, cand.Term, aliases)
		if len(mentions) == 0 {
			continue
		}

		name := cand.Term
		if hasDef {
			name = def.Name
		}
		concepts = append(concepts, graph.Concept{
			ID:                   fmt.Sprintf("concept_%d", len(concepts)+1),
			Name:                 name,
			Definition:           conceptDefinition(cand, def, hasDef),
			FirstMentionPosition: mentions[0].Position,
			Mentions:             mentions,
			RelatedConcepts:      []string{},
			Prerequisites:        []string{},
			Applications:         []string{},
		})
	}

	relationships := []graph.Relationship{}
	if e.cfg.InferRelationships {
		relationships = inferRelationships(text, concepts, e.cfg.ProximityThreshold)
		attachRelations(concepts, relationships)
	}

	hierarchy := buildHierarchy(concepts)
	sequence := buildSequence(concepts)

	e.log.Debug("Concept graph built",
		zap.Int("concepts", len(concepts)),
		zap.Int("relationships", len(relationships)),
	)

	return &graph.ConceptGraph{
		Concepts:      concepts,
		Relationships: relationships,
		Hierarchy:     hierarchy,
		Sequence:      sequence,
	}
}

// seedFromLibrary builds the candidate pool from library terms only.
func (e *Extractor) seedFromLibrary(text string, lib *library.Library, table *patternTable) *candidatePool {
	pool := newCandidatePool()
	for _, def := range lib.Concepts {
		matches := table.match(def.Name, text)
		for _, alias := range def.Aliases {
			matches = append(matches, table.match(alias, text)...)
		}
		if len(matches) == 0 {
			continue
		}
		c := pool.get(def.Name)
		c.IsLibraryTerm = true
		for _, m := range matches {
			c.Frequency++
			c.Positions = append(c.Positions, m.start)
		}
		sort.Ints(c.Positions)
	}
	return pool
}

// conceptDefinition prefers the library description, then a captured inline
// definition, then a generated placeholder.
func conceptDefinition(cand *candidate, def library.ConceptDefinition, hasDef bool) string {
	if hasDef && def.Description != "" {
		return def.Description
	}
	if len(cand.Definitions) > 0 {
		return cand.Definitions[0]
	}
	return fmt.Sprintf("Mentioned %d time(s) in this chapter", cand.Frequency)
}
