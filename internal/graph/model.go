package graph

// Importance tiers assigned by the hierarchy builder.
const (
	ImportanceCore       = "core"
	ImportanceSupporting = "supporting"
	ImportanceDetail     = "detail"
)

// Elaboration depth estimated for a single mention.
const (
	DepthShallow  = "shallow"
	DepthModerate = "moderate"
	DepthDeep     = "deep"
)

// Relationship types inferred between concepts.
const (
	RelationRelated      = "related"
	RelationPrerequisite = "prerequisite"
	RelationContrasts    = "contrasts"
	RelationExample      = "example"
	RelationExtends      = "extends"
)

type Document struct {
	Text     string    `json:"text"`
	Sections []Section `json:"sections,omitempty"`
}

type Section struct {
	Heading string `json:"heading"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
}

type Mention struct {
	Position    int    `json:"position"`
	MatchedText string `json:"matched_text"`
	Context     string `json:"context"`
	Depth       string `json:"depth"`
	IsRevisit   bool   `json:"is_revisit"`
	IsAlias     bool   `json:"is_alias"`
}

type Concept struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Definition           string    `json:"definition"`
	Importance           string    `json:"importance"`
	FirstMentionPosition int       `json:"first_mention_position"`
	Mentions             []Mention `json:"mentions"`
	RelatedConcepts      []string  `json:"related_concepts"`
	Prerequisites        []string  `json:"prerequisites"`
	Applications         []string  `json:"applications"`
}

type Relationship struct {
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Type     string  `json:"type"`
	Strength float64 `json:"strength"`
}

// Hierarchy is a disjoint partition of concept IDs. The union of the three
// tiers is exactly the concept set.
type Hierarchy struct {
	Core       []string `json:"core"`
	Supporting []string `json:"supporting"`
	Detail     []string `json:"detail"`
}

type ConceptGraph struct {
	Concepts      []Concept      `json:"concepts"`
	Relationships []Relationship `json:"relationships"`
	Hierarchy     Hierarchy      `json:"hierarchy"`
	Sequence      []string       `json:"sequence"`
}

// NewEmptyGraph returns a graph with all collections initialized, used for
// empty or whitespace-only documents.
func NewEmptyGraph() *ConceptGraph {
	return &ConceptGraph{
		Concepts:      []Concept{},
		Relationships: []Relationship{},
		Hierarchy: Hierarchy{
			Core:       []string{},
			Supporting: []string{},
			Detail:     []string{},
		},
		Sequence: []string{},
	}
}

// ConceptByID returns the concept with the given ID, or nil.
func (g *ConceptGraph) ConceptByID(id string) *Concept {
	for i := range g.Concepts {
		if g.Concepts[i].ID == id {
			return &g.Concepts[i]
		}
	}
	return nil
}

// WordCount counts whitespace-separated words in the document text.
func (d *Document) WordCount() int {
	count := 0
	inWord := false
	for _, r := range d.Text {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			inWord = false
		case !inWord:
			inWord = true
			count++
		}
	}
	return count
}
