package extractor

// candidate is a provisionally discovered term, accumulated across mining
// passes before the scorer decides whether it becomes a concept.
type candidate struct {
	Term                string // display form as first seen
	Key                 string // normalized lowercase form
	Frequency           int
	HeadingCount        int
	Definitions         []string
	Positions           []int
	IsLibraryTerm       bool
	IsTechnicalTerm     bool
	IsChemicalFormula   bool
	HasInlineDefinition bool
	Score               float64
}

// candidatePool is an ordered accumulator keyed by normalized term. Mining
// passes mutate it in place; insertion order is preserved so concept IDs
// stay deterministic across runs.
type candidatePool struct {
	byKey map[string]*candidate
	keys  []string
}

func newCandidatePool() *candidatePool {
	return &candidatePool{byKey: make(map[string]*candidate)}
}

// get returns the candidate for a term, creating it on first sight.
func (p *candidatePool) get(term string) *candidate {
	key := normalizeTerm(term)
	if c, ok := p.byKey[key]; ok {
		return c
	}
	c := &candidate{Term: term, Key: key}
	p.byKey[key] = c
	p.keys = append(p.keys, key)
	return c
}

// lookup returns an existing candidate without creating one.
func (p *candidatePool) lookup(term string) (*candidate, bool) {
	c, ok := p.byKey[normalizeTerm(term)]
	return c, ok
}

// add records one sighting of a term at a position.
func (p *candidatePool) add(term string, position int) *candidate {
	c := p.get(term)
	c.Frequency++
	c.Positions = append(c.Positions, position)
	return c
}

// ordered returns all candidates in insertion order.
func (p *candidatePool) ordered() []*candidate {
	out := make([]*candidate, 0, len(p.keys))
	for _, key := range p.keys {
		out = append(out, p.byKey[key])
	}
	return out
}

func (p *candidatePool) size() int {
	return len(p.keys)
}
