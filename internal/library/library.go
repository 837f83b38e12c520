package library

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ConceptDefinition is one entry of a domain vocabulary.
type ConceptDefinition struct {
	Name            string   `json:"name"`
	Aliases         []string `json:"aliases,omitempty"`
	Category        string   `json:"category,omitempty"`
	Subcategory     string   `json:"subcategory,omitempty"`
	Importance      string   `json:"importance,omitempty"`
	Description     string   `json:"description,omitempty"`
	RelatedConcepts []string `json:"related_concepts,omitempty"`
}

// Library is an ordered domain vocabulary. When Disambiguate is set, mentions
// of terms listed in TermPatterns must co-occur with one of the patterns in
// their context window; terms without patterns fall back to a generic check.
type Library struct {
	Domain       string              `json:"domain"`
	Disambiguate bool                `json:"disambiguate,omitempty"`
	Concepts     []ConceptDefinition `json:"concepts"`
	TermPatterns map[string][]string `json:"term_patterns,omitempty"`
}

// Valid reports whether the library can guide extraction. An invalid library
// makes the pipeline fall back to vocabulary-free discovery.
func (l *Library) Valid() bool {
	if l == nil || len(l.Concepts) == 0 {
		return false
	}
	for _, c := range l.Concepts {
		if strings.TrimSpace(c.Name) != "" {
			return true
		}
	}
	return false
}

// Definition looks up a concept definition by normalized name.
func (l *Library) Definition(name string) (ConceptDefinition, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, c := range l.Concepts {
		if strings.ToLower(strings.TrimSpace(c.Name)) == key {
			return c, true
		}
	}
	return ConceptDefinition{}, false
}

// LoadFromJSON parses a custom library uploaded by a caller.
func LoadFromJSON(data []byte) (*Library, error) {
	var lib Library
	if err := json.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("failed to unmarshal library: %w", err)
	}
	if !lib.Valid() {
		return nil, fmt.Errorf("library has no usable concepts")
	}
	return &lib, nil
}

var builtins = map[string]*Library{
	"computing": computingLibrary,
	"chemistry": chemistryLibrary,
}

// Builtin returns a built-in domain library by name.
func Builtin(domain string) (*Library, bool) {
	lib, ok := builtins[strings.ToLower(strings.TrimSpace(domain))]
	return lib, ok
}

// Domains lists the built-in domain names in stable order.
func Domains() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
