// Package vocabulary holds the allow-lists that translate the public area and
// facility-type ids used by the API into IRIs of the facilities ontology.
//
// A Vocabulary is built once at start-up and never mutated afterwards, so it
// is safe to share between request handlers.
package vocabulary

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed vocabulary.yaml
var defaultDocument []byte

// Common errors for vocabulary loading.
var (
	ErrEmptyNamespace = errors.New("vocabulary namespace is empty")
	ErrEmptyMapping   = errors.New("vocabulary mapping has an empty value")
)

// document is the YAML layout of a vocabulary file.
type document struct {
	Namespace string            `yaml:"namespace"`
	Areas     map[string]string `yaml:"areas"`
	Types     map[string]string `yaml:"types"`
}

// Vocabulary maps public ids to absolute IRIs.
type Vocabulary struct {
	namespace string
	areas     map[string]string
	types     map[string]string
}

// Load reads a vocabulary from path. An empty path selects the embedded
// default. A non-empty namespace overrides the one declared in the file.
func Load(path, namespace string) (*Vocabulary, error) {
	if path == "" {
		return Parse(defaultDocument, namespace)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary %s: %w", path, err)
	}

	return Parse(data, namespace)
}

// Parse decodes a YAML vocabulary document.
func Parse(data []byte, namespace string) (*Vocabulary, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary: %w", err)
	}

	if namespace != "" {
		doc.Namespace = namespace
	}
	if doc.Namespace == "" {
		return nil, ErrEmptyNamespace
	}

	areas, err := resolve(doc.Namespace, doc.Areas)
	if err != nil {
		return nil, fmt.Errorf("areas: %w", err)
	}
	types, err := resolve(doc.Namespace, doc.Types)
	if err != nil {
		return nil, fmt.Errorf("types: %w", err)
	}

	return &Vocabulary{namespace: doc.Namespace, areas: areas, types: types}, nil
}

// resolve expands local names against the namespace; absolute IRIs are kept.
func resolve(namespace string, entries map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(entries))
	for id, name := range entries {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptyMapping, id)
		}
		if !strings.Contains(name, "://") {
			name = namespace + name
		}
		out[id] = name
	}

	return out, nil
}

// Namespace returns the ontology namespace, e.g. "http://example.org/dcc/facilities#".
func (v *Vocabulary) Namespace() string {
	return v.namespace
}

// FacilityIRI expands a facility id under the namespace, e.g. "park-001"
// becomes "<namespace>facility/park-001". Ids that already start with "http"
// are treated as absolute IRIs and returned unchanged.
func (v *Vocabulary) FacilityIRI(id string) string {
	if strings.HasPrefix(id, "http") {
		return id
	}

	return v.namespace + "facility/" + id
}

// AreaIRI looks up an area id such as "north-central".
func (v *Vocabulary) AreaIRI(id string) (string, bool) {
	iri, ok := v.areas[id]
	return iri, ok
}

// TypeIRI looks up a facility-type id such as "park".
func (v *Vocabulary) TypeIRI(id string) (string, bool) {
	iri, ok := v.types[id]
	return iri, ok
}

// TypeIRIs resolves ids in order and silently drops the unknown ones.
func (v *Vocabulary) TypeIRIs(ids []string) []string {
	iris := make([]string, 0, len(ids))
	for _, id := range ids {
		if iri, ok := v.types[id]; ok {
			iris = append(iris, iri)
		}
	}

	return iris
}

// AreaIDs returns the known area ids sorted alphabetically.
func (v *Vocabulary) AreaIDs() []string {
	return sortedKeys(v.areas)
}

// TypeIDs returns the known facility-type ids sorted alphabetically.
func (v *Vocabulary) TypeIDs() []string {
	return sortedKeys(v.types)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
