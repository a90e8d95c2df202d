// Package query renders the SPARQL queries sent to the triple store.
//
// Queries live in an embedded bank of tagged templates. Filter values are
// never interpolated raw: IRIs are validated and wrapped in angle brackets,
// free text is emitted as an escaped string literal.
package query

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/knakk/rdf"
	"github.com/knakk/sparql"
)

//go:embed queries.sparql
var bankSource []byte

// Query names, matching the tags of the embedded bank.
const (
	NameHealth        = "health"
	NameAreas         = "areas"
	NameFacilityTypes = "facility-types"
	NameFacilities    = "facilities"
	NameStats         = "stats"
	NameSearch        = "search"
	NameFacility      = "facility"
	NameMissing       = "missing"
	NameDistribution  = "distribution"
)

// Common errors for query construction.
var (
	ErrInvalidIRI   = errors.New("invalid IRI")
	ErrInvalidLimit = errors.New("limit must be positive")
)

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// params is the data passed to every template.
type params struct {
	Namespace string
	Area      string
	Types     string
	Type      string
	Facility  string
	Term      string
	Limit     int
}

// Builder renders queries for one ontology namespace.
type Builder struct {
	bank      sparql.Bank
	namespace string
}

// NewBuilder loads the embedded query bank.
func NewBuilder(namespace string) (*Builder, error) {
	if _, err := rdf.NewIRI(namespace); err != nil {
		return nil, fmt.Errorf("%w: namespace %q: %w", ErrInvalidIRI, namespace, err)
	}

	return &Builder{
		bank:      sparql.LoadBank(bytes.NewReader(bankSource)),
		namespace: namespace,
	}, nil
}

// Health renders the connectivity probe.
func (b *Builder) Health() (string, error) {
	return b.prepare(NameHealth, b.params())
}

// Areas renders the committee-area listing with facility counts.
func (b *Builder) Areas() (string, error) {
	return b.prepare(NameAreas, b.params())
}

// FacilityTypes renders the facility-type listing with facility counts.
func (b *Builder) FacilityTypes() (string, error) {
	return b.prepare(NameFacilityTypes, b.params())
}

// Facilities renders the facility listing. An empty areaIRI or an empty
// typeIRIs slice leaves that dimension unfiltered.
func (b *Builder) Facilities(areaIRI string, typeIRIs []string) (string, error) {
	p := b.params()

	var err error
	if areaIRI != "" {
		if p.Area, err = iriRef(areaIRI); err != nil {
			return "", err
		}
	}

	refs := make([]string, 0, len(typeIRIs))
	for _, typeIRI := range typeIRIs {
		ref, errRef := iriRef(typeIRI)
		if errRef != nil {
			return "", errRef
		}
		refs = append(refs, ref)
	}
	p.Types = strings.Join(refs, " ")

	return b.prepare(NameFacilities, p)
}

// Stats renders the per-type counts, optionally restricted to one area.
func (b *Builder) Stats(areaIRI string) (string, error) {
	p := b.params()
	if areaIRI != "" {
		ref, err := iriRef(areaIRI)
		if err != nil {
			return "", err
		}
		p.Area = ref
	}

	return b.prepare(NameStats, p)
}

// Search renders a case-insensitive substring match on facility names.
// The term is expected lowercased; it is emitted as an escaped literal.
func (b *Builder) Search(term string, limit int) (string, error) {
	if limit <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	p := b.params()
	p.Term = Literal(term)
	p.Limit = limit

	return b.prepare(NameSearch, p)
}

// Facility renders the detail lookup of a single facility IRI.
func (b *Builder) Facility(facilityIRI string) (string, error) {
	ref, err := iriRef(facilityIRI)
	if err != nil {
		return "", err
	}

	p := b.params()
	p.Facility = ref

	return b.prepare(NameFacility, p)
}

// Missing renders the areas having no facility of typeIRI.
func (b *Builder) Missing(typeIRI string) (string, error) {
	return b.typeQuery(NameMissing, typeIRI)
}

// Distribution renders per-area counts of typeIRI, lowest first.
func (b *Builder) Distribution(typeIRI string) (string, error) {
	return b.typeQuery(NameDistribution, typeIRI)
}

func (b *Builder) typeQuery(name, typeIRI string) (string, error) {
	ref, err := iriRef(typeIRI)
	if err != nil {
		return "", err
	}

	p := b.params()
	p.Type = ref

	return b.prepare(name, p)
}

func (b *Builder) params() params {
	return params{Namespace: b.namespace}
}

func (b *Builder) prepare(name string, p params) (string, error) {
	q, err := b.bank.Prepare(name, p)
	if err != nil {
		return "", fmt.Errorf("failed to prepare %s query: %w", name, err)
	}

	return q, nil
}

// Literal quotes s as a SPARQL string literal.
func Literal(s string) string {
	return `"` + literalEscaper.Replace(s) + `"`
}

// iriRef validates an IRI and wraps it for use in a query: <iri>.
func iriRef(s string) (string, error) {
	iri, err := rdf.NewIRI(s)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidIRI, s, err)
	}

	return "<" + iri.String() + ">", nil
}
