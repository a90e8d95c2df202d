package vocabulary

import (
	"regexp"
	"strings"
	"unicode"
)

// countSuffix matches a trailing "(12)" left behind by aggregated labels.
var countSuffix = regexp.MustCompile(`\s*\(\d+\)\s*$`)

// ToKebabCase converts PascalCase or camelCase to kebab-case:
// "NorthCentral" becomes "north-central".
func ToKebabCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}

	return strings.TrimLeft(b.String(), "-")
}

// LocalName returns the fragment after the last '#' of an IRI, or the IRI
// itself when it has no fragment.
func LocalName(iri string) string {
	if idx := strings.LastIndexByte(iri, '#'); idx >= 0 {
		return iri[idx+1:]
	}

	return iri
}

// IDFromIRI derives the public id of an ontology resource.
func IDFromIRI(iri string) string {
	return ToKebabCase(LocalName(iri))
}

// CleanLabel strips a trailing parenthesized count: "Library (12)" becomes "Library".
func CleanLabel(label string) string {
	return countSuffix.ReplaceAllString(label, "")
}
