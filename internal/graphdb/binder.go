package graphdb

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/knakk/sparql"
)

// ErrUnboundVariable is returned when a row lacks a value the caller requires.
var ErrUnboundVariable = errors.New("variable is not bound")

// Row maps SPARQL variable names to their lexical values. Unbound optional
// variables are absent.
type Row map[string]string

// Bind flattens the result bindings into rows, keeping the order returned by
// the store and discarding type, language and datatype metadata.
func Bind(res *sparql.Results) []Row {
	if res == nil {
		return []Row{}
	}

	rows := make([]Row, 0, len(res.Results.Bindings))
	for _, binding := range res.Results.Bindings {
		row := make(Row, len(binding))
		for name, term := range binding {
			row[name] = term.Value
		}
		rows = append(rows, row)
	}

	return rows
}

// String returns the value of key, or "" when it is unbound.
func (r Row) String(key string) string {
	return r[key]
}

// Require returns the value of key and fails when it is unbound.
func (r Row) Require(key string) (string, error) {
	value, ok := r[key]
	if !ok {
		return "", fmt.Errorf("%w: ?%s", ErrUnboundVariable, key)
	}

	return value, nil
}

// Float parses a required numeric value such as a latitude.
func (r Row) Float(key string) (float64, error) {
	value, err := r.Require(key)
	if err != nil {
		return 0, err
	}

	number, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number in ?%s: %w", key, err)
	}

	return number, nil
}

// Int parses an aggregate count. An unbound count is treated as zero.
func (r Row) Int(key string) (int, error) {
	value, ok := r[key]
	if !ok {
		return 0, nil
	}

	number, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer in ?%s: %w", key, err)
	}

	return number, nil
}
