// Package model defines the catalog value types shared across packages.
package model

import "fmt"

// DefaultKeyField is the zero-based field index holding the searchable key.
const DefaultKeyField = 1

// Record is one parsed line of the catalog file.
type Record struct {
	Fields []string
	Line   int
}

// Field returns the field at index i, if present.
func (r Record) Field(i int) (string, bool) {
	if i < 0 || i >= len(r.Fields) {
		return "", false
	}
	return r.Fields[i], true
}

// String renders the record as its raw field list.
func (r Record) String() string {
	return fmt.Sprintf("%q", r.Fields)
}

// Validate checks that the record has a field at keyField. The key itself may
// be empty.
func (r Record) Validate(keyField int) error {
	if _, ok := r.Field(keyField); !ok {
		return fmt.Errorf("record has %d fields, key field %d is missing", len(r.Fields), keyField)
	}
	return nil
}
