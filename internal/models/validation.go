package models

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationErrors maps field names to human-readable messages. Every failed
// constraint is collected so the form can highlight all offending fields in
// one round trip.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(v))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, v[field]))
	}
	return strings.Join(parts, "; ")
}

// Add records a failure for a field. The first message per field wins.
func (v ValidationErrors) Add(field, message string) {
	if _, exists := v[field]; !exists {
		v[field] = message
	}
}

// Any reports whether at least one constraint failed.
func (v ValidationErrors) Any() bool {
	return len(v) > 0
}
