package query

import (
	"fmt"
	"strings"
)

// Filter is one field/condition/value triple. Filters come from
// filter[] tokens or, with an implicit equality condition, from plain
// key=value pairs.
type Filter struct {
	Field     string
	Condition Condition
	Value     string
}

// ParseFilter parses the compact token form "field-condition-value".
//
// Only the first two '-' act as separators; everything after the second
// belongs to the value, so hyphenated values stay whole:
//
//	f, _ := ParseFilter("id-eq-8bd8a6fb-e2b2-47ab-b3db-4f47c067ba5e", NewFields("id"))
//	// f.Value == "8bd8a6fb-e2b2-47ab-b3db-4f47c067ba5e"
//
// Returns ErrInvalidFilter when the token has fewer than three parts,
// ErrInvalidField when the field is not in allowed, and
// ErrInvalidCondition when the operator token is unknown.
func ParseFilter(token string, allowed Fields) (Filter, error) {
	field, rest, ok := strings.Cut(token, "-")
	if !ok {
		return Filter{}, fmt.Errorf("%q: %w", token, ErrInvalidFilter)
	}
	cond, value, ok := strings.Cut(rest, "-")
	if !ok {
		return Filter{}, fmt.Errorf("%q: %w", token, ErrInvalidFilter)
	}
	if !allowed[field] {
		return Filter{}, fmt.Errorf("%q: %w", field, ErrInvalidField)
	}
	c, err := ParseCondition(cond)
	if err != nil {
		return Filter{}, err
	}
	return Filter{Field: field, Condition: c, Value: value}, nil
}

// FromKeyValue builds the implicit equality filter for a plain
// key=value pair. The key must already have passed the allow-list
// check; Parse does this before calling.
func FromKeyValue(field, value string) Filter {
	return Filter{Field: field, Condition: EQ, Value: value}
}

// String renders the filter for diagnostics, e.g. "price >= 200".
func (f Filter) String() string {
	return f.Field + " " + f.Condition.Symbol() + " " + f.Value
}

// SQL renders the filter as one WHERE condition bound to the 1-based
// placeholder index idx. A non-empty table qualifies the field; the
// transform applies to the field name only, never the value.
func (f Filter) SQL(idx int, table string, t Transform, d Dialect) string {
	var b strings.Builder
	if table != "" {
		b.WriteString(table)
		b.WriteByte('.')
	}
	b.WriteString(transformField(f.Field, t))
	b.WriteByte(' ')
	b.WriteString(f.Condition.Symbol())
	b.WriteByte(' ')
	b.WriteString(d.Placeholder(idx))
	return b.String()
}
