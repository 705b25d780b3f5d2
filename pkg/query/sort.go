package query

import (
	"fmt"
	"strings"
)

// Direction orders a sort ascending or descending.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Sort is the single ORDER BY key of a query. A query holds at most
// one; a later sort= token replaces an earlier one.
type Sort struct {
	Field     string
	Direction Direction
}

// ParseSort parses the token form "field-direction" where direction is
// "asc" or "desc". Returns ErrInvalidSort for a token without '-',
// ErrInvalidField for a field outside allowed, and ErrInvalidSortBy for
// an unknown direction.
func ParseSort(token string, allowed Fields) (Sort, error) {
	field, dir, ok := strings.Cut(token, "-")
	if !ok {
		return Sort{}, fmt.Errorf("%q: %w", token, ErrInvalidSort)
	}
	if !allowed[field] {
		return Sort{}, fmt.Errorf("%q: %w", field, ErrInvalidField)
	}
	switch dir {
	case "asc":
		return Sort{Field: field, Direction: Ascending}, nil
	case "desc":
		return Sort{Field: field, Direction: Descending}, nil
	}
	return Sort{}, fmt.Errorf("%q: %w", dir, ErrInvalidSortBy)
}

// SQL renders the ORDER BY expression, e.g. "orders.price DESC". The
// same qualification and transform rules as Filter.SQL apply.
func (s Sort) SQL(table string, t Transform) string {
	var b strings.Builder
	if table != "" {
		b.WriteString(table)
		b.WriteByte('.')
	}
	b.WriteString(transformField(s.Field, t))
	if s.Direction == Descending {
		b.WriteString(" DESC")
	} else {
		b.WriteString(" ASC")
	}
	return b.String()
}
