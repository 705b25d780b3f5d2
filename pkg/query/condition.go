package query

import "fmt"

// Condition is the comparison operator of a filter.
type Condition int

const (
	EQ Condition = iota
	NE
	GT
	GE
	LT
	LE
)

var conditionSymbols = [...]string{
	EQ: "=",
	NE: "!=",
	GT: ">",
	GE: ">=",
	LT: "<",
	LE: "<=",
}

// ParseCondition maps the two-letter operator token of a filter
// ("eq", "ne", "gt", "ge", "lt", "le") to its Condition.
func ParseCondition(token string) (Condition, error) {
	switch token {
	case "eq":
		return EQ, nil
	case "ne":
		return NE, nil
	case "gt":
		return GT, nil
	case "ge":
		return GE, nil
	case "lt":
		return LT, nil
	case "le":
		return LE, nil
	}
	return 0, fmt.Errorf("%q: %w", token, ErrInvalidCondition)
}

// Symbol returns the SQL comparison operator, e.g. ">=" for GE.
func (c Condition) Symbol() string {
	return conditionSymbols[c]
}
