// Package query turns HTTP-style URL query strings into validated query
// models and renders them as parameterized SQL.
//
// The raw string (the part after '?') is parsed against a caller-supplied
// field allow-list into a Query: plain key=value pairs become implicit
// equality filters, filter[] tokens become comparison filters, and the
// reserved sort, group, limit and offset keys feed their dedicated
// fields. A Builder then renders the model into a SELECT statement with
// correctly numbered bind placeholders and the matching ordered argument
// list, ready for the database driver.
package query

import (
	"errors"
	"fmt"
	"strings"
)

// Query is the parsed, validated form of a URL query string. Every field
// name it references has passed the allow-list check; construct it only
// through Parse.
type Query struct {
	// Params records which plain (non-reserved) keys appeared, for
	// CheckRequired. The values themselves live in Filters as implicit
	// equality filters.
	Params map[string]bool

	// Filters holds filter[] entries and implicit equality filters in
	// left-to-right input order. Bind placeholders follow this order.
	Filters []Filter

	// Group is the GROUP BY field, empty when absent.
	Group string

	// Sort is the single ORDER BY key, nil when absent.
	Sort *Sort

	// Limit and Offset are kept as raw strings, empty when absent. The
	// driver rejects non-numeric values when the statement is executed.
	Limit  string
	Offset string
}

// Parse splits raw on '&' and dispatches each key=value token. Tokens
// without '=' are dropped. The reserved keys filter[], sort, group,
// limit and offset feed the dedicated Query fields; any other key is
// allow-list-checked, recorded in Params and appended to Filters as an
// implicit equality filter. A single invalid token aborts the parse.
//
// Repeated keys keep the original semantics: a later sort= replaces the
// earlier one, while repeated plain keys each append another equality
// filter (the conditions are ANDed, so equal conditions on one field are
// usually unsatisfiable) and collapse to one entry in Params.
func Parse(raw string, allowed Fields) (*Query, error) {
	q := &Query{Params: make(map[string]bool)}

	for _, token := range strings.Split(raw, "&") {
		k, v, ok := strings.Cut(token, "=")
		if !ok {
			continue
		}

		switch k {
		case "filter[]":
			f, err := ParseFilter(v, allowed)
			if err != nil {
				return nil, err
			}
			q.Filters = append(q.Filters, f)
		case "sort":
			s, err := ParseSort(v, allowed)
			if err != nil {
				return nil, err
			}
			q.Sort = &s
		case "group":
			if !allowed[v] {
				return nil, fmt.Errorf("%q: %w", v, ErrInvalidField)
			}
			q.Group = v
		case "limit":
			q.Limit = v
		case "offset":
			q.Offset = v
		default:
			if !allowed[k] {
				return nil, fmt.Errorf("%q: %w", k, ErrInvalidField)
			}
			q.Params[k] = true
			q.Filters = append(q.Filters, FromKeyValue(k, v))
		}
	}

	return q, nil
}

// CheckRequired reports the first required plain parameter missing from
// the query.
func (q *Query) CheckRequired(required ...string) error {
	for _, r := range required {
		if !q.Params[r] {
			return fmt.Errorf("%s is required", r)
		}
	}
	return nil
}

// CheckLimit returns the limit value, or an error when the query did not
// supply one.
func (q *Query) CheckLimit() (string, error) {
	if q.Limit == "" {
		return "", errors.New("limit is required")
	}
	return q.Limit, nil
}

// CheckOffset returns the offset value, or an error when the query did
// not supply one.
func (q *Query) CheckOffset() (string, error) {
	if q.Offset == "" {
		return "", errors.New("offset is required")
	}
	return q.Offset, nil
}

// CheckLimitAndOffset returns both pagination values, or an error when
// either is missing.
func (q *Query) CheckLimitAndOffset() (string, string, error) {
	limit, err := q.CheckLimit()
	if err != nil {
		return "", "", err
	}
	offset, err := q.CheckOffset()
	if err != nil {
		return "", "", err
	}
	return limit, offset, nil
}
