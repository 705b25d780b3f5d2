package query

import (
	libinjection "github.com/corazawaf/libinjection-go"
)

// InjectionResult reports a filter value that matched a SQL injection
// pattern.
type InjectionResult struct {
	Field       string // field the value filters on
	Value       string // the suspicious value
	Fingerprint string // libinjection fingerprint of the detected pattern
}

// CheckInjection scans every filter value in the model with libinjection
// and returns one result per suspicious value, in filter order. Values
// are bound, never interpolated, so a hit is advisory: callers typically
// reject the request and log the fingerprint.
//
// Example:
//
//	q, _ := Parse("search='; DROP TABLE users--", NewFields("search"))
//	hits := q.CheckInjection()
//	// len(hits) == 1, hits[0].Field == "search"
func (q *Query) CheckInjection() []InjectionResult {
	var results []InjectionResult
	for _, f := range q.Filters {
		isSQLi, fingerprint := libinjection.IsSQLi(f.Value)
		if isSQLi {
			results = append(results, InjectionResult{
				Field:       f.Field,
				Value:       f.Value,
				Fingerprint: string(fingerprint),
			})
		}
	}
	return results
}
