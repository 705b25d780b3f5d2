package query

// Fields is the allow-list of field names a query may reference. It is
// supplied by the caller per endpoint; every field that appears in a
// parsed query (plain key, filter field, group field, sort field) must
// be present in it.
type Fields map[string]bool

// NewFields builds an allow-list from field names.
func NewFields(names ...string) Fields {
	f := make(Fields, len(names))
	for _, n := range names {
		f[n] = true
	}
	return f
}
