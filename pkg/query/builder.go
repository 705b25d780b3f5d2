package query

import "strings"

// Arg is one bound value, paired with the field it constrains. Build
// returns args in placeholder order, so args[i] binds to placeholder
// i+1 (plus any shift).
type Arg struct {
	Field string
	Value string
}

// Values flattens args for driver APIs that take ...any.
func Values(args []Arg) []any {
	vals := make([]any, len(args))
	for i, a := range args {
		vals[i] = a.Value
	}
	return vals
}

// Builder assembles a SELECT statement from a parsed Query. Configure it
// fluently, then call Build exactly once; Build consumes the builder and
// a second call panics.
type Builder struct {
	base      string
	joins     []string
	tables    map[string]string
	shift     int
	dialect   Dialect
	transform Transform
	built     bool
}

// NewBuilder starts a builder over "SELECT <columns> FROM <table>".
func NewBuilder(table string, columns ...string) *Builder {
	return NewBuilderSQL("SELECT " + strings.Join(columns, ", ") + " FROM " + table)
}

// NewBuilderSQL starts a builder from a raw SELECT fragment, for
// statements the table/columns form cannot express. The fragment is
// emitted verbatim before any generated clause.
func NewBuilderSQL(base string) *Builder {
	return &Builder{base: base, dialect: Postgres}
}

// Join appends a raw SQL fragment verbatim between the base statement
// and the WHERE clause. Fragments keep their call order.
func (b *Builder) Join(fragment string) *Builder {
	b.joins = append(b.joins, fragment)
	return b
}

// MapColumn qualifies field with a table prefix whenever it is rendered,
// to disambiguate column names in joined queries. Unmapped fields render
// unqualified.
func (b *Builder) MapColumn(field, table string) *Builder {
	if b.tables == nil {
		b.tables = make(map[string]string)
	}
	b.tables[field] = table
	return b
}

// MapColumns adds every field→table pair in m, like repeated MapColumn
// calls.
func (b *Builder) MapColumns(m map[string]string) *Builder {
	for field, table := range m {
		b.MapColumn(field, table)
	}
	return b
}

// ShiftBind offsets every bind index by n, for callers that prepend
// their own bound parameters to the statement.
func (b *Builder) ShiftBind(n int) *Builder {
	b.shift = n
	return b
}

// UseDialect selects the placeholder convention. Postgres by default.
func (b *Builder) UseDialect(d Dialect) *Builder {
	b.dialect = d
	return b
}

// TransformFields sets the naming-convention transform applied to every
// rendered field name. Nil leaves names untouched.
func (b *Builder) TransformFields(t Transform) *Builder {
	b.transform = t
	return b
}

// Build renders the statement for q and returns it with the bind args
// aligned to the emitted placeholders. Clauses are appended in a fixed
// order — joins, WHERE, GROUP BY, ORDER BY, LIMIT/OFFSET — and each is
// skipped when the model has nothing for it. OFFSET renders only
// together with LIMIT. Build never fails: q was validated at parse time
// and limit/offset pass through for the driver to reject.
func (b *Builder) Build(q *Query) (string, []Arg) {
	if b.built {
		panic("query: Builder.Build called twice")
	}
	b.built = true

	var sql strings.Builder
	sql.WriteString(b.base)

	for _, j := range b.joins {
		sql.WriteByte(' ')
		sql.WriteString(j)
	}

	args := make([]Arg, 0, len(q.Filters))
	for i, f := range q.Filters {
		if i == 0 {
			sql.WriteString(" WHERE ")
		} else {
			sql.WriteString(" AND ")
		}
		sql.WriteString(f.SQL(b.shift+i+1, b.tables[f.Field], b.transform, b.dialect))
		args = append(args, Arg{Field: f.Field, Value: f.Value})
	}

	if q.Group != "" {
		sql.WriteString(" GROUP BY ")
		sql.WriteString(b.qualify(q.Group))
	}

	if q.Sort != nil {
		sql.WriteString(" ORDER BY ")
		sql.WriteString(q.Sort.SQL(b.tables[q.Sort.Field], b.transform))
	}

	if q.Limit != "" {
		sql.WriteString(" LIMIT ")
		sql.WriteString(q.Limit)
		if q.Offset != "" {
			sql.WriteString(" OFFSET ")
			sql.WriteString(q.Offset)
		}
	}

	return sql.String(), args
}

func (b *Builder) qualify(field string) string {
	name := transformField(field, b.transform)
	if table := b.tables[field]; table != "" {
		return table + "." + name
	}
	return name
}
