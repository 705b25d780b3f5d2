package query

// GenPostgres renders q against table in one call with snake_case column
// names and $N placeholders. It covers the common endpoint case; use a
// Builder for column qualification, bind shifting or other dialect and
// casing choices.
//
// Example:
//
//	q, _ := Parse("userId=123&userName=bob", NewFields("userId", "userName"))
//	sql, args := GenPostgres(q, "orders", []string{"id", "status"}, nil)
//	// sql == "SELECT id, status FROM orders WHERE user_id = $1 AND user_name = $2"
//	// len(args) == 2
func GenPostgres(q *Query, table string, columns, joins []string) (string, []Arg) {
	return gen(q, table, columns, joins, Postgres)
}

// GenMySQL is GenPostgres with ? placeholders.
func GenMySQL(q *Query, table string, columns, joins []string) (string, []Arg) {
	return gen(q, table, columns, joins, MySQL)
}

func gen(q *Query, table string, columns, joins []string, d Dialect) (string, []Arg) {
	b := NewBuilder(table, columns...).UseDialect(d).TransformFields(SnakeCase)
	for _, j := range joins {
		b.Join(j)
	}
	return b.Build(q)
}
