package query

import "github.com/iancoleman/strcase"

// Transform rewrites a field name into the database naming convention
// before it is rendered into SQL. It applies to field names only, never
// to values.
type Transform func(string) string

// SnakeCase converts camelCase field names to snake_case column names,
// e.g. "orderId" -> "order_id".
var SnakeCase Transform = strcase.ToSnake

func transformField(field string, t Transform) string {
	if t == nil {
		return field
	}
	return t(field)
}
