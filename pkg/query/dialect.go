package query

import "strconv"

// Dialect selects the positional-placeholder convention of the target
// database.
type Dialect int

const (
	// Postgres numbers placeholders $1, $2, ...
	Postgres Dialect = iota
	// MySQL uses bare ? placeholders.
	MySQL
	// SQLServer uses named positional parameters @p1, @p2, ...
	SQLServer
)

// Placeholder returns the bind marker for the 1-based parameter index n.
func (d Dialect) Placeholder(n int) string {
	switch d {
	case MySQL:
		return "?"
	case SQLServer:
		return "@p" + strconv.Itoa(n)
	}
	return "$" + strconv.Itoa(n)
}
