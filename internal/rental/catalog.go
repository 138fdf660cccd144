package rental

import "fmt"

// Genres the catalog recognizes; filter input must be one of these or
// empty for all genres.
var Genres = []string{
	"sports", "action", "racing", "role-playing", "adventure",
	"simulation", "platform", "misc", "shooter", "puzzle",
	"fighting", "strategy",
}

var genreSet = func() map[string]bool {
	m := make(map[string]bool, len(Genres))
	for _, g := range Genres {
		m[g] = true
	}
	return m
}()

func KnownGenre(g string) bool { return genreSet[g] }

// CatalogFilter narrows the catalog listing. Genre is lowercased input,
// empty for all genres; nil prices mean unbounded.
type CatalogFilter struct {
	Genre    string
	MinPrice *float64
	MaxPrice *float64
}

// SQL builds the listing statement: unconditional scan, then WHERE/AND
// clauses for genre equality, minimum price and maximum price in that
// fixed order, then ORDER BY price ascending. The first present
// condition uses WHERE, the rest use AND.
func (f CatalogFilter) SQL() (string, []any) {
	sql := "SELECT * FROM Catalog"
	var args []any
	where := false

	next := func() string {
		if !where {
			where = true
			return " WHERE"
		}
		return " AND"
	}

	if f.Genre != "" {
		args = append(args, f.Genre)
		sql += fmt.Sprintf("%s LOWER(genre) = $%d", next(), len(args))
	}
	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		sql += fmt.Sprintf("%s price >= $%d", next(), len(args))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		sql += fmt.Sprintf("%s price <= $%d", next(), len(args))
	}
	sql += " ORDER BY price"
	return sql, args
}
