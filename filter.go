package cambio

import (
	"slices"
	"strings"
)

// Filter returns the entities of all matching query, best matches first.
//
// A blank query returns all entities in their default order. Otherwise the query is
// folded (case and diacritics insensitive) and an entity matches when its name, its region
// code or its currency code contains it. Matches are ranked by:
//
//  1. the United States first when the query is "usd",
//  2. currency code equal to the query,
//  3. currency code containing the query,
//  4. name, in pt-BR collation order.
//
// all is never modified.
func Filter(all []Entity, query string) []Entity {
	q := fold(query)
	if q == "" {
		return slices.Clone(all)
	}

	visible := make([]Entity, 0, len(all))
	for _, e := range all {
		if matches(e, q) {
			visible = append(visible, e)
		}
	}

	c := newCollator()
	slices.SortStableFunc(visible, func(a, b Entity) int {
		if q == pinnedQuery {
			if r := compareBool(a.Code == pinnedRegion, b.Code == pinnedRegion); r != 0 {
				return r
			}
		}
		ac, bc := strings.ToLower(a.Currency.Code), strings.ToLower(b.Currency.Code)
		if r := compareBool(ac == q, bc == q); r != 0 {
			return r
		}
		if r := compareBool(strings.Contains(ac, q), strings.Contains(bc, q)); r != 0 {
			return r
		}
		return c.CompareString(a.Name, b.Name)
	})
	return visible
}

// matches reports whether e matches the folded query q.
func matches(e Entity, q string) bool {
	return strings.Contains(fold(e.Name), q) ||
		strings.Contains(strings.ToLower(e.Code), q) ||
		strings.Contains(strings.ToLower(e.Currency.Code), q)
}

// compareBool orders true before false.
func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return -1
	default:
		return 1
	}
}
