package cambio

import (
	"slices"

	"github.com/charmbracelet/log"
)

// Options parameterize how raw records become entities.
type Options struct {
	// Dedup selects the key duplicates are collapsed on.
	Dedup DedupKey
	// Restricted drops entities whose currency is not in the supported allow-list.
	Restricted bool
}

// Normalize converts raw records into deduplicated entities sorted by name.
//
// Records without a region code or without any currency are dropped. The first listed
// currency is canonical. Duplicates (per opts.Dedup) are dropped silently, the first one
// in source order wins.
func Normalize(records []Record, opts Options) []Entity {
	seen := make(map[string]bool)
	entities := make([]Entity, 0, len(records))
	for _, r := range records {
		e, ok := normalize(r, opts)
		if !ok {
			continue
		}
		key := opts.Dedup.key(e)
		if seen[key] {
			continue
		}
		seen[key] = true
		entities = append(entities, e)
	}
	sortByName(entities)
	return entities
}

// normalize maps a single record, false if the record must be dropped.
func normalize(r Record, opts Options) (Entity, bool) {
	if r.Code == "" || len(r.Currencies) == 0 {
		log.Debug("skipping record without currency", "code", r.Code, "name", r.Common)
		return Entity{}, false
	}
	cur := r.Currencies[0]
	if cur.Code == "" {
		log.Debug("skipping record with an empty currency code", "code", r.Code)
		return Entity{}, false
	}
	if opts.Restricted && !Supported(cur.Code) {
		return Entity{}, false
	}
	return Entity{
		Name:     displayName(r),
		Code:     r.Code,
		Currency: cur,
	}, true
}

// sortByName sorts entities by name, in place, with the pt-BR collation.
func sortByName(entities []Entity) {
	c := newCollator()
	slices.SortStableFunc(entities, func(a, b Entity) int {
		return c.CompareString(a.Name, b.Name)
	})
}
