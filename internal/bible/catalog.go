// Package bible resolves free-text scripture citations against the fixed
// 66-book canon of the Russian Synodal translation.
package bible

import (
	"strings"

	"github.com/slovoapp/slovo-server/internal/errors"
)

// entry maps one lowercase name variant to a canonical book id.
type entry struct {
	variant string
	id      int
}

// catalogEntries is the declared variant table. Order matters: the
// substring fallback scans this slice top to bottom and the first hit
// wins, so canonical names come first, then alternate spellings and
// declensions, then short abbreviations.
var catalogEntries = []entry{
	// Old Testament.
	{"бытие", 1}, {"исход", 2}, {"левит", 3}, {"числа", 4}, {"второзаконие", 5},
	{"иисус навин", 6}, {"судьи", 7}, {"руфь", 8}, {"1 царств", 9}, {"2 царств", 10},
	{"3 царств", 11}, {"4 царств", 12}, {"1 паралипоменон", 13}, {"2 паралипоменон", 14},
	{"ездра", 15}, {"неемия", 16}, {"есфирь", 17}, {"иов", 18}, {"псалтирь", 19},
	{"притчи", 20}, {"екклесиаст", 21}, {"песни песней", 22}, {"исаия", 23},
	{"иеремия", 24}, {"плач иеремии", 25}, {"иезекииль", 26}, {"даниил", 27},
	{"осия", 28}, {"иоиль", 29}, {"амос", 30}, {"авдий", 31}, {"иона", 32},
	{"михей", 33}, {"наум", 34}, {"аввакум", 35}, {"софония", 36}, {"аггей", 37},
	{"захария", 38}, {"малахия", 39},
	// New Testament.
	{"матфей", 40}, {"марк", 41}, {"лука", 42}, {"иоанн", 43}, {"деяния", 44},
	{"иакова", 45}, {"1 петра", 46}, {"2 петра", 47}, {"1 иоанна", 48}, {"2 иоанна", 49},
	{"3 иоанна", 50}, {"иуда", 51}, {"римлянам", 52}, {"1 коринфянам", 53},
	{"2 коринфянам", 54}, {"галатам", 55}, {"ефесянам", 56}, {"филиппийцам", 57},
	{"колоссянам", 58}, {"1 фессалоникийцам", 59}, {"2 фессалоникийцам", 60},
	{"1 тимофею", 61}, {"2 тимофею", 62}, {"титу", 63}, {"филимону", 64},
	{"евреям", 65}, {"откровение", 66},
	// Gospel "от X" forms.
	{"от матфея", 40}, {"от марка", 41}, {"от луки", 42}, {"от иоанна", 43},
	// Declensions and alternate names.
	{"псалом", 19}, {"псалмы", 19}, {"песнь песней", 22},
	{"екклезиаст", 21}, {"апокалипсис", 66},
	// Abbreviations.
	{"быт", 1}, {"исх", 2}, {"лев", 3}, {"чис", 4}, {"втор", 5},
	{"нав", 6}, {"суд", 7}, {"пс", 19}, {"притч", 20}, {"еккл", 21},
	{"ис", 23}, {"иер", 24}, {"иез", 26}, {"дан", 27},
	{"мф", 40}, {"мк", 41}, {"лк", 42}, {"ин", 43}, {"деян", 44}, {"иак", 45},
	{"рим", 52}, {"1 кор", 53}, {"2 кор", 54}, {"гал", 55}, {"еф", 56},
	{"флп", 57}, {"кол", 58}, {"1 фес", 59}, {"2 фес", 60},
	{"1 тим", 61}, {"2 тим", 62}, {"тит", 63}, {"флм", 64}, {"евр", 65}, {"откр", 66},
}

// Catalog maps book name variants to canonical book ids (1-66).
// Immutable after construction and safe for concurrent reads.
type Catalog struct {
	exact   map[string]int
	entries []entry
}

// NewCatalog builds the catalog from the declared variant table.
func NewCatalog() *Catalog {
	exact := make(map[string]int, len(catalogEntries))
	for _, e := range catalogEntries {
		// First declaration wins for duplicate variants.
		if _, ok := exact[e.variant]; !ok {
			exact[e.variant] = e.id
		}
	}
	return &Catalog{
		exact:   exact,
		entries: catalogEntries,
	}
}

// Resolve returns the canonical book id for a name variant.
// Matching is case-insensitive with surrounding whitespace ignored.
// After an exact lookup fails, the variant table is scanned in declared
// order and the first entry where either string contains the other wins.
// Returns errors.ErrNotFound if nothing matches.
func (c *Catalog) Resolve(name string) (int, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return 0, errors.Malformed("empty book name")
	}

	if id, ok := c.exact[normalized]; ok {
		return id, nil
	}

	// Fallback tier: bidirectional substring containment, first match in
	// declared order wins.
	for _, e := range c.entries {
		if strings.Contains(normalized, e.variant) || strings.Contains(e.variant, normalized) {
			return e.id, nil
		}
	}

	return 0, errors.NotFoundf("book %q not in catalog", name)
}
