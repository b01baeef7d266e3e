package bible

import (
	"strconv"
	"strings"

	"github.com/slovoapp/slovo-server/internal/domain"
	"github.com/slovoapp/slovo-server/internal/errors"
)

// Resolver parses free-text citations like "Исход 3:4" or
// "1 Коринфянам 13:4-7" into canonical references.
type Resolver struct {
	catalog *Catalog
}

// NewResolver creates a resolver backed by the given catalog.
func NewResolver(catalog *Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Parse resolves a citation into a Reference.
//
// The last whitespace-separated token is the chapter:verse segment;
// everything before it is the book name. This covers numbered books
// ("1 Коринфянам 13:4-7") and multi-word books ("Иисус Навин 6:1")
// with one rule. A "-" inside the verse segment denotes an inclusive
// range; its absence means a single verse.
//
// Returns errors.ErrMalformed for unparseable citations and
// errors.ErrNotFound for an unresolvable book name. Both are non-fatal
// for callers, which substitute a placeholder and continue.
func (r *Resolver) Parse(citation string) (domain.Reference, error) {
	fields := strings.Fields(citation)
	if len(fields) < 2 {
		return domain.Reference{}, errors.Malformedf("citation %q: want \"<book> <chapter>:<verse>\"", citation)
	}

	bookName := strings.Join(fields[:len(fields)-1], " ")
	chapterVerse := fields[len(fields)-1]

	chapterPart, versePart, ok := strings.Cut(chapterVerse, ":")
	if !ok {
		return domain.Reference{}, errors.Malformedf("citation %q: missing \":\" in %q", citation, chapterVerse)
	}

	chapter, err := parsePositive(chapterPart)
	if err != nil {
		return domain.Reference{}, errors.Malformedf("citation %q: bad chapter %q", citation, chapterPart)
	}

	verseStart, verseEnd, err := parseVerses(versePart)
	if err != nil {
		return domain.Reference{}, errors.Malformedf("citation %q: bad verse %q", citation, versePart)
	}

	book, err := r.catalog.Resolve(bookName)
	if err != nil {
		return domain.Reference{}, err
	}

	return domain.Reference{
		Book:       book,
		Chapter:    chapter,
		VerseStart: verseStart,
		VerseEnd:   verseEnd,
	}, nil
}

// parseVerses parses "V" or "V1-V2" into an inclusive verse range.
func parseVerses(s string) (start, end int, err error) {
	first, second, isRange := strings.Cut(s, "-")

	start, err = parsePositive(first)
	if err != nil {
		return 0, 0, err
	}

	if !isRange {
		return start, start, nil
	}

	end, err = parsePositive(second)
	if err != nil {
		return 0, 0, err
	}
	if end < start {
		return 0, 0, errors.Malformedf("inverted range %q", s)
	}
	return start, end, nil
}

// parsePositive parses a strictly positive integer.
func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errors.Malformedf("non-positive number %q", s)
	}
	return n, nil
}
