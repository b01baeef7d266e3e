package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/slovoapp/slovo-server/internal/errors"
)

// VerseRange returns the text of all verses in [verseStart, verseEnd] for
// the given book and chapter, ascending by verse number and joined with a
// single space.
//
// Returns errors.ErrEmpty when no verse matches, which is distinct from an
// empty string: callers substitute a "not found" placeholder instead of
// composing blank text. Returns errors.ErrUnavailable when the database
// cannot be read.
func (s *Store) VerseRange(ctx context.Context, book, chapter, verseStart, verseEnd int) (string, error) {
	if verseStart == verseEnd {
		var text string
		err := s.db.QueryRowContext(ctx,
			`SELECT text FROM verses WHERE book = ? AND chapter = ? AND verse = ?`,
			book, chapter, verseStart).Scan(&text)
		if err == sql.ErrNoRows {
			return "", errors.ErrEmpty
		}
		if err != nil {
			return "", errors.Wrap(err, errors.CodeUnavailable, "read verse")
		}
		return text, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT text FROM verses
		 WHERE book = ? AND chapter = ? AND verse BETWEEN ? AND ?
		 ORDER BY verse`,
		book, chapter, verseStart, verseEnd)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeUnavailable, "read verse range")
	}
	defer rows.Close()

	var texts []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return "", errors.Wrap(err, errors.CodeUnavailable, "scan verse")
		}
		texts = append(texts, text)
	}
	if err := rows.Err(); err != nil {
		return "", errors.Wrap(err, errors.CodeUnavailable, "iterate verses")
	}

	if len(texts) == 0 {
		return "", errors.ErrEmpty
	}
	return strings.Join(texts, " "), nil
}

// VerseCount returns the total number of verses in the store.
// Used as a cheap startup sanity check on the external database.
func (s *Store) VerseCount(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM verses`).Scan(&count)
	if err != nil {
		return 0, errors.Wrap(err, errors.CodeUnavailable, "count verses")
	}
	return count, nil
}
