package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/slovoapp/slovo-server/internal/errors"

	_ "modernc.org/sqlite"
)

// setupTestStore creates a verse database seeded with a few fixture rows.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "slovo-store-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "verses.db")

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)

	_, err = db.Exec(`CREATE TABLE verses (
		book INTEGER NOT NULL,
		chapter INTEGER NOT NULL,
		verse INTEGER NOT NULL,
		text TEXT NOT NULL
	)`)
	require.NoError(t, err)

	fixtures := []struct {
		book, chapter, verse int
		text                 string
	}{
		{53, 13, 4, "Любовь долготерпит, милосердствует."},
		{53, 13, 5, "Не бесчинствует, не ищет своего."},
		{53, 13, 6, "Не радуется неправде, а сорадуется истине."},
		{19, 118, 30, "Я избрал путь истины."},
	}
	for _, f := range fixtures {
		_, err = db.Exec(`INSERT INTO verses (book, chapter, verse, text) VALUES (?, ?, ?, ?)`,
			f.book, f.chapter, f.verse, f.text)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	s, err := Open(dbPath, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestStore_VerseRange_Single(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	text, err := s.VerseRange(ctx, 19, 118, 30, 30)
	require.NoError(t, err)
	assert.Equal(t, "Я избрал путь истины.", text)
}

func TestStore_VerseRange_JoinsAscending(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	text, err := s.VerseRange(ctx, 53, 13, 4, 6)
	require.NoError(t, err)
	assert.Equal(t,
		"Любовь долготерпит, милосердствует. Не бесчинствует, не ищет своего. Не радуется неправде, а сорадуется истине.",
		text)
}

func TestStore_VerseRange_SingleEqualsFirstJoinedSegment(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	single, err := s.VerseRange(ctx, 53, 13, 4, 4)
	require.NoError(t, err)

	joined, err := s.VerseRange(ctx, 53, 13, 4, 6)
	require.NoError(t, err)

	assert.True(t, len(joined) > len(single))
	assert.Equal(t, single, joined[:len(single)])
}

func TestStore_VerseRange_PartialRange(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	// Verse 7 does not exist; the two present verses are still joined.
	text, err := s.VerseRange(ctx, 53, 13, 5, 7)
	require.NoError(t, err)
	assert.Equal(t, "Не бесчинствует, не ищет своего. Не радуется неправде, а сорадуется истине.", text)
}

func TestStore_VerseRange_Empty(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, err := s.VerseRange(ctx, 1, 1, 1, 1)
	assert.ErrorIs(t, err, domainerrors.ErrEmpty)

	_, err = s.VerseRange(ctx, 1, 1, 1, 3)
	assert.ErrorIs(t, err, domainerrors.ErrEmpty)
}

func TestStore_VerseCount(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	count, err := s.VerseCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
