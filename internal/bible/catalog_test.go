package bible

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/slovoapp/slovo-server/internal/errors"
)

func TestCatalog_Resolve_Exact(t *testing.T) {
	catalog := NewCatalog()

	tests := []struct {
		name   string
		wantID int
	}{
		{"Бытие", 1},
		{"Исход", 2},
		{"Псалтирь", 19},
		{"Иисус Навин", 6},
		{"1 Царств", 9},
		{"1 Коринфянам", 53},
		{"2 Коринфянам", 54},
		{"Откровение", 66},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := catalog.Resolve(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestCatalog_Resolve_CaseAndWhitespace(t *testing.T) {
	catalog := NewCatalog()

	id, err := catalog.Resolve("  иСхОд  ")
	require.NoError(t, err)
	assert.Equal(t, 2, id)
}

func TestCatalog_Resolve_Variants(t *testing.T) {
	catalog := NewCatalog()

	tests := []struct {
		name   string
		wantID int
	}{
		{"Псалом", 19},
		{"Псалмы", 19},
		{"от Матфея", 40},
		{"От Иоанна", 43},
		{"Апокалипсис", 66},
		{"Мф", 40},
		{"Пс", 19},
		{"1 Кор", 53},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := catalog.Resolve(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestCatalog_Resolve_SubstringFallback(t *testing.T) {
	catalog := NewCatalog()

	tests := []struct {
		name   string
		wantID int
	}{
		// Input contains a known variant.
		{"Евангелие от Марка", 41},
		{"Деяния Апостолов", 44},
		// Known variant contains the input.
		{"Паралипоменон", 13},
		{"Фессалоникийцам", 59},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := catalog.Resolve(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestCatalog_Resolve_FallbackOrderIsDeclaredOrder(t *testing.T) {
	catalog := NewCatalog()

	// "Коринфянам" is a substring of both numbered epistles; the fallback
	// must pick the first declared entry every time.
	for range 10 {
		id, err := catalog.Resolve("Коринфянам")
		require.NoError(t, err)
		assert.Equal(t, 53, id)
	}
}

func TestCatalog_Resolve_Idempotent(t *testing.T) {
	catalog := NewCatalog()

	first, err := catalog.Resolve("Псалом")
	require.NoError(t, err)
	second, err := catalog.Resolve("Псалом")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCatalog_Resolve_NotFound(t *testing.T) {
	catalog := NewCatalog()

	_, err := catalog.Resolve("Неизвестная")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCatalog_Resolve_Empty(t *testing.T) {
	catalog := NewCatalog()

	_, err := catalog.Resolve("   ")
	assert.ErrorIs(t, err, domainerrors.ErrMalformed)
}

func TestCatalog_CanonCoverage(t *testing.T) {
	seen := make(map[int]bool)
	for _, e := range catalogEntries {
		require.GreaterOrEqual(t, e.id, 1)
		require.LessOrEqual(t, e.id, 66)
		seen[e.id] = true
	}
	assert.Len(t, seen, 66, "every canon book needs at least one variant")
}
