package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorIs_MatchesByCode(t *testing.T) {
	err := NotFoundf("unknown book %q", "Неизвестная")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrEmpty)
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(cause, CodeUnavailable, "fetch sheet")

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "fetch sheet: connection refused", err.Error())
}

func TestWithCause(t *testing.T) {
	cause := stderrors.New("no such table")
	err := ErrEmpty.WithCause(cause)

	assert.ErrorIs(t, err, ErrEmpty)
	assert.ErrorIs(t, err, cause)

	// The sentinel itself stays unchanged.
	require.NoError(t, ErrEmpty.Unwrap())
}

func TestAs_ExtractsCode(t *testing.T) {
	err := Malformed("citation has no chapter:verse part")

	var domainErr *Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeMalformed, domainErr.Code)
}
