package response

import (
	"encoding/json/v2"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/slovoapp/slovo-server/internal/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()

	Success(rec, map[string]string{"status": "healthy"}, testLogger())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	env := decode(t, rec)
	assert.True(t, env.Success)
	assert.Empty(t, env.Error)
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()

	Error(rec, http.StatusServiceUnavailable, "verse database unreachable", testLogger())

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	env := decode(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "verse database unreachable", env.Error)
}

func TestHandleError_CodeMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", domainerrors.NotFound("no active week"), http.StatusNotFound},
		{"empty", domainerrors.Empty("no verses"), http.StatusNotFound},
		{"malformed", domainerrors.Malformed("bad citation"), http.StatusBadRequest},
		{"validation", domainerrors.Validation("bad config"), http.StatusBadRequest},
		{"out of range", domainerrors.OutOfRange("no message"), http.StatusBadRequest},
		{"unavailable", domainerrors.Unavailable("sheet fetch failed"), http.StatusServiceUnavailable},
		{"internal", domainerrors.Internal("boom"), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err, testLogger())
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, decode(t, rec).Success)
		})
	}
}
