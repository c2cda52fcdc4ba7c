package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &memWords{})

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/word/today"},
		{http.MethodPut, "/word/coffee"},
		{http.MethodDelete, "/word/history"},
		{http.MethodPatch, "/preview/words"},
		{http.MethodPost, "/page/today"},
		{http.MethodPost, "/health"},
	}

	for _, tt := range tests {
		rec := srv.do(t, tt.method, tt.path)
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code, "%s %s", tt.method, tt.path)
		assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))

		resp := decode[ErrorResponse](t, rec)
		assert.Equal(t, "method not allowed", resp.Error)
		assert.Equal(t, CodeMethodNotAllowed, resp.Code)
	}
}

func TestRouter_UnknownPath(t *testing.T) {
	t.Parallel()

	rec := newTestServer(t, &memWords{}).get(t, "/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, CodeNotFound, decode[ErrorResponse](t, rec).Code)
}

func TestRouter_Probes(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &memWords{})

	for _, path := range []string{"/live", "/ready", "/health"} {
		rec := srv.get(t, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &memWords{})

	req := httptest.NewRequest(http.MethodOptions, "/word/today", nil)
	req.Header.Set("Origin", "https://words.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	srv.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET,OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestRouter_PlainOptionsIsNotAllowed(t *testing.T) {
	t.Parallel()

	rec := newTestServer(t, &memWords{}).do(t, http.MethodOptions, "/word/today")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
