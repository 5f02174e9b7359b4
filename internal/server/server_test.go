package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Whitekid123/finance-tracker/internal/pipeline"
	"github.com/Whitekid123/finance-tracker/internal/registry"
	"github.com/Whitekid123/finance-tracker/internal/rules"
	"github.com/Whitekid123/finance-tracker/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	st, err := store.New(context.Background(), store.NewMemoryKV())
	require.NoError(t, err)

	engine, err := rules.LoadEmbedded()
	require.NoError(t, err)

	pipe, err := pipeline.New(registry.New(), engine, st)
	require.NoError(t, err)

	srv, err := New(st, pipe)
	require.NoError(t, err)
	return srv
}

func TestNew_RequiresDependencies(t *testing.T) {
	_, err := New(nil, nil)
	require.Error(t, err)
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.Handler()

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{name: "health", method: http.MethodGet, path: "/health", status: http.StatusOK},
		{name: "transactions", method: http.MethodGet, path: "/api/transactions", status: http.StatusOK},
		{name: "summary", method: http.MethodGet, path: "/api/summary", status: http.StatusOK},
		{name: "categories", method: http.MethodGet, path: "/api/categories", status: http.StatusOK},
		{name: "clear", method: http.MethodPost, path: "/api/clear", status: http.StatusOK},
		{name: "import rejects GET", method: http.MethodGet, path: "/api/import", status: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			require.Equal(t, tt.status, rec.Code)
			require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestPreflight(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/import", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
}
