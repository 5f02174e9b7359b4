package server

import (
	"fmt"
	"net/http"

	"github.com/Whitekid123/finance-tracker/internal/handlers"
	"github.com/Whitekid123/finance-tracker/internal/middleware"
	"github.com/Whitekid123/finance-tracker/internal/pipeline"
	"github.com/Whitekid123/finance-tracker/internal/store"
)

// Server exposes the tracker over HTTP for an external UI.
type Server struct {
	mux *http.ServeMux
}

// New creates a server over an existing store and pipeline. The caller
// keeps ownership of both and of the underlying KV.
func New(st *store.Store, pipe *pipeline.Pipeline) (*Server, error) {
	if st == nil || pipe == nil {
		return nil, fmt.Errorf("server requires a store and a pipeline")
	}

	s := &Server{mux: http.NewServeMux()}
	s.setupRoutes(st, pipe)
	return s, nil
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(st *store.Store, pipe *pipeline.Pipeline) {
	s.mux.HandleFunc("/health", handlers.HealthCheck)

	api := handlers.NewAPIHandler(st, pipe)
	s.mux.HandleFunc("/api/transactions", api.GetTransactions)
	s.mux.HandleFunc("/api/summary", api.GetSummary)
	s.mux.HandleFunc("/api/categories", api.GetCategories)
	s.mux.HandleFunc("/api/import", api.Import)
	s.mux.HandleFunc("/api/clear", api.Clear)

	// Static files for the frontend (when deployed together)
	fs := http.FileServer(http.Dir("./web/dist"))
	s.mux.Handle("/", fs)
}

// Handler returns the HTTP handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return middleware.CORS(s.mux)
}
