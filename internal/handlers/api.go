package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/Whitekid123/finance-tracker/internal/domain"
	"github.com/Whitekid123/finance-tracker/internal/pipeline"
	"github.com/Whitekid123/finance-tracker/internal/store"
	"github.com/Whitekid123/finance-tracker/internal/summary"
)

// maxUploadBytes caps multipart statement uploads.
const maxUploadBytes = 32 << 20

// APIHandler serves the tracker state to an external UI.
type APIHandler struct {
	store    *store.Store
	pipeline *pipeline.Pipeline
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(st *store.Store, pipe *pipeline.Pipeline) *APIHandler {
	return &APIHandler{store: st, pipeline: pipe}
}

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// GetTransactions handles GET /api/transactions
func (h *APIHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	txns := h.store.Get()
	if txns == nil {
		txns = []domain.Transaction{}
	}
	writeJSON(w, txns)
}

// GetSummary handles GET /api/summary. The optional opening query
// parameter seeds the final balance; it is never persisted.
func (h *APIHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	opening := 0.0
	if raw := r.URL.Query().Get("opening"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "invalid opening balance", http.StatusBadRequest)
			return
		}
		opening = parsed
	}

	stats := summary.Compute(h.store.Get(), opening)
	writeJSON(w, stats)
}

// GetCategories handles GET /api/categories
func (h *APIHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, domain.Categories)
}

// ImportResponse reports the outcome of a statement upload. When layout
// detection fails the import succeeds with zero transactions and the
// Trace explains what was tried.
type ImportResponse struct {
	FileName       string   `json:"fileName"`
	ParserName     string   `json:"parserName"`
	Count          int      `json:"count"`
	RulesMatched   int      `json:"rulesMatched"`
	RulesUnmatched int      `json:"rulesUnmatched"`
	Coverage       float64  `json:"coverage"`
	Trace          []string `json:"trace,omitempty"`
}

// Import handles POST /api/import with a multipart "file" field.
func (h *APIHandler) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "No file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		http.Error(w, "Failed to read upload", http.StatusBadRequest)
		return
	}

	result, err := h.pipeline.ImportUpload(r.Context(), header.Filename, content)
	if err != nil {
		log.Printf("ERROR: Import of %s failed: %v", header.Filename, err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	resp := ImportResponse{
		FileName:       result.FileName,
		ParserName:     result.ParserName,
		Count:          len(result.Transactions),
		RulesMatched:   result.RulesMatched,
		RulesUnmatched: result.RulesUnmatched,
		Coverage:       result.Coverage(),
	}
	if len(result.Transactions) == 0 {
		resp.Trace = result.Trace
	}
	writeJSON(w, resp)
}

// Clear handles POST /api/clear
func (h *APIHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := h.store.Clear(r.Context()); err != nil {
		log.Printf("ERROR: Failed to clear store: %v", err)
		http.Error(w, "Failed to clear transactions", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"status": "cleared"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: Failed to encode response: %v", err)
	}
}
