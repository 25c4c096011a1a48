// Package chi wires the assistant service to the HTTP API.
package chi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ashk12/phone-assistant/internal/catalog"
	"github.com/ashk12/phone-assistant/internal/usecase/assistant"
	"github.com/ashk12/phone-assistant/internal/version"
)

// Server exposes the two query operations plus health and metrics.
type Server struct {
	assistant *assistant.Service
	catalog   *catalog.Store
	source    catalog.Source
	logger    *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	svc *assistant.Service,
	store *catalog.Store,
	source catalog.Source,
	logger *zap.Logger,
) *Server {
	return &Server{
		assistant: svc,
		catalog:   store,
		source:    source,
		logger:    logger,
	}
}

// Register mounts all routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Post("/chat", s.Chat)
	r.Post("/chat_stream", s.ChatStream)
	r.Get("/health", s.Health)
	r.Handle("/metrics", promhttp.Handler())
}

// queryRequest is the body of both query operations.
type queryRequest struct {
	Query string `json:"query"`
}

// queryResponse is the synchronous answer shape.
type queryResponse struct {
	Intent       string  `json:"intent"`
	Confidence   float64 `json:"confidence"`
	ResponseText string  `json:"response_text"`
}

// Chat handles POST /chat: one query in, one complete answer out.
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	query, ok := s.decodeQuery(w, r)
	if !ok {
		return
	}

	ans := s.assistant.Process(r.Context(), query)

	writeJSON(w, http.StatusOK, queryResponse{
		Intent:       string(ans.Intent),
		Confidence:   ans.Confidence,
		ResponseText: ans.Text,
	})
}

// ChatStream handles POST /chat_stream: the answer is delivered as plain-text
// chunks, one flush per sentence. Each chunk is produced only after the
// previous one went out.
func (s *Server) ChatStream(w http.ResponseWriter, r *http.Request) {
	query, ok := s.decodeQuery(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	for chunk := range s.assistant.Stream(r.Context(), query) {
		if _, err := w.Write([]byte(chunk)); err != nil {
			s.logger.Warn("stream write failed", zap.Error(err))
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"version":        version.Version,
		"catalog_size":   s.catalog.Len(),
		"catalog_source": string(s.source),
	})
}

// decodeQuery parses the request body and rejects empty queries before any
// processing happens.
func (s *Server) decodeQuery(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return "", false
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, "Query cannot be empty")
		return "", false
	}
	return req.Query, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
