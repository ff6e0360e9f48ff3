// Package api implements the HTTP surface of spantable.
//
// The API exposes the layout pipeline over HTTP for deployments where the
// CLI is impractical (e.g., a rendering service that needs grid layouts for
// many tables). It is a thin JSON shell around [pipeline.Runner]: the same
// validation, cache keys, and encoding as the CLI.
//
// # Endpoints
//
//   - POST /v1/layout: compute a layout from {"spans": {...}, "table": [[...]]}
//   - GET /healthz: liveness probe
//
// Requests carry a generated request ID (X-Request-ID response header) that
// is attached to all log lines for that request.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/spantable/pkg/errors"
	"github.com/matzehuels/spantable/pkg/pipeline"
)

// Server handles HTTP layout requests.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// NewServer creates a server backed by the given pipeline runner.
func NewServer(runner *pipeline.Runner, logger *log.Logger) *Server {
	return &Server{runner: runner, logger: logger}
}

// Router builds the chi router with middleware and routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/layout", s.handleLayout)

	return r
}

// layoutRequest is the POST /v1/layout body. Both fields are raw JSON so
// the pipeline's decoder owns all shape validation.
type layoutRequest struct {
	Spans json.RawMessage `json:"spans"`
	Table json.RawMessage `json:"table"`
}

// layoutResponse is the success body of POST /v1/layout.
type layoutResponse struct {
	Layout   json.RawMessage `json:"layout"`
	Rows     int             `json:"rows"`
	Cells    int             `json:"cells"`
	CacheHit bool            `json:"cache_hit"`
}

// errorResponse is the error body of all endpoints.
type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	if len(req.Spans) == 0 || len(req.Table) == 0 {
		writeError(w, http.StatusBadRequest, errors.New(errors.ErrCodeInvalidInput, "both spans and table are required"))
		return
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		SpanInfo: string(req.Spans),
		Table:    string(req.Table),
	})
	if err != nil {
		status := http.StatusInternalServerError
		switch errors.GetCode(err) {
		case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidSpan:
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}

	writeJSON(w, http.StatusOK, layoutResponse{
		Layout:   result.Encoded,
		Rows:     result.Stats.Rows,
		Cells:    result.Stats.Cells,
		CacheHit: result.CacheHit,
	})
}

// requestID assigns each request a UUID, exposed in the response and in
// the request context for logging.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// logRequests emits one structured line per request with timing.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"id", requestIDFrom(r),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"took", time.Since(start).Round(time.Microsecond),
		)
	})
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

const requestIDKey ctxKey = 0

func requestIDFrom(r *http.Request) string {
	if id, ok := r.Context().Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  errors.GetCode(err),
	})
}
