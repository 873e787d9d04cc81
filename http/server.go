package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/cors"
	"github.com/webonehq/webone"
)

// Server exposes the extraction pipeline over HTTP.
//
//	GET /                     liveness probe
//	GET /extract?pageURL=URL  fetch the page and return its extraction record
type Server struct {
	fetcher   webone.Fetcher
	extractor webone.Extractor
	store     webone.ResultStore
	logger    *slog.Logger
	handler   http.Handler
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithResultStore makes the server persist successful results to the given
// store. Persistence failures are logged and never fail the response.
func WithResultStore(store webone.ResultStore) ServerOption {
	return func(s *Server) {
		s.store = store
	}
}

// WithServerLogger sets the logger used for request and handler logging.
// Defaults to slog.Default().
func WithServerLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer wires handlers onto an HTTP mux with CORS and request logging.
func NewServer(fetcher webone.Fetcher, extractor webone.Extractor, opts ...ServerOption) *Server {
	s := &Server{
		fetcher:   fetcher,
		extractor: extractor,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleAlive)
	mux.HandleFunc("/extract", s.handleExtract)

	s.handler = cors.AllowAll().Handler(s.withRequestLog(mux))
	return s
}

// ServeHTTP satisfies the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) handleAlive(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, "webone API is ready")
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	// A missing page URL is a client error; it never reaches the pipeline.
	pageURL := r.URL.Query().Get("pageURL")
	if pageURL == "" {
		writeError(w, http.StatusBadRequest, "pageURL query parameter required")
		return
	}

	rawHTML, err := s.fetcher.Fetch(r.Context(), pageURL)
	if err != nil {
		s.logger.Error("page fetch failed", "url", pageURL, "error", err)
		if webone.ErrorCode(err) == webone.EINVALID {
			writeError(w, http.StatusBadRequest, webone.ErrorMessage(err))
			return
		}
		writeError(w, http.StatusBadGateway, fmt.Sprintf("failed to fetch %s", pageURL))
		return
	}

	result := s.extractor.Extract(pageURL, rawHTML)

	if s.store != nil && result.OK() {
		if err := s.store.SaveResult(r.Context(), result); err != nil {
			s.logger.Warn("failed to persist result", "url", pageURL, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, result)
}

// withRequestLog assigns each request an id and logs method, path and
// duration after the handler completes.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		requestID := uuid.New().String()
		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r)

		s.logger.Info("request handled",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(begin),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}
