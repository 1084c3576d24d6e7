// Package server exposes the expression compiler over HTTP. It is a
// transport layer only: it decodes one expression per request, hands it to
// exprc.Compile, and serializes the result.
package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	slogmulti "github.com/samber/slog-multi"

	"github.com/minicomp/exprc"
)

// compileRequest is the body of POST /api/compile.
type compileRequest struct {
	Expression string `json:"expression"`
}

// errorResponse is the envelope for failed compiles.
type errorResponse struct {
	Error string `json:"error"`
}

// Server handles compile requests.
type Server struct {
	log *slog.Logger
}

// New creates a Server logging through log.
func New(log *slog.Logger) *Server {
	return &Server{log: log}
}

// NewLogger builds the server's logger. Records always go to w as text; if
// jsonw is non-nil they fan out there as JSON as well, e.g. to a log file
// shipped to an indexer.
func NewLogger(w, jsonw io.Writer) *slog.Logger {
	text := slog.NewTextHandler(w, nil)
	if jsonw == nil {
		return slog.New(text)
	}
	return slog.New(slogmulti.Fanout(text, slog.NewJSONHandler(jsonw, nil)))
}

// RegisterHandlers registers the api handlers for their respective routes.
func (s *Server) RegisterHandlers(router *chi.Mux) {
	router.Post("/api/compile", s.compileHandler)
	router.Get("/healthz", s.healthzHandler)
}

// Router builds the server's route table.
func (s *Server) Router() *chi.Mux {
	router := chi.NewRouter()
	s.RegisterHandlers(router)
	return router
}

// ListenAndServe serves the API on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("ready to serve", "addr", addr)
	return http.ListenAndServe(addr, s.Router())
}

// compileHandler compiles one expression. Compile failures are part of
// normal operation, so they are returned in the response envelope with
// status 200; only malformed requests are transport errors.
func (s *Server) compileHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req compileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.reportError(w, err, "Failed to decode request.", http.StatusBadRequest)
		return
	}
	res, err := exprc.Compile(req.Expression)
	if err != nil {
		s.log.Info("compile failed", "expression", req.Expression, "err", err)
		s.sendJSON(w, errorResponse{Error: err.Error()})
		return
	}
	s.log.Info("compiled", "expression", req.Expression, "result", res.Value)
	s.sendJSON(w, res)
}

func (s *Server) healthzHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) sendJSON(w http.ResponseWriter, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("failed to encode response", "err", err)
	}
}

func (s *Server) reportError(w http.ResponseWriter, err error, msg string, code int) {
	s.log.Error(msg, "err", err)
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: msg}); err != nil {
		s.log.Error("failed to encode error response", "err", err)
	}
}
