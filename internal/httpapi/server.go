package httpapi

import (
	_ "embed"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"binconv/internal/domain"
	"binconv/internal/shell"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// DefaultMaxSessions caps live sessions unless WithMaxSessions says otherwise.
const DefaultMaxSessions = 1024

// Option configures a Server.
type Option func(*Server)

// WithMaxSessions caps how many sessions may be live at once. Creating one
// more answers 503 until a session is deleted.
func WithMaxSessions(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.sessions.max = n
		}
	}
}

// WithSessionOptions applies opts to every session created through the API.
func WithSessionOptions(opts ...shell.Option) Option {
	return func(s *Server) { s.sessionOpts = append(s.sessionOpts, opts...) }
}

//go:embed static/index.html
var indexHTML []byte

// Server serves the converter UI and JSON API.
type Server struct {
	svc         domain.ConversionService
	log         *slog.Logger
	sessions    *sessionStore
	sessionOpts []shell.Option
	handler     http.Handler
}

// New builds a Server. Sessions created through the API log to log.
func New(svc domain.ConversionService, log *slog.Logger, opts ...Option) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		svc:         svc,
		log:         log,
		sessions:    newSessionStore(DefaultMaxSessions),
		sessionOpts: []shell.Option{shell.WithLogger(log)},
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /api/convert", s.handleConvert)
	mux.HandleFunc("POST /api/sessions", s.handleCreateSession)
	mux.HandleFunc("GET /api/sessions/{id}", s.withSession(s.handleGetSession))
	mux.HandleFunc("PUT /api/sessions/{id}/input", s.withSession(s.handleSetInput))
	mux.HandleFunc("PUT /api/sessions/{id}/mode", s.withSession(s.handleSetMode))
	mux.HandleFunc("POST /api/sessions/{id}/swap", s.withSession(s.handleSwap))
	mux.HandleFunc("POST /api/sessions/{id}/clear", s.withSession(s.handleClear))
	mux.HandleFunc("DELETE /api/sessions/{id}", s.handleDeleteSession)
	s.handler = accessLog(log, mux)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Close drops every session.
func (s *Server) Close() { s.sessions.closeAll() }

// SessionCount reports how many sessions are live.
func (s *Server) SessionCount() int { return s.sessions.len() }

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req domain.ConvertRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	out, err := s.svc.Convert(r.Context(), req.Mode, req.Input)
	if err != nil {
		var convErr *domain.ConversionError
		if errors.As(err, &convErr) {
			idx := convErr.Index
			writeJSON(w, http.StatusUnprocessableEntity, domain.APIError{
				Error: domain.InvalidFormatMessage,
				Kind:  convErr.Kind.String(),
				Token: convErr.Token,
				Index: &idx,
				Unit:  convErr.Unit,
			})
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, domain.ConvertResponse{Output: out})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req domain.ModeRequest
	if err := decodeBody(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	opts := s.sessionOpts
	if req.Mode != nil {
		opts = append(opts[:len(opts):len(opts)], shell.WithMode(*req.Mode))
	}
	sess := shell.New(s.svc, opts...)
	id, ok := s.sessions.add(sess)
	if !ok {
		sess.Close()
		s.log.WarnContext(r.Context(), "session limit reached", "max", s.sessions.max)
		writeError(w, http.StatusServiceUnavailable, "too many sessions")
		return
	}
	s.log.DebugContext(r.Context(), "session created", "id", id)
	writeJSON(w, http.StatusCreated, domain.SessionResponse{ID: id, ShellState: sess.State()})
}

type sessionHandler func(w http.ResponseWriter, r *http.Request, id string, sess *shell.Session)

func (s *Server) withSession(h sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		sess, ok := s.sessions.get(id)
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		h(w, r, id, sess)
	}
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request, id string, sess *shell.Session) {
	writeJSON(w, http.StatusOK, domain.SessionResponse{ID: id, ShellState: sess.State()})
}

func (s *Server) handleSetInput(w http.ResponseWriter, r *http.Request, id string, sess *shell.Session) {
	var req domain.InputRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	st := sess.SetInput(r.Context(), req.Input)
	writeJSON(w, http.StatusOK, domain.SessionResponse{ID: id, ShellState: st})
}

func (s *Server) handleSetMode(w http.ResponseWriter, r *http.Request, id string, sess *shell.Session) {
	var req domain.ModeRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Mode == nil {
		writeError(w, http.StatusBadRequest, "mode required")
		return
	}
	st := sess.SetMode(r.Context(), *req.Mode)
	writeJSON(w, http.StatusOK, domain.SessionResponse{ID: id, ShellState: st})
}

func (s *Server) handleSwap(w http.ResponseWriter, r *http.Request, id string, sess *shell.Session) {
	writeJSON(w, http.StatusOK, domain.SessionResponse{ID: id, ShellState: sess.Swap(r.Context())})
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request, id string, sess *shell.Session) {
	writeJSON(w, http.StatusOK, domain.SessionResponse{ID: id, ShellState: sess.Clear(r.Context())})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if !s.sessions.remove(r.PathValue("id")) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, domain.APIError{Error: msg})
}
