package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/najia"
	"github.com/aretw0/najia/internal/logging"
	"github.com/aretw0/najia/internal/runtime"
	"github.com/aretw0/najia/pkg/domain"
	"github.com/aretw0/najia/pkg/ports"
	"github.com/go-chi/chi/v5"
)

// Engine defines what the HTTP adapter needs from the najia core.
type Engine interface {
	ports.Caster
	ports.Journal
	Catalog() []domain.CatalogEntry
	Lookup(number int) (domain.CatalogEntry, error)
}

// Server holds the handlers of the HTTP API.
type Server struct {
	Engine  Engine
	Streams *StreamManager
	Metrics http.Handler
	Logger  *slog.Logger
	Now     func() time.Time
}

// Option configures the HTTP handler.
type Option func(*Server)

// WithMetrics mounts a Prometheus handler at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithClock sets the instant used by moment casts that omit one.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.Now = now
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	server := &Server{
		Engine:  engine,
		Streams: NewStreamManager(),
		Logger:  logging.NewNop(),
		Now:     time.Now,
	}
	for _, opt := range opts {
		opt(server)
	}
	server.Streams.logger = server.Logger

	r := chi.NewRouter()
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	if server.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", server.Metrics)
	}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/cast/coins", server.CastCoins)
		r.Post("/cast/numbers", server.CastNumbers)
		r.Post("/cast/moment", server.CastMoment)
		r.Get("/readings", server.ListReadings)
		r.Get("/readings/{id}", server.GetReading)
		r.Get("/hexagrams", server.ListHexagrams)
		r.Get("/hexagrams/{number}", server.GetHexagram)
		r.Get("/events", server.SubscribeEvents)
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CastRequest is the body shared by the three cast endpoints. Only the field
// matching the endpoint is read.
type CastRequest struct {
	Query   string     `json:"query,omitempty"`
	Numbers []int      `json:"numbers,omitempty"`
	Instant *time.Time `json:"instant,omitempty"`
}

// maxBodyBytes bounds a cast request body: a full-size query plus room for
// JSON escaping and a long list of numbers.
const maxBodyBytes = 16 * runtime.MaxQuerySize

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, op string) (CastRequest, bool) {
	var body CastRequest
	if r.ContentLength == 0 {
		return body, true
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.Logger.Warn(op+": Request body too large", "limit", tooLarge.Limit)
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "request body too large"})
			return body, false
		}
		s.Logger.Warn(op+": Invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return body, false
	}
	return body, true
}

// CastCoins handles POST /v1/cast/coins.
func (s *Server) CastCoins(w http.ResponseWriter, r *http.Request) {
	body, ok := s.decode(w, r, "CastCoins")
	if !ok {
		return
	}
	reading, err := s.Engine.CastByCoins(r.Context(), body.Query)
	s.respondCast(w, r, "CastCoins", reading, err)
}

// CastNumbers handles POST /v1/cast/numbers.
func (s *Server) CastNumbers(w http.ResponseWriter, r *http.Request) {
	body, ok := s.decode(w, r, "CastNumbers")
	if !ok {
		return
	}
	reading, err := s.Engine.CastByNumbers(r.Context(), body.Numbers, body.Query)
	s.respondCast(w, r, "CastNumbers", reading, err)
}

// CastMoment handles POST /v1/cast/moment. Without an instant, the server clock is used.
func (s *Server) CastMoment(w http.ResponseWriter, r *http.Request) {
	body, ok := s.decode(w, r, "CastMoment")
	if !ok {
		return
	}
	instant := s.Now()
	if body.Instant != nil {
		instant = *body.Instant
	}
	reading, err := s.Engine.CastByMoment(r.Context(), instant, body.Query)
	s.respondCast(w, r, "CastMoment", reading, err)
}

func (s *Server) respondCast(w http.ResponseWriter, r *http.Request, op string, reading *domain.Reading, err error) {
	if err != nil {
		s.writeError(w, op, err)
		return
	}

	if payload, err := json.Marshal(NewCastNotice(reading)); err == nil {
		s.Streams.Broadcast(string(reading.Case.Method), string(payload))
	}

	writeJSON(w, http.StatusCreated, reading)
}

// ListReadings handles GET /v1/readings.
func (s *Server) ListReadings(w http.ResponseWriter, r *http.Request) {
	readings, err := s.Engine.History(r.Context())
	if err != nil {
		s.writeError(w, "ListReadings", err)
		return
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit >= 0 && limit < len(readings) {
		readings = readings[:limit]
	}
	writeJSON(w, http.StatusOK, readings)
}

// GetReading handles GET /v1/readings/{id}.
func (s *Server) GetReading(w http.ResponseWriter, r *http.Request) {
	reading, err := s.Engine.Recall(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, "GetReading", err)
		return
	}
	writeJSON(w, http.StatusOK, reading)
}

// ListHexagrams handles GET /v1/hexagrams.
func (s *Server) ListHexagrams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Engine.Catalog())
}

// GetHexagram handles GET /v1/hexagrams/{number}.
func (s *Server) GetHexagram(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "hexagram number must be an integer"})
		return
	}
	entry, err := s.Engine.Lookup(number)
	if err != nil {
		s.writeError(w, "GetHexagram", err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":     "najia-http",
		"version": strings.TrimSpace(najia.Version),
	})
}

// StatusFor maps engine errors onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrReadingNotFound), errors.Is(err, domain.ErrHexagramNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNoJournal):
		return http.StatusNotImplemented
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, op string, err error) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		s.Logger.Error(op+" failed", "error", err)
	} else {
		s.Logger.Debug(op+" rejected", "error", err, "status", status)
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// CastNotice is the event pushed to stream subscribers after each cast.
type CastNotice struct {
	ID          string               `json:"id"`
	Method      domain.Method        `json:"method"`
	Hexagram    int                  `json:"hexagram"`
	Transformed int                  `json:"transformed,omitempty"`
	Verdict     domain.Verdict       `json:"verdict"`
	Diff        *domain.HexagramDiff `json:"diff,omitempty"`
}

// NewCastNotice summarizes a reading for the event stream.
func NewCastNotice(r *domain.Reading) CastNotice {
	n := CastNotice{
		ID:       r.Case.ID,
		Method:   r.Case.Method,
		Hexagram: r.Case.Original.Number,
		Verdict:  r.Analysis.Evaluation.Verdict,
		Diff:     domain.Diff(&r.Case.Original, r.Case.Transformed),
	}
	if r.Case.Transformed != nil {
		n.Transformed = r.Case.Transformed.Number
	}
	return n
}
