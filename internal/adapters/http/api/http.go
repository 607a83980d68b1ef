// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Moefedaily/Brief-creation-groupe/internal/adapters/repository"
	service "github.com/Moefedaily/Brief-creation-groupe/internal/app"
	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/grouping"
	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/model"
	"github.com/Moefedaily/Brief-creation-groupe/pkg/logger"
	"github.com/Moefedaily/Brief-creation-groupe/pkg/metrics"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	CreateRoster(ctx context.Context, name string) (repository.Roster, error)
	RenameRoster(ctx context.Context, id, name string) (repository.Roster, error)
	DeleteRoster(ctx context.Context, id string) error
	ListRosters(ctx context.Context) []repository.Roster
	GetRoster(ctx context.Context, id string) (repository.Roster, error)

	AddPerson(ctx context.Context, rosterID string, p model.Person) (model.Person, error)
	UpdatePerson(ctx context.Context, rosterID string, p model.Person) (model.Person, error)
	DeletePerson(ctx context.Context, rosterID string, personID int) error

	Allocate(ctx context.Context, rosterID string, req service.AllocateRequest) (service.Allocation, error)
	Validate(ctx context.Context, groups []model.Group, criteria model.Criteria) service.Verdict
	SaveDraw(ctx context.Context, rosterID, idempotencyKey string, groups []model.Group, criteria model.Criteria) (model.Draw, error)
	Draws(ctx context.Context, rosterID string) ([]model.Draw, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	deps     Dependencies
	metrics  *metrics.Manager
	gatherer prometheus.Gatherer
	logger   logger.Logger
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithMetrics sets the manager recording request metrics.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Server) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithGatherer sets the registry served on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		if g != nil {
			s.gatherer = g
		}
	}
}

// WithLogger sets the logger used for server errors.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates a new API server.
func NewServer(deps Dependencies, opts ...Option) *Server {
	s := &Server{
		deps:     deps,
		metrics:  metrics.Default(),
		gatherer: metrics.GetRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Named("api")
	}
	return s
}

// Register mounts every route on r.
func (s *Server) Register(r chi.Router) {
	r.Get("/healthz", s.instrument("healthz", s.HandleHealth))
	r.Get("/metrics", s.instrument("metrics", metricsHandler(s.gatherer)))

	r.Route("/rosters", func(r chi.Router) {
		r.Post("/", s.instrument("rosters", s.HandleCreateRoster))
		r.Get("/", s.instrument("rosters", s.HandleListRosters))

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.instrument("roster", s.HandleGetRoster))
			r.Put("/", s.instrument("roster", s.HandleRenameRoster))
			r.Delete("/", s.instrument("roster", s.HandleDeleteRoster))

			r.Post("/people", s.instrument("people", s.HandleAddPerson))
			r.Put("/people/{pid}", s.instrument("person", s.HandleUpdatePerson))
			r.Delete("/people/{pid}", s.instrument("person", s.HandleDeletePerson))

			r.Post("/allocate", s.instrument("allocate", s.HandleAllocate))
			r.Post("/draws", s.instrument("draws", s.HandleSaveDraw))
			r.Get("/draws", s.instrument("draws", s.HandleListDraws))
		})
	})

	r.Post("/validate", s.instrument("validate", s.HandleValidate))
}

func (s *Server) instrument(endpoint string, h http.HandlerFunc) http.HandlerFunc {
	return MetricsMiddleware(s.metrics, h, endpoint)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// fail translates domain errors into HTTP statuses.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrBadRequest):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrPersonNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, repository.ErrDuplicateName), errors.Is(err, service.ErrDuplicateDraw):
		writeError(w, http.StatusConflict, "conflict", err)
	case errors.Is(err, grouping.ErrGroupCount),
		errors.Is(err, grouping.ErrNameCount),
		errors.Is(err, model.ErrInvalidPerson),
		errors.Is(err, repository.ErrInvalidName),
		errors.Is(err, repository.ErrInvalidDraw):
		writeError(w, http.StatusUnprocessableEntity, "unprocessable", err)
	default:
		s.logger.Error(r.Context(), "request failed",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}

// rosterID returns the {id} path parameter.
func rosterID(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// decode reads a JSON body into v.
func decode(w http.ResponseWriter, r *http.Request, op string, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return WrapKind(op, ErrBadRequest, err)
	}
	return nil
}
