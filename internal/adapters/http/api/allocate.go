package api

import (
	"net/http"
	"strings"

	service "github.com/Moefedaily/Brief-creation-groupe/internal/app"
	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/model"
)

// IdempotencyKeyHeader carries the client key for POST /rosters/{id}/draws.
const IdempotencyKeyHeader = "Idempotency-Key"

type partitionRequest struct {
	Groups   []model.Group  `json:"groups"`
	Criteria model.Criteria `json:"criteria"`
}

// HandleAllocate handles POST /rosters/{id}/allocate requests.
func (s *Server) HandleAllocate(w http.ResponseWriter, r *http.Request) {
	const op = "api.allocate"
	var req service.AllocateRequest
	if err := decode(w, r, op, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	alloc, err := s.deps.Allocate(r.Context(), rosterID(r), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, alloc)
}

// HandleValidate handles POST /validate requests.
func (s *Server) HandleValidate(w http.ResponseWriter, r *http.Request) {
	const op = "api.validate"
	var req partitionRequest
	if err := decode(w, r, op, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.deps.Validate(r.Context(), req.Groups, req.Criteria))
}

// HandleSaveDraw handles POST /rosters/{id}/draws requests.
func (s *Server) HandleSaveDraw(w http.ResponseWriter, r *http.Request) {
	const op = "api.save_draw"
	var req partitionRequest
	if err := decode(w, r, op, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	key := strings.TrimSpace(r.Header.Get(IdempotencyKeyHeader))
	draw, err := s.deps.SaveDraw(r.Context(), rosterID(r), key, req.Groups, req.Criteria)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, draw)
}

// HandleListDraws handles GET /rosters/{id}/draws requests.
func (s *Server) HandleListDraws(w http.ResponseWriter, r *http.Request) {
	draws, err := s.deps.Draws(r.Context(), rosterID(r))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, draws)
}
