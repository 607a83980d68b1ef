package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/model"
)

type rosterRequest struct {
	Name string `json:"name"`
}

// HandleCreateRoster handles POST /rosters requests.
func (s *Server) HandleCreateRoster(w http.ResponseWriter, r *http.Request) {
	const op = "api.create_roster"
	var req rosterRequest
	if err := decode(w, r, op, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	roster, err := s.deps.CreateRoster(r.Context(), req.Name)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, roster)
}

// HandleListRosters handles GET /rosters requests.
func (s *Server) HandleListRosters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.ListRosters(r.Context()))
}

// HandleGetRoster handles GET /rosters/{id} requests.
func (s *Server) HandleGetRoster(w http.ResponseWriter, r *http.Request) {
	roster, err := s.deps.GetRoster(r.Context(), rosterID(r))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, roster)
}

// HandleRenameRoster handles PUT /rosters/{id} requests.
func (s *Server) HandleRenameRoster(w http.ResponseWriter, r *http.Request) {
	const op = "api.rename_roster"
	var req rosterRequest
	if err := decode(w, r, op, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	roster, err := s.deps.RenameRoster(r.Context(), rosterID(r), req.Name)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, roster)
}

// HandleDeleteRoster handles DELETE /rosters/{id} requests.
func (s *Server) HandleDeleteRoster(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.DeleteRoster(r.Context(), rosterID(r)); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAddPerson handles POST /rosters/{id}/people requests.
func (s *Server) HandleAddPerson(w http.ResponseWriter, r *http.Request) {
	const op = "api.add_person"
	var p model.Person
	if err := decode(w, r, op, &p); err != nil {
		s.fail(w, r, err)
		return
	}
	added, err := s.deps.AddPerson(r.Context(), rosterID(r), p)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, added)
}

// HandleUpdatePerson handles PUT /rosters/{id}/people/{pid} requests. The
// id in the path wins over one in the body.
func (s *Server) HandleUpdatePerson(w http.ResponseWriter, r *http.Request) {
	const op = "api.update_person"
	pid, err := personID(r, op)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var p model.Person
	if err := decode(w, r, op, &p); err != nil {
		s.fail(w, r, err)
		return
	}
	p.ID = pid
	updated, err := s.deps.UpdatePerson(r.Context(), rosterID(r), p)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// HandleDeletePerson handles DELETE /rosters/{id}/people/{pid} requests.
func (s *Server) HandleDeletePerson(w http.ResponseWriter, r *http.Request) {
	const op = "api.delete_person"
	pid, err := personID(r, op)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.deps.DeletePerson(r.Context(), rosterID(r), pid); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func personID(r *http.Request, op string) (int, error) {
	pid, err := strconv.Atoi(strings.TrimSpace(chi.URLParam(r, "pid")))
	if err != nil {
		return 0, WrapKind(op, ErrBadRequest, err)
	}
	return pid, nil
}
