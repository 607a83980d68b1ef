// Package service wires the grouping engine to the roster store and
// implements the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Moefedaily/Brief-creation-groupe/internal/adapters/repository"
	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/dedupe"
	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/grouping"
	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/mixing"
	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/model"
	"github.com/Moefedaily/Brief-creation-groupe/pkg/logger"
	"github.com/Moefedaily/Brief-creation-groupe/pkg/metrics"
)

const defaultGroupPrefix = "Group"

// AllocateRequest is one allocation of a stored roster. An empty
// GroupNames list is filled with "<prefix> 1".."<prefix> n".
type AllocateRequest struct {
	NumberOfGroups int            `json:"numberOfGroups"`
	GroupNames     []string       `json:"groupNames,omitempty"`
	Criteria       model.Criteria `json:"criteria"`
}

// Verdict is the mix validation of a partition.
type Verdict struct {
	Balanced bool                     `json:"balanced"`
	Report   []mixing.CriterionResult `json:"report"`
}

// Allocation is an unsaved partition of a roster and its verdict.
type Allocation struct {
	RosterID string        `json:"rosterId"`
	Groups   []model.Group `json:"groups"`
	Verdict
}

// Service implements the API dependencies for roster grouping.
type Service struct {
	store     repository.Store
	deduper   dedupe.Deduper
	allocator *grouping.Allocator

	// Configuration
	dedupeSize    int
	groupPrefix   string
	allocatorOpts []grouping.Option

	metrics *metrics.Manager
	logger  logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dedupeSize:  10_000,
		groupPrefix: defaultGroupPrefix,
		metrics:     metrics.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Named("service")
	}
	if s.store == nil {
		s.store = repository.NewMemoryStore(repository.WithMetrics(s.metrics))
	}
	s.deduper = dedupe.New(dedupe.WithMaxSize(s.dedupeSize))
	s.allocator = grouping.New(s.allocatorOpts...)

	return s
}

// Allocate partitions the people of a stored roster, steering away from
// pairs found in its saved draws, and validates the result. Nothing is
// persisted; see SaveDraw.
func (s *Service) Allocate(ctx context.Context, rosterID string, req AllocateRequest) (Allocation, error) {
	r, err := s.store.GetRoster(ctx, rosterID)
	if err != nil {
		return Allocation{}, err
	}

	res, err := s.allocate(r, req)
	if err != nil {
		s.metrics.RecordAllocationError(errorKind(err))
		s.logger.Warn(ctx, "allocation rejected",
			logger.String("roster_id", rosterID),
			logger.Int("people", len(r.People)),
			logger.Int("groups", req.NumberOfGroups),
			logger.Error(err),
		)
		return Allocation{}, err
	}

	sizes := make([]int, len(res.Groups))
	for i, g := range res.Groups {
		sizes[i] = len(g.People)
	}
	s.metrics.RecordAllocation(sizes, res.Sorted, res.Shuffle.Redraws, res.Shuffle.Forced)
	s.logger.Debug(ctx, "allocation stats",
		logger.String("roster_id", rosterID),
		logger.Bool("sorted", res.Sorted),
		logger.Int("redraws", res.Shuffle.Redraws),
		logger.Int("forced_swaps", res.Shuffle.Forced),
		logger.Int("paired_people", res.PairedPeople),
		logger.Any("sizes", sizes),
	)

	verdict := s.Validate(ctx, res.Groups, req.Criteria)
	s.logger.Info(ctx, "roster allocated",
		logger.String("roster_id", rosterID),
		logger.Int("people", len(r.People)),
		logger.Int("groups", len(res.Groups)),
		logger.Bool("balanced", verdict.Balanced),
	)

	return Allocation{RosterID: rosterID, Groups: res.Groups, Verdict: verdict}, nil
}

func (s *Service) allocate(r repository.Roster, req AllocateRequest) (grouping.Result, error) {
	if err := grouping.CheckGroupCount(len(r.People), req.NumberOfGroups); err != nil {
		return grouping.Result{}, err
	}
	names := req.GroupNames
	if len(names) == 0 {
		names = DefaultGroupNames(s.groupPrefix, req.NumberOfGroups)
	}
	return s.allocator.Run(r.People, req.NumberOfGroups, names, req.Criteria, r.Draws)
}

// Validate checks how evenly groups spread the selected attributes.
func (s *Service) Validate(_ context.Context, groups []model.Group, criteria model.Criteria) Verdict {
	report := mixing.Report(groups, criteria)
	balanced := true
	for _, r := range report {
		balanced = balanced && r.Balanced
	}
	s.metrics.RecordValidation(balanced)
	return Verdict{Balanced: balanced, Report: report}
}

// SaveDraw persists groups as a draw of the roster so later allocations
// avoid its pairs. People are matched to the roster by id. A non-empty
// idempotencyKey already used for this roster returns ErrDuplicateDraw.
func (s *Service) SaveDraw(
	ctx context.Context,
	rosterID, idempotencyKey string,
	groups []model.Group,
	criteria model.Criteria,
) (model.Draw, error) {
	r, err := s.store.GetRoster(ctx, rosterID)
	if err != nil {
		return model.Draw{}, err
	}

	key := rosterID + "/" + idempotencyKey
	if idempotencyKey != "" && s.deduper.SeenAndRecord(ctx, key) {
		s.metrics.RecordDrawDuplicate()
		s.logger.Debug(ctx, "duplicate draw skipped",
			logger.String("roster_id", rosterID),
			logger.String("idempotency_key", idempotencyKey),
		)
		return model.Draw{}, fmt.Errorf("%w: %s", ErrDuplicateDraw, idempotencyKey)
	}

	draw, err := s.store.SaveDraw(ctx, rosterID, model.Draw{
		Groups:   resolvePeople(groups, r.People),
		Criteria: criteria,
	})
	if err != nil {
		if idempotencyKey != "" {
			s.deduper.Unrecord(ctx, key)
		}
		return model.Draw{}, err
	}

	s.metrics.RecordDrawSaved()
	s.logger.Info(ctx, "draw saved",
		logger.String("roster_id", rosterID),
		logger.String("draw_id", draw.ID),
		logger.Int("groups", len(draw.Groups)),
	)
	return draw, nil
}

// Draws returns the saved draws of a roster, oldest first.
func (s *Service) Draws(ctx context.Context, rosterID string) ([]model.Draw, error) {
	return s.store.Draws(ctx, rosterID)
}

// CreateRoster adds an empty roster.
func (s *Service) CreateRoster(ctx context.Context, name string) (repository.Roster, error) {
	r, err := s.store.CreateRoster(ctx, name)
	if err != nil {
		return repository.Roster{}, err
	}
	s.logger.Info(ctx, "roster created", logger.String("roster_id", r.ID), logger.String("name", r.Name))
	return r, nil
}

// RenameRoster changes a roster's name.
func (s *Service) RenameRoster(ctx context.Context, id, name string) (repository.Roster, error) {
	return s.store.RenameRoster(ctx, id, name)
}

// DeleteRoster removes a roster with its people and draws.
func (s *Service) DeleteRoster(ctx context.Context, id string) error {
	if err := s.store.DeleteRoster(ctx, id); err != nil {
		return err
	}
	s.logger.Info(ctx, "roster deleted", logger.String("roster_id", id))
	return nil
}

// ListRosters returns every roster ordered by name.
func (s *Service) ListRosters(ctx context.Context) []repository.Roster {
	return s.store.ListRosters(ctx)
}

// GetRoster returns one roster.
func (s *Service) GetRoster(ctx context.Context, id string) (repository.Roster, error) {
	return s.store.GetRoster(ctx, id)
}

// AddPerson adds a person to a roster.
func (s *Service) AddPerson(ctx context.Context, rosterID string, p model.Person) (model.Person, error) {
	return s.store.AddPerson(ctx, rosterID, p)
}

// UpdatePerson replaces a person of a roster.
func (s *Service) UpdatePerson(ctx context.Context, rosterID string, p model.Person) (model.Person, error) {
	return s.store.UpdatePerson(ctx, rosterID, p)
}

// DeletePerson removes a person from a roster. Saved draws keep it.
func (s *Service) DeletePerson(ctx context.Context, rosterID string, personID int) error {
	return s.store.DeletePerson(ctx, rosterID, personID)
}

// DefaultGroupNames returns "<prefix> 1" through "<prefix> n".
func DefaultGroupNames(prefix string, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s %d", prefix, i+1)
	}
	return names
}

// resolvePeople swaps each group member for the roster record with the
// same id. Unknown ids are kept so the store can reject them.
func resolvePeople(groups []model.Group, people []*model.Person) []model.Group {
	byID := make(map[int]*model.Person, len(people))
	for _, p := range people {
		byID[p.ID] = p
	}
	out := make([]model.Group, len(groups))
	for i, g := range groups {
		members := make([]*model.Person, len(g.People))
		for j, p := range g.People {
			if p == nil {
				continue
			}
			if known, ok := byID[p.ID]; ok {
				members[j] = known
			} else {
				members[j] = p
			}
		}
		out[i] = model.Group{ID: g.ID, Name: g.Name, People: members}
	}
	return out
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, grouping.ErrGroupCount):
		return "group_count"
	case errors.Is(err, grouping.ErrNameCount):
		return "name_count"
	default:
		return "other"
	}
}
