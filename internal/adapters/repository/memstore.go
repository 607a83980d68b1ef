package repository

import (
	"context"
	cryptorand "crypto/rand"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/model"
	"github.com/Moefedaily/Brief-creation-groupe/pkg/metrics"
)

// roster is the stored form. nextPersonID only grows so ids of deleted
// people are never handed out again.
type roster struct {
	id           string
	name         string
	people       []*model.Person
	draws        []model.Draw
	nextPersonID int
}

// MemoryStore is an in-memory Store guarded by a single RWMutex. Draw ids
// are ULIDs stamped with the draw time, so they sort chronologically.
type MemoryStore struct {
	mu      sync.RWMutex
	rosters map[string]*roster
	entropy io.Reader // monotonic, used under mu

	newID   func() string
	now     func() time.Time
	metrics *metrics.Manager
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		rosters: make(map[string]*roster),
		entropy: ulid.Monotonic(cryptorand.Reader, 0),
		newID:   uuid.NewString,
		now:     time.Now,
		metrics: metrics.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *MemoryStore) CreateRoster(_ context.Context, name string) (Roster, error) {
	name, err := cleanName(name)
	if err != nil {
		return Roster{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nameTaken(name, "") {
		return Roster{}, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	r := &roster{id: s.newID(), name: name, nextPersonID: 1}
	s.rosters[r.id] = r
	s.metrics.UpdateRosterCount(len(s.rosters))
	return r.snapshot(), nil
}

func (s *MemoryStore) RenameRoster(_ context.Context, id, name string) (Roster, error) {
	name, err := cleanName(name)
	if err != nil {
		return Roster{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rosters[id]
	if !ok {
		return Roster{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if s.nameTaken(name, id) {
		return Roster{}, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	r.name = name
	return r.snapshot(), nil
}

func (s *MemoryStore) DeleteRoster(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rosters[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(s.rosters, id)
	s.metrics.UpdateRosterCount(len(s.rosters))
	return nil
}

func (s *MemoryStore) ListRosters(_ context.Context) []Roster {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Roster, 0, len(s.rosters))
	for _, r := range s.rosters {
		out = append(out, r.snapshot())
	}
	slices.SortFunc(out, func(a, b Roster) int {
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

func (s *MemoryStore) GetRoster(_ context.Context, id string) (Roster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rosters[id]
	if !ok {
		return Roster{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return r.snapshot(), nil
}

func (s *MemoryStore) AddPerson(_ context.Context, rosterID string, p model.Person) (model.Person, error) {
	if err := p.Validate(); err != nil {
		return model.Person{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rosters[rosterID]
	if !ok {
		return model.Person{}, fmt.Errorf("%w: %s", ErrNotFound, rosterID)
	}
	p.ID = r.nextPersonID
	r.nextPersonID++
	stored := p
	r.people = append(r.people, &stored)
	return p, nil
}

func (s *MemoryStore) UpdatePerson(_ context.Context, rosterID string, p model.Person) (model.Person, error) {
	if err := p.Validate(); err != nil {
		return model.Person{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rosters[rosterID]
	if !ok {
		return model.Person{}, fmt.Errorf("%w: %s", ErrNotFound, rosterID)
	}
	i := r.indexOf(p.ID)
	if i < 0 {
		return model.Person{}, fmt.Errorf("%w: %d", ErrPersonNotFound, p.ID)
	}
	stored := p
	r.people[i] = &stored
	return p, nil
}

func (s *MemoryStore) DeletePerson(_ context.Context, rosterID string, personID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rosters[rosterID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, rosterID)
	}
	i := r.indexOf(personID)
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrPersonNotFound, personID)
	}
	r.people = slices.Delete(r.people, i, i+1)
	return nil
}

func (s *MemoryStore) SaveDraw(_ context.Context, rosterID string, d model.Draw) (model.Draw, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rosters[rosterID]
	if !ok {
		return model.Draw{}, fmt.Errorf("%w: %s", ErrNotFound, rosterID)
	}
	if err := r.checkDraw(d); err != nil {
		return model.Draw{}, err
	}

	saved := copyDraw(d)
	saved.Date = s.now()
	id, err := ulid.New(ulid.Timestamp(saved.Date), s.entropy)
	if err != nil {
		return model.Draw{}, fmt.Errorf("draw id: %w", err)
	}
	saved.ID = id.String()
	saved.RosterID = rosterID
	for i := range saved.Groups {
		if saved.Groups[i].ID == "" {
			saved.Groups[i].ID = s.newID()
		}
	}
	r.draws = append(r.draws, saved)
	return copyDraw(saved), nil
}

func (s *MemoryStore) Draws(_ context.Context, rosterID string) ([]model.Draw, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rosters[rosterID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, rosterID)
	}
	return copyDraws(r.draws), nil
}

func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rosters)
}

// nameTaken must be called with s.mu held.
func (s *MemoryStore) nameTaken(name, exceptID string) bool {
	for id, r := range s.rosters {
		if id != exceptID && strings.EqualFold(r.name, name) {
			return true
		}
	}
	return false
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name must not be empty", ErrInvalidName)
	}
	return name, nil
}

func (r *roster) indexOf(personID int) int {
	return slices.IndexFunc(r.people, func(p *model.Person) bool { return p.ID == personID })
}

// checkDraw rejects empty draws, unknown people and people placed twice.
func (r *roster) checkDraw(d model.Draw) error {
	if len(d.Groups) == 0 {
		return fmt.Errorf("%w: no groups", ErrInvalidDraw)
	}
	placed := make(map[int]struct{}, len(r.people))
	for _, g := range d.Groups {
		for _, p := range g.People {
			if p == nil {
				return fmt.Errorf("%w: group %q has an empty slot", ErrInvalidDraw, g.Name)
			}
			if r.indexOf(p.ID) < 0 {
				return fmt.Errorf("%w: person %d is not in the roster", ErrInvalidDraw, p.ID)
			}
			if _, dup := placed[p.ID]; dup {
				return fmt.Errorf("%w: person %d placed twice", ErrInvalidDraw, p.ID)
			}
			placed[p.ID] = struct{}{}
		}
	}
	return nil
}

func (r *roster) snapshot() Roster {
	return Roster{
		ID:     r.id,
		Name:   r.name,
		People: copyPeople(r.people),
		Draws:  copyDraws(r.draws),
	}
}

func copyPeople(people []*model.Person) []*model.Person {
	out := make([]*model.Person, len(people))
	for i, p := range people {
		c := *p
		out[i] = &c
	}
	return out
}

func copyDraw(d model.Draw) model.Draw {
	groups := make([]model.Group, len(d.Groups))
	for i, g := range d.Groups {
		groups[i] = model.Group{ID: g.ID, Name: g.Name, People: copyPeople(g.People)}
	}
	d.Groups = groups
	return d
}

func copyDraws(draws []model.Draw) []model.Draw {
	out := make([]model.Draw, len(draws))
	for i, d := range draws {
		out[i] = copyDraw(d)
	}
	return out
}
