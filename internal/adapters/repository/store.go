// Package repository holds rosters, their people and their saved draws.
package repository

import (
	"context"

	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/model"
)

// Roster is a named list of people together with the draws made from it.
type Roster struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	People []*model.Person `json:"people"`
	Draws  []model.Draw    `json:"draws"`
}

// Store provides read/write access to rosters. Every value it returns is a
// copy; mutating it never changes stored state.
type Store interface {
	// CreateRoster adds an empty roster. Names are unique, compared
	// case-insensitively; a clash returns ErrDuplicateName.
	CreateRoster(ctx context.Context, name string) (Roster, error)
	RenameRoster(ctx context.Context, id, name string) (Roster, error)
	DeleteRoster(ctx context.Context, id string) error

	// ListRosters returns all rosters ordered by name.
	ListRosters(ctx context.Context) []Roster

	// GetRoster returns ErrNotFound if the roster is unknown.
	GetRoster(ctx context.Context, id string) (Roster, error)

	// AddPerson validates p, assigns it the roster's next person id and
	// stores it. The id field of p is ignored.
	AddPerson(ctx context.Context, rosterID string, p model.Person) (model.Person, error)
	// UpdatePerson replaces the person with p.ID.
	UpdatePerson(ctx context.Context, rosterID string, p model.Person) (model.Person, error)
	DeletePerson(ctx context.Context, rosterID string, personID int) error

	// SaveDraw persists d against the roster, assigning the final draw id,
	// the timestamp and the roster id. Every person in d must belong to the
	// roster and appear once.
	SaveDraw(ctx context.Context, rosterID string, d model.Draw) (model.Draw, error)
	// Draws returns the roster's draws, oldest first.
	Draws(ctx context.Context, rosterID string) ([]model.Draw, error)

	// Count returns the number of rosters.
	Count(ctx context.Context) int
}
