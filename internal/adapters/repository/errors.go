package repository

import (
	"errors"

	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/model"
)

// Sentinel kinds for roster store errors.
var (
	ErrNotFound       = errors.New("roster not found")
	ErrDuplicateName  = errors.New("roster name already in use")
	ErrInvalidName    = errors.New("invalid roster name")
	ErrPersonNotFound = errors.New("person not found")
	ErrInvalidDraw    = errors.New("invalid draw")

	// ErrInvalidPerson is the model's validation kind, re-exported so
	// callers of the store need not import model to match it.
	ErrInvalidPerson = model.ErrInvalidPerson
)
