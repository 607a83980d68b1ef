package model

import "errors"

// Sentinel error kinds for model validation.
var (
	ErrInvalidPerson    = errors.New("invalid person")
	ErrUnknownAttribute = errors.New("unknown attribute")
)
