package service

import "errors"

// Sentinel error kinds returned by the Service.
var (
	ErrDuplicateDraw = errors.New("draw already saved for this idempotency key")
)
