package table

import "errors"

// Sentinel errors returned by the engine.
var (
	ErrInvalidPageSize = errors.New("table: page size must be positive")
	ErrUnknownColumn   = errors.New("table: unknown column")
	ErrUnknownEvent    = errors.New("table: unknown event")
)
