package domain

import "errors"

// Sentinel errors used across all layers.
var (
	ErrNotFound  = errors.New("not found")
	ErrEmptyLoad = errors.New("dataset produced no records")
)
