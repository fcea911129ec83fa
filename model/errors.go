package model

import "github.com/pkg/errors"

// Error kinds reported by grid construction and cell access. Callers match
// them with errors.Is; the wrapped message carries the offending values.
var (
	ErrInvalidDimension = errors.New("grid dimensions must be at least 1x1")
	ErrOutOfBounds      = errors.New("coordinate outside grid bounds")
)
