package run

import (
	"context"
	"errors"
)

// ErrRunNotFound is returned when a run cannot be found in the repository.
var ErrRunNotFound = errors.New("run not found")

// Repository defines persistence for runs.
type Repository interface {
	// Save persists a run.
	Save(ctx context.Context, r *Run) error

	// FindByID retrieves a run by its ID.
	// Returns ErrRunNotFound if no run exists with the given ID.
	FindByID(ctx context.Context, id string) (*Run, error)

	// List returns all runs in the repository.
	List(ctx context.Context) ([]*Run, error)
}
