// Package run provides the Run aggregate tracking the processing of one
// input file, with guarded state transitions and an in-memory repository so
// a multi-input invocation can report per-input outcomes.
package run

import (
	"errors"
	"sync"
	"time"

	"github.com/nobucshirai/silencecut/internal/run/id"
)

// Status represents the current state of a Run.
type Status string

const (
	// StatusPending indicates the run has been created but not started.
	StatusPending Status = "PENDING"
	// StatusRunning indicates the input is being processed.
	StatusRunning Status = "RUNNING"
	// StatusCompleted indicates the run finished successfully.
	StatusCompleted Status = "COMPLETED"
	// StatusFailed indicates the run encountered a fatal error.
	StatusFailed Status = "FAILED"
)

// ErrInvalidTransition is returned when an invalid state transition is attempted.
var ErrInvalidTransition = errors.New("invalid state transition")

// validTransitions defines which state transitions are allowed.
var validTransitions = map[Status][]Status{
	StatusPending:   {StatusRunning, StatusFailed},
	StatusRunning:   {StatusCompleted, StatusFailed},
	StatusCompleted: {},
	StatusFailed:    {},
}

// canTransition checks if a transition from one status to another is valid.
func canTransition(from, to Status) bool {
	allowed, ok := validTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// Run tracks the processing of a single input file end to end.
type Run struct {
	mu sync.RWMutex

	// ID is the unique identifier for this run.
	ID string
	// Input is the path to the source media file.
	Input string
	// Output is the path where the cleaned artifact is written.
	Output string
	// Status is the current run state.
	Status Status
	// Intervals is the number of silence intervals excised.
	Intervals int
	// UploadURL is the S3 URL of the output, when uploaded.
	UploadURL string
	// Error contains the failure message if the run failed.
	Error string

	// CreatedAt is when the run was created.
	CreatedAt time.Time
	// StartedAt is when processing started.
	StartedAt time.Time
	// CompletedAt is when processing finished, successfully or not.
	CompletedAt time.Time
}

// New creates a Run for the given input in PENDING state with a generated ID.
func New(input string) *Run {
	return &Run{
		ID:        id.Generate(),
		Input:     input,
		Status:    StatusPending,
		CreatedAt: time.Now(),
	}
}

// TransitionTo attempts to change the run status to the specified state.
// Returns ErrInvalidTransition if the transition is not allowed.
func (r *Run) TransitionTo(status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !canTransition(r.Status, status) {
		return ErrInvalidTransition
	}

	r.Status = status
	now := time.Now()
	switch status {
	case StatusRunning:
		r.StartedAt = now
	case StatusCompleted, StatusFailed:
		r.CompletedAt = now
	}

	return nil
}

// Start transitions the run from PENDING to RUNNING.
func (r *Run) Start() error {
	return r.TransitionTo(StatusRunning)
}

// Complete transitions the run to COMPLETED.
func (r *Run) Complete() error {
	return r.TransitionTo(StatusCompleted)
}

// Fail transitions the run to FAILED with an error message.
func (r *Run) Fail(errMsg string) error {
	r.mu.Lock()
	r.Error = errMsg
	r.mu.Unlock()
	return r.TransitionTo(StatusFailed)
}

// GetStatus returns the current run status (thread-safe).
func (r *Run) GetStatus() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.Status
}

// Clone returns a copy of the run safe to hand outside the repository.
func (r *Run) Clone() *Run {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return &Run{
		ID:          r.ID,
		Input:       r.Input,
		Output:      r.Output,
		Status:      r.Status,
		Intervals:   r.Intervals,
		UploadURL:   r.UploadURL,
		Error:       r.Error,
		CreatedAt:   r.CreatedAt,
		StartedAt:   r.StartedAt,
		CompletedAt: r.CompletedAt,
	}
}
