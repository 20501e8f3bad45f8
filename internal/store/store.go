// Package store keeps finished simulation runs so they can be fetched, exported and
// classified after the simulate call returns.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"hydraulic-press-sim/internal/analysis"
	"hydraulic-press-sim/internal/model"
)

var ErrNotFound = errors.New("run not found")

// Run is a stored simulation: the inputs it was run with, the series and its summary.
type Run struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name,omitempty"`
	Inputs    model.Inputs            `json:"inputs"`
	Result    *model.SimulationResult `json:"result"`
	Summary   analysis.Summary        `json:"summary"`
	CreatedAt time.Time               `json:"created_at"`
}

type Store interface {
	// Save assigns an ID if the run has none and returns it.
	Save(ctx context.Context, r *Run) (string, error)
	Get(ctx context.Context, id string) (*Run, error)
}

func prepare(r *Run, now time.Time) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now.UTC()
	}
}
