// Package store keeps named, saved calculations
package store

import (
	"context"
	"errors"
	"time"

	"github.com/rgehrsitz/fvgo/internal/domain"
)

// ErrNotFound is returned when no record has the requested id
var ErrNotFound = errors.New("calculation not found")

// Record is one saved calculation
type Record struct {
	ID        string        `json:"id"`
	Kind      domain.Kind   `json:"kind"`
	Name      string        `json:"name"`
	Timestamp time.Time     `json:"timestamp"`
	Inputs    domain.Input  `json:"inputs"`
	Result    domain.Result `json:"result"`
}

// Store persists saved calculations
type Store interface {
	Save(ctx context.Context, name string, in domain.Input, res domain.Result) (*Record, error)
	List(ctx context.Context) ([]Record, error)
	Get(ctx context.Context, id string) (*Record, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	Close() error
}
