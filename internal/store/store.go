// Package store persists animation sessions and status checks. The default
// implementation is backed by BadgerDB; an in-memory mode exists for tests.
package store

import (
	"context"
	"errors"

	"github.com/veerakarthick235/Voice-to-3D-Face-Animation-Generator/internal/model"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("store: not found")

// Store is the persistence interface used by the HTTP handlers.
type Store interface {
	// PutSession stores an animation session record.
	PutSession(ctx context.Context, s model.AnimationSession) error

	// GetSession retrieves a session by ID, frames included. Returns
	// ErrNotFound if no such session exists.
	GetSession(ctx context.Context, id string) (model.AnimationSession, error)

	// RecentSessions returns up to limit sessions, newest first, with the
	// frame payload stripped.
	RecentSessions(ctx context.Context, limit int) ([]model.AnimationSession, error)

	// PutStatus stores a status check.
	PutStatus(ctx context.Context, c model.StatusCheck) error

	// ListStatus returns up to limit status checks in insertion order.
	ListStatus(ctx context.Context, limit int) ([]model.StatusCheck, error)

	// Close releases the underlying database.
	Close() error
}
