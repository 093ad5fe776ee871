package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

// Directory is the read-only view of users the matcher consumes.
// Returned users carry their offered and wanted skills with attributes populated.
type Directory interface {
	GetUser(ctx context.Context, id uuid.UUID) (User, error)
	ListUsers(ctx context.Context, excludeID uuid.UUID) ([]User, error)
}

// SnapshotDirectory runs fn against a Directory bound to one consistent
// point-in-time view of the data.
type SnapshotDirectory interface {
	Snapshot(ctx context.Context, fn func(ctx context.Context, dir Directory) error) error
}
