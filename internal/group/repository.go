package group

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a development group record is not found.
var ErrNotFound = errors.New("development group not found")

// Repository provides operations on the development_groups table. Groups are
// only ever created and listed; updates and deletes are out of scope.
type Repository interface {
	Create(ctx context.Context, g *Group) error
	List(ctx context.Context) ([]Group, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
