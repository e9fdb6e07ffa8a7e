package meeting

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a meeting record is not found.
var ErrNotFound = errors.New("meeting not found")

// ErrGroupNotFound is returned when a meeting references a development group
// that does not exist.
var ErrGroupNotFound = errors.New("development group not found")

// ErrOverlap is returned when a meeting's time interval intersects another
// meeting of the same development group.
var ErrOverlap = errors.New("meeting time conflicts with existing meeting")

// Repository provides CRUD operations on the meetings table.
type Repository interface {
	ListByGroup(ctx context.Context, groupID int64) ([]Meeting, error)
	Create(ctx context.Context, m *Meeting) error
	Update(ctx context.Context, m *Meeting) error
	Delete(ctx context.Context, id int64) error
}
