package roster

import (
	"context"
	"errors"
)

// ErrInvalidIndex reports a positional address outside [0, Len).
// Operations that fail with it leave the store unchanged.
var ErrInvalidIndex = errors.New("invalid roster index")

// Repository describes roster storage needs from use cases. The stored
// sequence keeps insertion order; filter methods return fresh slices and
// never reorder what is stored.
type Repository interface {
	Add(ctx context.Context, rec PlayerRecord) (int, error)
	Get(ctx context.Context, index int) (PlayerRecord, error)
	Update(ctx context.Context, index int, patch FieldPatch) (PlayerRecord, error)
	Remove(ctx context.Context, index int) error
	List(ctx context.Context) ([]PlayerRecord, error)
	Len(ctx context.Context) (int, error)
	ListByTeam(ctx context.Context, team string) ([]PlayerRecord, error)
	ListByGoalRange(ctx context.Context, minGoals, maxGoals int, ascending bool) ([]PlayerRecord, error)
	ReplaceAll(ctx context.Context, recs []PlayerRecord) error
}
