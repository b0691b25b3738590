package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/player-roster/internal/domain/roster"
)

// RosterRepository keeps the ordered player sequence in process memory.
// It is the only storage backend; saving and loading go through codecs.
type RosterRepository struct {
	mu      sync.RWMutex
	records []roster.PlayerRecord
}

func NewRosterRepository() *RosterRepository {
	return &RosterRepository{}
}

func (r *RosterRepository) Add(_ context.Context, rec roster.PlayerRecord) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, rec)

	return len(r.records) - 1, nil
}

func (r *RosterRepository) Get(_ context.Context, index int) (roster.PlayerRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= len(r.records) {
		return roster.PlayerRecord{}, roster.ErrInvalidIndex
	}

	return r.records[index], nil
}

func (r *RosterRepository) Update(_ context.Context, index int, patch roster.FieldPatch) (roster.PlayerRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.records) {
		return roster.PlayerRecord{}, roster.ErrInvalidIndex
	}
	r.records[index] = patch.Apply(r.records[index])

	return r.records[index], nil
}

func (r *RosterRepository) Remove(_ context.Context, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.records) {
		return roster.ErrInvalidIndex
	}
	r.records = append(r.records[:index], r.records[index+1:]...)

	return nil
}

func (r *RosterRepository) List(_ context.Context) ([]roster.PlayerRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.PlayerRecord, 0, len(r.records))
	out = append(out, r.records...)

	return out, nil
}

func (r *RosterRepository) Len(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.records), nil
}

func (r *RosterRepository) ListByTeam(_ context.Context, team string) ([]roster.PlayerRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.PlayerRecord, 0)
	for _, rec := range r.records {
		if rec.Team == team {
			out = append(out, rec)
		}
	}

	return out, nil
}

func (r *RosterRepository) ListByGoalRange(_ context.Context, minGoals, maxGoals int, ascending bool) ([]roster.PlayerRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.PlayerRecord, 0)
	for _, rec := range r.records {
		if rec.Goals >= minGoals && rec.Goals <= maxGoals {
			out = append(out, rec)
		}
	}
	// Stable keeps tied records in their stored relative order.
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].Goals < out[j].Goals
		}
		return out[i].Goals > out[j].Goals
	})

	return out, nil
}

func (r *RosterRepository) ReplaceAll(_ context.Context, recs []roster.PlayerRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]roster.PlayerRecord, 0, len(recs))
	next = append(next, recs...)
	r.records = next

	return nil
}
