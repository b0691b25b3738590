package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/riskibarqy/player-roster/internal/domain/roster"
	"github.com/riskibarqy/player-roster/internal/platform/logging"
)

// RosterCodec turns the player sequence into a file representation and
// back. Read implementations return the full sequence or an error, never
// a partial one.
type RosterCodec interface {
	WriteFile(ctx context.Context, path string, recs []roster.PlayerRecord) error
	ReadFile(ctx context.Context, path string) ([]roster.PlayerRecord, error)
}

type RosterService struct {
	repo     roster.Repository
	tabular  RosterCodec
	snapshot RosterCodec
	logger   *logging.Logger
}

func NewRosterService(
	repo roster.Repository,
	tabular RosterCodec,
	snapshot RosterCodec,
	logger *logging.Logger,
) *RosterService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RosterService{
		repo:     repo,
		tabular:  tabular,
		snapshot: snapshot,
		logger:   logger,
	}
}

type AddPlayerInput struct {
	Name    string
	Team    string
	Goals   int
	Assists int
}

// UpdatePlayerInput mirrors the patch rules: empty text keeps the stored
// value, nil numerics keep the stored value, zero applies.
type UpdatePlayerInput struct {
	Name    string
	Team    string
	Goals   *int
	Assists *int
}

type RosterSummary struct {
	PlayerCount   int
	AverageGoals  float64
	MedianAssists float64
}

func (s *RosterService) AddPlayer(ctx context.Context, input AddPlayerInput) (roster.PlayerRecord, int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.AddPlayer")
	defer span.End()

	if strings.TrimSpace(input.Name) == "" {
		return roster.PlayerRecord{}, 0, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if input.Goals < 0 {
		return roster.PlayerRecord{}, 0, fmt.Errorf("%w: goals cannot be negative", ErrInvalidInput)
	}
	if input.Assists < 0 {
		return roster.PlayerRecord{}, 0, fmt.Errorf("%w: assists cannot be negative", ErrInvalidInput)
	}

	rec := roster.PlayerRecord{
		Name:    input.Name,
		Team:    input.Team,
		Goals:   input.Goals,
		Assists: input.Assists,
	}
	index, err := s.repo.Add(ctx, rec)
	if err != nil {
		return roster.PlayerRecord{}, 0, fmt.Errorf("add player: %w", err)
	}

	s.logger.InfoContext(ctx, "player added", "index", index, "name", rec.Name, "team", rec.Team)

	return rec, index, nil
}

func (s *RosterService) UpdatePlayer(ctx context.Context, index int, input UpdatePlayerInput) (roster.PlayerRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.UpdatePlayer")
	defer span.End()

	if input.Goals != nil && *input.Goals < 0 {
		return roster.PlayerRecord{}, fmt.Errorf("%w: goals cannot be negative", ErrInvalidInput)
	}
	if input.Assists != nil && *input.Assists < 0 {
		return roster.PlayerRecord{}, fmt.Errorf("%w: assists cannot be negative", ErrInvalidInput)
	}

	patch := roster.FieldPatch{
		Name:    input.Name,
		Team:    input.Team,
		Goals:   input.Goals,
		Assists: input.Assists,
	}
	updated, err := s.repo.Update(ctx, index, patch)
	if err != nil {
		return roster.PlayerRecord{}, fmt.Errorf("update player: %w", err)
	}

	s.logger.InfoContext(ctx, "player updated", "index", index, "name", updated.Name)

	return updated, nil
}

func (s *RosterService) RemovePlayer(ctx context.Context, index int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.RemovePlayer")
	defer span.End()

	if err := s.repo.Remove(ctx, index); err != nil {
		return fmt.Errorf("remove player: %w", err)
	}

	s.logger.InfoContext(ctx, "player removed", "index", index)

	return nil
}

func (s *RosterService) PlayerAt(ctx context.Context, index int) (roster.PlayerRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.PlayerAt")
	defer span.End()

	rec, err := s.repo.Get(ctx, index)
	if err != nil {
		return roster.PlayerRecord{}, fmt.Errorf("get player: %w", err)
	}

	return rec, nil
}

func (s *RosterService) ListPlayers(ctx context.Context) ([]roster.PlayerRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListPlayers")
	defer span.End()

	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return records, nil
}

// Summary reports the roster size with mean goals and median assists.
// Both statistics are defined as 0.0 for an empty roster.
func (s *RosterService) Summary(ctx context.Context) (RosterSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Summary")
	defer span.End()

	records, err := s.repo.List(ctx)
	if err != nil {
		return RosterSummary{}, fmt.Errorf("list players: %w", err)
	}

	totalGoals := 0
	assists := make([]int, 0, len(records))
	for _, rec := range records {
		totalGoals += rec.Goals
		assists = append(assists, rec.Assists)
	}

	averageGoals := 0.0
	if len(records) > 0 {
		averageGoals = float64(totalGoals) / float64(len(records))
	}

	return RosterSummary{
		PlayerCount:   len(records),
		AverageGoals:  averageGoals,
		MedianAssists: medianOfInts(assists),
	}, nil
}

func (s *RosterService) PlayersByTeam(ctx context.Context, team string) ([]roster.PlayerRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.PlayersByTeam")
	defer span.End()

	records, err := s.repo.ListByTeam(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}

	return records, nil
}

func (s *RosterService) PlayersByGoalRange(ctx context.Context, minGoals, maxGoals int, ascending bool) ([]roster.PlayerRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.PlayersByGoalRange")
	defer span.End()

	records, err := s.repo.ListByGoalRange(ctx, minGoals, maxGoals, ascending)
	if err != nil {
		return nil, fmt.Errorf("list players by goal range: %w", err)
	}

	return records, nil
}

func (s *RosterService) SaveRoster(ctx context.Context, path string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.SaveRoster")
	defer span.End()

	return s.writeWith(ctx, s.tabular, path, "roster saved")
}

// LoadRoster replaces the full roster with the file contents. A read
// failure leaves the previous contents in place.
func (s *RosterService) LoadRoster(ctx context.Context, path string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.LoadRoster")
	defer span.End()

	return s.readWith(ctx, s.tabular, path, "roster loaded")
}

func (s *RosterService) ExportSnapshot(ctx context.Context, path string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ExportSnapshot")
	defer span.End()

	return s.writeWith(ctx, s.snapshot, path, "snapshot exported")
}

func (s *RosterService) ImportSnapshot(ctx context.Context, path string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ImportSnapshot")
	defer span.End()

	return s.readWith(ctx, s.snapshot, path, "snapshot imported")
}

func (s *RosterService) writeWith(ctx context.Context, codec RosterCodec, path, event string) (int, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return 0, fmt.Errorf("%w: file path is required", ErrInvalidInput)
	}

	records, err := s.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list players: %w", err)
	}
	if err := codec.WriteFile(ctx, path, records); err != nil {
		return 0, fmt.Errorf("write roster file: %w", err)
	}

	s.logger.InfoContext(ctx, event, "path", path, "players", len(records))

	return len(records), nil
}

func (s *RosterService) readWith(ctx context.Context, codec RosterCodec, path, event string) (int, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return 0, fmt.Errorf("%w: file path is required", ErrInvalidInput)
	}

	records, err := codec.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return 0, fmt.Errorf("read roster file: %w", err)
	}

	if err := s.repo.ReplaceAll(ctx, records); err != nil {
		return 0, fmt.Errorf("replace roster: %w", err)
	}

	s.logger.InfoContext(ctx, event, "path", path, "players", len(records))

	return len(records), nil
}

func medianOfInts(values []int) float64 {
	if len(values) == 0 {
		return 0.0
	}

	sorted := append([]int(nil), values...)
	sort.Ints(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}

	return float64(sorted[mid-1]+sorted[mid]) / 2.0
}
