package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/player-roster/internal/config"
	"github.com/riskibarqy/player-roster/internal/platform/logging"
	"github.com/riskibarqy/player-roster/internal/usecase"
)

// errInputClosed reports that the operator closed stdin; the session ends
// without treating it as a failure.
var errInputClosed = errors.New("console input closed")

// Session drives the interactive roster menu over a line-based reader and
// writer pair.
type Session struct {
	service      *usecase.RosterService
	rosterPath   string
	snapshotPath string
	scanner      *bufio.Scanner
	out          io.Writer
	logger       *logging.Logger
	validator    *validator.Validate
}

func NewSession(
	service *usecase.RosterService,
	cfg config.Config,
	in io.Reader,
	out io.Writer,
	logger *logging.Logger,
) *Session {
	if logger == nil {
		logger = logging.Default()
	}

	return &Session{
		service:      service,
		rosterPath:   cfg.RosterFile,
		snapshotPath: cfg.SnapshotFile,
		scanner:      bufio.NewScanner(in),
		out:          out,
		logger:       logger,
		validator:    validator.New(),
	}
}

// Run shows the menu and handles choices until the operator exits, stdin
// closes, or ctx is cancelled. Operation failures are reported on the
// console and never end the session.
func (s *Session) Run(ctx context.Context) error {
	s.logger.InfoContext(ctx, "console session started")
	defer s.logger.InfoContext(ctx, "console session ended")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		choice, err := s.promptLine("Enter your choice: ")
		if errors.Is(err, errInputClosed) {
			s.printf("\n")
			return nil
		}
		if err != nil {
			return err
		}

		if choice == "0" {
			s.printf("Exiting...\n")
			return nil
		}

		if err := s.dispatch(ctx, choice); err != nil {
			if errors.Is(err, errInputClosed) {
				s.printf("\n")
				return nil
			}
			s.logger.WarnContext(ctx, "console operation failed", "choice", choice, "error", err)
			s.printf("%s\n", describeError(err))
		}
	}
}

func (s *Session) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		return s.addPlayer(ctx)
	case "2":
		return s.editPlayer(ctx)
	case "3":
		return s.deletePlayer(ctx)
	case "4":
		return s.displayAllPlayers(ctx)
	case "5":
		return s.showSummary(ctx)
	case "6":
		return s.filterByTeam(ctx)
	case "7":
		return s.filterByGoalRange(ctx)
	case "8":
		return s.saveRoster(ctx)
	case "9":
		return s.loadRoster(ctx)
	case "10":
		return s.exportSnapshot(ctx)
	case "11":
		return s.importSnapshot(ctx)
	default:
		s.printf("Invalid choice. Please try again.\n")
		return nil
	}
}

func (s *Session) printMenu() {
	s.printf("%s\n", strings.Repeat("-", 66))
	s.printf("Menu:\n")
	s.printf(" 1. Add Player\n")
	s.printf(" 2. Edit Player\n")
	s.printf(" 3. Delete Player\n")
	s.printf(" 4. Display All Players\n")
	s.printf(" 5. Average Goals and Median Assists\n")
	s.printf(" 6. Filter by Team\n")
	s.printf(" 7. Filter by Goal Range\n")
	s.printf(" 8. Save Players to CSV\n")
	s.printf(" 9. Load Players from CSV\n")
	s.printf("10. Export Snapshot (JSON)\n")
	s.printf("11. Import Snapshot (JSON)\n")
	s.printf(" 0. Exit\n")
}

func (s *Session) promptLine(label string) (string, error) {
	s.printf("%s", label)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errInputClosed
	}

	return strings.TrimSpace(s.scanner.Text()), nil
}

func (s *Session) promptInt(label string) (int, error) {
	raw, err := s.promptLine(label)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", usecase.ErrInvalidInput, raw)
	}

	return value, nil
}

// promptOptionalInt returns nil when the operator leaves the field blank.
func (s *Session) promptOptionalInt(label string) (*int, error) {
	raw, err := s.promptLine(label)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a whole number", usecase.ErrInvalidInput, raw)
	}

	return &value, nil
}
