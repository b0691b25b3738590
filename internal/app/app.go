package app

import (
	"io"

	"github.com/riskibarqy/player-roster/internal/config"
	"github.com/riskibarqy/player-roster/internal/infrastructure/codec"
	"github.com/riskibarqy/player-roster/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/player-roster/internal/interfaces/console"
	"github.com/riskibarqy/player-roster/internal/platform/logging"
	"github.com/riskibarqy/player-roster/internal/usecase"
)

// NewConsoleSession wires the in-memory roster store, the CSV and snapshot
// codecs and the roster service into an interactive session reading from in
// and writing to out.
func NewConsoleSession(cfg config.Config, in io.Reader, out io.Writer, logger *logging.Logger) *console.Session {
	repo := memory.NewRosterRepository()
	service := usecase.NewRosterService(
		repo,
		codec.NewTabularCodec(),
		codec.NewSnapshotCodec(),
		logger,
	)

	return console.NewSession(service, cfg, in, out, logger)
}
