package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/riskibarqy/player-roster/internal/config"
	"github.com/riskibarqy/player-roster/internal/platform/logging"
)

func TestNewConsoleSession_RunsUntilExit(t *testing.T) {
	cfg := config.Config{RosterFile: "roster.csv", SnapshotFile: "roster.json"}
	out := &bytes.Buffer{}

	session := NewConsoleSession(cfg, strings.NewReader("0\n"), out, logging.NewNop())
	if session == nil {
		t.Fatal("expected a wired session")
	}

	if err := session.Run(t.Context()); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Exiting.") {
		t.Fatalf("expected exit message, got:\n%s", out.String())
	}
}
