package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/player-roster/internal/domain/roster"
	"github.com/riskibarqy/player-roster/internal/infrastructure/codec"
	"github.com/riskibarqy/player-roster/internal/usecase"
)

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

// renderIndexedRoster prints records with their store index so edit/delete
// prompts have something to reference.
func (s *Session) renderIndexedRoster(records []roster.PlayerRecord) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = fmt.Fprintf(buf, "%-6s %-24s %-18s %6s %8s\n", "Index", "Name", "Team", "Goals", "Assists")
	_, _ = buf.WriteString(strings.Repeat("-", 66))
	_ = buf.WriteByte('\n')
	for i, rec := range records {
		_, _ = fmt.Fprintf(buf, "%-6d %-24s %-18s %6d %8d\n", i, rec.Name, rec.Team, rec.Goals, rec.Assists)
	}

	_, _ = s.out.Write(buf.B)
}

// renderPlayers prints filtered records without indexes; filtered positions
// do not match store indexes.
func (s *Session) renderPlayers(records []roster.PlayerRecord) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, rec := range records {
		_, _ = fmt.Fprintf(buf, "Name: %s, Team: %s, Goals: %d, Assists: %d\n",
			rec.Name, rec.Team, rec.Goals, rec.Assists)
	}

	_, _ = s.out.Write(buf.B)
}

func describeError(err error) string {
	switch {
	case errors.Is(err, roster.ErrInvalidIndex):
		return "Invalid index."
	case errors.Is(err, usecase.ErrNotFound):
		return "File not found."
	case errors.Is(err, codec.ErrFormat):
		return fmt.Sprintf("Error: %v. Roster left unchanged.", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return fmt.Sprintf("Error: %v. Please enter valid input.", err)
	default:
		return "Something went wrong. Please try again."
	}
}
