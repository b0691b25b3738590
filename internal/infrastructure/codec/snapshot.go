package codec

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/player-roster/internal/domain/roster"
)

const snapshotVersion = 1

type snapshotEnvelope struct {
	Version    int              `json:"version"`
	SavedAtUTC string           `json:"saved_at_utc"`
	Players    []snapshotPlayer `json:"players"`
}

type snapshotPlayer struct {
	Name    string `json:"name"`
	Team    string `json:"team"`
	Goals   int    `json:"goals"`
	Assists int    `json:"assists"`
}

// SnapshotCodec reads and writes the versioned JSON roster snapshot.
// Readers reject any version other than the current one.
type SnapshotCodec struct {
	now func() time.Time
}

func NewSnapshotCodec() *SnapshotCodec {
	return &SnapshotCodec{now: time.Now}
}

func (c *SnapshotCodec) Write(_ context.Context, w io.Writer, recs []roster.PlayerRecord) error {
	env := snapshotEnvelope{
		Version:    snapshotVersion,
		SavedAtUTC: c.now().UTC().Format(time.RFC3339),
		Players:    make([]snapshotPlayer, 0, len(recs)),
	}
	for _, rec := range recs {
		env.Players = append(env.Players, snapshotPlayer{
			Name:    rec.Name,
			Team:    rec.Team,
			Goals:   rec.Goals,
			Assists: rec.Assists,
		})
	}

	if err := sonic.ConfigDefault.NewEncoder(w).Encode(env); err != nil {
		return crerr.Wrap(err, "encode snapshot")
	}

	return nil
}

func (c *SnapshotCodec) Read(_ context.Context, r io.Reader) ([]roster.PlayerRecord, error) {
	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, crerr.Wrap(err, "read snapshot")
	}

	var env snapshotEnvelope
	if err := sonic.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if env.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported snapshot version %d", ErrFormat, env.Version)
	}

	out := make([]roster.PlayerRecord, 0, len(env.Players))
	for _, p := range env.Players {
		out = append(out, roster.PlayerRecord{
			Name:    p.Name,
			Team:    p.Team,
			Goals:   p.Goals,
			Assists: p.Assists,
		})
	}

	return out, nil
}

func (c *SnapshotCodec) WriteFile(ctx context.Context, path string, recs []roster.PlayerRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return crerr.Wrapf(err, "create %s", path)
	}

	if err := c.Write(ctx, f, recs); err != nil {
		_ = f.Close()
		return err
	}

	return crerr.Wrapf(f.Close(), "close %s", path)
}

func (c *SnapshotCodec) ReadFile(ctx context.Context, path string) ([]roster.PlayerRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, crerr.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	return c.Read(ctx, f)
}
