package codec

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/player-roster/internal/domain/roster"
)

// tabularHeader is the fixed column layout of the roster CSV format.
// Order and names are part of the contract.
var tabularHeader = []string{"Name", "Team", "Goals", "Assists"}

// TabularCodec reads and writes the comma-separated roster file format:
// one exact header row, then one row per record in stored order.
type TabularCodec struct{}

func NewTabularCodec() *TabularCodec {
	return &TabularCodec{}
}

func (c *TabularCodec) Write(_ context.Context, w io.Writer, recs []roster.PlayerRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(tabularHeader); err != nil {
		return crerr.Wrap(err, "write header row")
	}
	for _, rec := range recs {
		row := []string{rec.Name, rec.Team, strconv.Itoa(rec.Goals), strconv.Itoa(rec.Assists)}
		if err := cw.Write(row); err != nil {
			return crerr.Wrap(err, "write record row")
		}
	}
	cw.Flush()

	return crerr.Wrap(cw.Error(), "flush rows")
}

// Read parses the full input before returning anything, so a malformed
// file never yields a partial sequence.
func (c *TabularCodec) Read(_ context.Context, r io.Reader) ([]roster.PlayerRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrFormat)
	}
	if err := validateTabularHeader(rows[0]); err != nil {
		return nil, err
	}

	out := make([]roster.PlayerRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2
		if len(row) != len(tabularHeader) {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d", ErrFormat, line, len(row), len(tabularHeader))
		}

		goals, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: Goals %q is not an integer", ErrFormat, line, row[2])
		}
		assists, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: Assists %q is not an integer", ErrFormat, line, row[3])
		}

		out = append(out, roster.PlayerRecord{
			Name:    row[0],
			Team:    row[1],
			Goals:   goals,
			Assists: assists,
		})
	}

	return out, nil
}

// WriteFile replaces the destination wholesale; it never appends.
func (c *TabularCodec) WriteFile(ctx context.Context, path string, recs []roster.PlayerRecord) error {
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

func (c *TabularCodec) ReadFile(ctx context.Context, path string) ([]roster.PlayerRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, crerr.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	return c.Read(ctx, f)
}

func validateTabularHeader(row []string) error {
	if len(row) != len(tabularHeader) {
		return fmt.Errorf("%w: header has %d columns, want %d", ErrFormat, len(row), len(tabularHeader))
	}
	for i, name := range tabularHeader {
		if row[i] != name {
			return fmt.Errorf("%w: header column %d is %q, want %q", ErrFormat, i+1, row[i], name)
		}
	}

	return nil
}
