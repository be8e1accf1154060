package playerfeed

import (
	"context"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/player-ingest/internal/domain/player"
	"github.com/riskibarqy/player-ingest/internal/platform/logging"
	"github.com/riskibarqy/player-ingest/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

// Numbers stay json.Number so integers and decimals are told apart later.
// Strings are copied because the read buffer goes back to the pool.
var feedAPI = sonic.Config{
	UseNumber:  true,
	CopyString: true,
}.Froze()

// Loader reads a player export: one JSON array of player objects.
type Loader struct {
	logger *logging.Logger
}

func NewLoader(logger *logging.Logger) *Loader {
	if logger == nil {
		logger = logging.Default()
	}
	return &Loader{logger: logger}
}

// Load reads and decodes the whole file before returning. Every failure is
// marked with usecase.ErrInputUnreadable.
func (l *Loader) Load(ctx context.Context, path string) ([]player.Record, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, crerr.Mark(crerr.New("player feed path is empty"), usecase.ErrInputUnreadable)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, crerr.Mark(crerr.Wrapf(err, "open player feed %s", path), usecase.ErrInputUnreadable)
	}
	defer file.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(file); err != nil {
		return nil, crerr.Mark(crerr.Wrapf(err, "read player feed %s", path), usecase.ErrInputUnreadable)
	}

	records, err := Decode(buf.B)
	if err != nil {
		return nil, crerr.Mark(crerr.Wrapf(err, "decode player feed %s", path), usecase.ErrInputUnreadable)
	}

	l.logger.InfoContext(ctx, "player feed loaded", "path", path, "bytes", buf.Len(), "records", len(records))
	return records, nil
}

// Decode parses a JSON array of player objects. A null element decodes to an
// empty record.
func Decode(data []byte) ([]player.Record, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, crerr.New("empty document")
	}

	var records []player.Record
	if err := feedAPI.Unmarshal(data, &records); err != nil {
		return nil, crerr.Wrap(err, "expected a JSON array of objects")
	}
	if records == nil {
		return nil, crerr.New("document is null, expected a JSON array")
	}
	return records, nil
}
