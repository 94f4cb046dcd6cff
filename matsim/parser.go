package matsim

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/fwrock/htc-convert-insterscsimulator/internal/logging"
)

// Parser reads MATSim XML inputs. Skipped records are counted on the
// warning aggregator; per-record detail goes to the debug log.
type Parser struct {
	log   *zap.Logger
	warns *logging.WarningAggregator
}

// NewParser returns a Parser logging through log and recording
// data-quality warnings on warns.
func NewParser(log *zap.Logger, warns *logging.WarningAggregator) *Parser {
	return &Parser{log: log, warns: warns}
}

// openInput opens path, transparently decompressing .gz files. The caller
// closes the returned reader.
func openInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &gzipReadCloser{zr: zr, f: f}, nil
}

// gzipReadCloser closes the gzip stream and the file behind it.
type gzipReadCloser struct {
	zr *gzip.Reader
	f  *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) { return g.zr.Read(p) }

func (g *gzipReadCloser) Close() error {
	if err := g.zr.Close(); err != nil {
		g.f.Close()
		return err
	}
	return g.f.Close()
}
