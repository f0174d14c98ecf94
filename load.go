package btowntickets

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ImAKappa/btowntickets/reader"
	"github.com/ImAKappa/btowntickets/table"
)

var (
	// ErrMissingColumn is returned when a delimited text file lacks
	// one of the required dataset columns.
	ErrMissingColumn = errors.New("required column missing")

	// ErrUnsupportedFormat is returned for paths whose format is not
	// csv or parquet.
	ErrUnsupportedFormat = errors.New("file format not supported")
)

// Loader loads a dataset from a file on disk into a Table.
type Loader interface {
	Load() (*table.Table, error)
}

// LoadProcess executes a load with the concrete loader chosen at
// construction time, so calling code depends on one entry point
// regardless of the on-disk format.
type LoadProcess struct {
	loader Loader
}

func NewLoadProcess(l Loader) *LoadProcess {
	return &LoadProcess{loader: l}
}

// Run invokes the configured loader and returns its result unchanged.
func (p *LoadProcess) Run() (*table.Table, error) {
	return p.loader.Load()
}

// Request describes a dataset load.
type Request struct {
	// Input path.
	Path string

	// File format, "csv" or "parquet". Detected from the path
	// extension when empty.
	Format string

	// Compression of delimited text input, "gzip" or "bzip2".
	// Detected from the path extension when empty.
	Compression string

	// CSV delimiter. Defaults to a comma.
	Delimiter string
}

// Load selects a loader for the request and runs it.
func Load(r *Request) (*table.Table, error) {
	format, compression := reader.DetectType(r.Path)

	if r.Format != "" {
		format = r.Format
	}
	if r.Compression != "" {
		compression = r.Compression
	}

	var l Loader

	switch format {
	case "csv":
		delim := ','
		if r.Delimiter != "" {
			runes := []rune(r.Delimiter)
			if len(runes) != 1 {
				return nil, fmt.Errorf("invalid csv delimiter %q: must be a single character", r.Delimiter)
			}
			delim = runes[0]
		}

		l = &CSVLoader{
			Path:        r.Path,
			Delimiter:   delim,
			Compression: compression,
		}

	case "parquet":
		l = &ParquetLoader{Path: r.Path}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	slog.Debug("loading dataset", "path", r.Path, "format", format)

	t, err := NewLoadProcess(l).Run()
	if err != nil {
		return nil, err
	}

	slog.Debug("load complete", "path", r.Path, "rows", t.NumRows(), "columns", t.NumCols())

	return t, nil
}
