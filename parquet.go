package btowntickets

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/ImAKappa/btowntickets/table"
)

// ParquetLoader loads a dataset from a Parquet file. The file's
// embedded schema is authoritative: every column is read as stored,
// with no selection or coercion.
type ParquetLoader struct {
	// Input path.
	Path string
}

func (l *ParquetLoader) Load() (*table.Table, error) {
	file, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get file stats: %w", err)
	}

	pf, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	fields := pf.Schema().Fields()
	cols := make([]*table.Column, len(fields))
	for i, f := range fields {
		// Kind() panics on group nodes.
		if !f.Leaf() {
			return nil, fmt.Errorf("column %s: nested parquet groups are not supported", f.Name())
		}

		cols[i] = table.NewColumn(f.Name(), parquetType(f))
	}

	rows := parquet.NewReader(pf)
	defer rows.Close()

	for {
		row := make(map[string]interface{})

		err := rows.Read(&row)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read parquet row: %w", err)
		}

		for i, f := range fields {
			v, ok := row[f.Name()]
			if !ok {
				cols[i].AppendNull()
				continue
			}

			if err := cols[i].AppendValue(v); err != nil {
				return nil, err
			}
		}
	}

	return table.New(cols...), nil
}

// parquetType maps a leaf schema field to a column type by its
// physical kind.
func parquetType(f parquet.Field) table.Type {
	switch f.Type().Kind() {
	case parquet.Boolean:
		return table.Bool
	case parquet.Int32, parquet.Int64:
		return table.Int
	case parquet.Float, parquet.Double:
		return table.Float
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return table.String
	}

	return table.Unknown
}
