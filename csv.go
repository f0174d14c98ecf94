package btowntickets

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/ImAKappa/btowntickets/reader"
	"github.com/ImAKappa/btowntickets/table"
)

// The parking ticket dataset columns and their declared types. Every
// column must be present in the file header; anything else in the
// file is ignored. The loaded table uses this order.
var ticketColumns = []struct {
	Name string
	Type table.Type
}{
	{"X", table.Float},
	{"Y", table.Float},
	{"OBJECTID", table.Int},
	{"ADDRESS", table.String},
	{"LICSTATEPROV", table.Categorical},
	{"VIODESCRIPTION", table.Categorical},
	{"VIOFINE", table.Float},
	{"VOIDSTATUS", table.Categorical},
	{"ISSUEDATE", table.Time},
	{"ISSUETIME", table.Time},
}

// CSVLoader loads the parking ticket dataset from a delimited text
// file with a header row.
type CSVLoader struct {
	// Input path.
	Path string

	// Field delimiter. Defaults to a comma.
	Delimiter rune

	// Compression of the input, "gzip" or "bzip2". Detected from the
	// path extension when empty.
	Compression string
}

func (l *CSVLoader) Load() (*table.Table, error) {
	in, err := reader.Open(l.Path, l.Compression)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	cr := csv.NewReader(in)
	if l.Delimiter != 0 {
		cr.Comma = l.Delimiter
	}

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: missing header row", l.Path)
	}
	if err != nil {
		return nil, err
	}

	// Positions of the file's columns by name.
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[name] = i
	}

	fields := make([]int, len(ticketColumns))
	cols := make([]*table.Column, len(ticketColumns))

	for i, tc := range ticketColumns {
		idx, ok := pos[tc.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, tc.Name)
		}

		fields[i] = idx
		cols[i] = table.NewColumn(tc.Name, tc.Type)
	}

	line := 1

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv.ParseError, already positioned.
			return nil, err
		}

		line++

		for i := range ticketColumns {
			if err := appendCell(cols[i], record[fields[i]], line); err != nil {
				return nil, err
			}
		}
	}

	return table.New(cols...), nil
}

// appendCell coerces one raw cell into its column. Empty cells are
// null for every type. Non-numeric cells in numeric columns become
// null rather than an error; an unparseable date or time cell is an
// error.
func appendCell(c *table.Column, raw string, line int) error {
	if raw == "" {
		c.AppendNull()
		return nil
	}

	switch c.Type() {
	case table.Float:
		if v, ok := table.ParseFloat(raw); ok {
			c.AppendFloat(v)
		} else {
			c.AppendNull()
		}

	case table.Int:
		if v, ok := table.ParseInt(raw); ok {
			c.AppendInt(v)
		} else {
			c.AppendNull()
		}

	case table.String, table.Categorical:
		c.AppendString(raw)

	case table.Time:
		v, ok := parseTemporal(raw)
		if !ok {
			return fmt.Errorf("line %d: column %s: cannot parse %q as a date or time", line, c.Name(), raw)
		}
		c.AppendTime(v)

	default:
		return fmt.Errorf("line %d: column %s: unsupported type %s", line, c.Name(), c.Type())
	}

	return nil
}

// parseTemporal accepts a datetime, a bare date, or a bare time of
// day, in that order of preference.
func parseTemporal(raw string) (time.Time, bool) {
	if v, ok := table.ParseDateTime(raw); ok {
		return v, true
	}

	if v, ok := table.ParseDate(raw); ok {
		return v, true
	}

	return table.ParseTime(raw)
}
