package btowntickets

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImAKappa/btowntickets/table"
)

type stubLoader struct {
	t   *table.Table
	err error
}

func (s *stubLoader) Load() (*table.Table, error) {
	return s.t, s.err
}

func TestLoadProcessRun(t *testing.T) {
	want := table.New(table.NewColumn("A", table.Int))

	got, err := NewLoadProcess(&stubLoader{t: want}).Run()
	require.NoError(t, err)

	// A single direct delegation, nothing added.
	assert.Same(t, want, got)
}

func TestLoadProcessRunError(t *testing.T) {
	boom := errors.New("boom")

	got, err := NewLoadProcess(&stubLoader{err: boom}).Run()
	assert.Nil(t, got)
	assert.Same(t, boom, err)
}

func TestLoadDetectsCSV(t *testing.T) {
	path := writeFile(t, "tickets.csv", ticketCSV)

	loaded, err := Load(&Request{Path: path})
	require.NoError(t, err)

	assert.Equal(t, 3, loaded.NumRows())
	assert.Equal(t, 10, loaded.NumCols())
}

func TestLoadDetectsParquet(t *testing.T) {
	path := writeParquet(t, []ticketRecord{{1, "overtime"}})

	loaded, err := Load(&Request{Path: path})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, loaded.Names())
}

func TestLoadFormatOverride(t *testing.T) {
	// An extensionless file still loads when the format is given.
	path := writeFile(t, "tickets", ticketCSV)

	loaded, err := Load(&Request{Path: path, Format: "csv"})
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.NumRows())
}

func TestLoadDelimiter(t *testing.T) {
	path := writeFile(t, "tickets.csv", `X;Y;OBJECTID;ADDRESS;LICSTATEPROV;VIODESCRIPTION;VIOFINE;VOIDSTATUS;ISSUEDATE;ISSUETIME
-86.5;39.1;1;100 N Walnut St;IN;OVERTIME PARKING;10.0;;2019-04-02;14:35
`)

	loaded, err := Load(&Request{Path: path, Delimiter: ";"})
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.NumRows())
}

func TestLoadInvalidDelimiter(t *testing.T) {
	path := writeFile(t, "tickets.csv", ticketCSV)

	_, err := Load(&Request{Path: path, Delimiter: "||"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delimiter")
}

func TestLoadUnsupportedFormat(t *testing.T) {
	_, err := Load(&Request{Path: "tickets.txt"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}
