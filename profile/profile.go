// Package profile computes missing-value reports over loaded tables.
package profile

import (
	"math"

	"github.com/ImAKappa/btowntickets/table"
)

// Report column names.
const (
	ColName  = "Column"
	ColCount = "Null Count"
	ColPct   = "Null Pct"
)

// Nulls profiles the null values in a table. The report has one row
// per input column, in input column order, with the column name, the
// null count, and the null fraction of the total row count.
//
// For a zero-row input the fraction is undefined and reported as NaN.
func Nulls(t *table.Table) *table.Table {
	names := table.NewColumn(ColName, table.String)
	counts := table.NewColumn(ColCount, table.Int)
	pcts := table.NewColumn(ColPct, table.Float)

	rows := t.NumRows()

	for _, c := range t.Columns() {
		names.AppendString(c.Name())

		n := c.NullCount()
		counts.AppendInt(n)

		if rows == 0 {
			pcts.AppendFloat(math.NaN())
		} else {
			pcts.AppendFloat(float64(n) / float64(rows))
		}
	}

	return table.New(names, counts, pcts)
}
