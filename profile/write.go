package profile

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/ImAKappa/btowntickets/table"
)

type reportRow struct {
	Column    string   `json:"column"`
	NullCount int64    `json:"null_count"`
	NullPct   *float64 `json:"null_pct"`
}

// WriteJSON encodes a null profile report as a JSON array. An
// undefined percentage (NaN) is encoded as null.
func WriteJSON(w io.Writer, report *table.Table) error {
	names := report.Column(ColName)
	counts := report.Column(ColCount)
	pcts := report.Column(ColPct)

	rows := make([]reportRow, 0, report.NumRows())

	for i := 0; i < report.NumRows(); i++ {
		row := reportRow{
			Column:    names.Str(i),
			NullCount: counts.Int(i),
		}

		if pct := pcts.Float(i); !math.IsNaN(pct) {
			row.NullPct = &pct
		}

		rows = append(rows, row)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// WriteText renders a null profile report as an aligned text table.
func WriteText(w io.Writer, report *table.Table) error {
	names := report.Column(ColName)
	counts := report.Column(ColCount)
	pcts := report.Column(ColPct)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n", ColName, ColCount, ColPct)

	for i := 0; i < report.NumRows(); i++ {
		fmt.Fprintf(tw, "%s\t%d\t%.4f\n", names.Str(i), counts.Int(i), pcts.Float(i))
	}

	return tw.Flush()
}
