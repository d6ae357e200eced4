package sensitivity

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteGridCSV writes a grid as CSV: the header row carries the column
// labels, the first column carries the row labels. Cells are raw
// differences with two decimals so the file round-trips numerically;
// currency formatting stays in the presentation layer.
func WriteGridCSV(path string, g *Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := make([]string, 0, len(g.Col.Points)+1)
	header = append(header, g.Row.Field+"/"+g.Col.Field)
	for _, p := range g.Col.Points {
		header = append(header, p.Label)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, rp := range g.Row.Points {
		row := make([]string, 0, len(g.Col.Points)+1)
		row = append(row, rp.Label)
		for j := range g.Col.Points {
			row = append(row, fmtFloat(g.Cells[i][j]))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
