package sensitivity

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"buyrent-sim/internal/model"
)

func TestWriteGridCSV(t *testing.T) {
	runner := NewRunner(nil)
	row := ValuesAxis(model.FieldMortgageRate, []float64{0.03, 0.05}, PercentLabel)
	col := ValuesAxis(model.FieldInvestReturn, []float64{0.04, 0.06, 0.08}, PercentLabel)
	g, err := runner.BuildGrid(baseParams(), row, col)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "grid.csv")
	if err := WriteGridCSV(path, g); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}
	if len(records[0]) != 4 {
		t.Fatalf("expected 4 columns, got %d", len(records[0]))
	}
	if records[0][1] != "4%" || records[1][0] != "3%" {
		t.Errorf("labels misplaced: header=%v first-row=%v", records[0], records[1])
	}
}
