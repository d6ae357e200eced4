package sensitivity

import (
	"errors"
	"fmt"

	"buyrent-sim/internal/model"
	"buyrent-sim/internal/scenario"
)

// AxisPoint is one swept value with its display label.
type AxisPoint struct {
	Label string
	Value float64
}

// Axis is an ordered set of values for one parameter field.
type Axis struct {
	Field  string
	Points []AxisPoint
}

// Grid holds the Difference (buy minus rent) for every row/col combination.
// Built fresh per request; never mutated in place.
type Grid struct {
	Row   Axis
	Col   Axis
	Cells [][]float64 // Cells[rowIdx][colIdx]
}

type Runner struct {
	eval *scenario.Evaluator
}

func NewRunner(eval *scenario.Evaluator) *Runner {
	if eval == nil {
		eval = scenario.New()
	}
	return &Runner{eval: eval}
}

// BuildGrid sweeps two parameter fields across the supplied axes, holding
// every other field at its base value. Axis order is preserved exactly as
// supplied; values are neither sorted nor deduplicated. An invalid
// parameter combination fails the whole build rather than writing a
// sentinel into the cell.
func (r *Runner) BuildGrid(base model.ScenarioParams, row, col Axis) (*Grid, error) {
	if row.Field == col.Field {
		return nil, fmt.Errorf("row and column axes select the same field %q", row.Field)
	}
	if len(row.Points) == 0 || len(col.Points) == 0 {
		return nil, errors.New("axes must have at least one point")
	}

	cells := make([][]float64, len(row.Points))
	for i, rp := range row.Points {
		cells[i] = make([]float64, len(col.Points))
		for j, cp := range col.Points {
			p, err := base.WithField(row.Field, rp.Value)
			if err != nil {
				return nil, err
			}
			p, err = p.WithField(col.Field, cp.Value)
			if err != nil {
				return nil, err
			}
			res, err := r.eval.Evaluate(p)
			if err != nil {
				return nil, fmt.Errorf("cell [%d][%d] (%s=%v, %s=%v): %w",
					i, j, row.Field, rp.Value, col.Field, cp.Value, err)
			}
			cells[i][j] = res.Difference
		}
	}

	return &Grid{Row: row, Col: col, Cells: cells}, nil
}

// RowLabels returns the row axis labels in order.
func (g *Grid) RowLabels() []string { return labels(g.Row) }

// ColLabels returns the column axis labels in order.
func (g *Grid) ColLabels() []string { return labels(g.Col) }

func labels(a Axis) []string {
	out := make([]string, len(a.Points))
	for i, p := range a.Points {
		out[i] = p.Label
	}
	return out
}
