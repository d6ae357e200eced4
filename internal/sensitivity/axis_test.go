package sensitivity

import (
	"math"
	"testing"

	"buyrent-sim/internal/model"
)

func TestRangeAxis_InclusiveStop(t *testing.T) {
	ax := RangeAxis(model.FieldMortgageRate, 0.03, 0.06, 0.005, PercentLabel)
	if len(ax.Points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(ax.Points))
	}
	last := ax.Points[len(ax.Points)-1]
	if math.Abs(last.Value-0.06) > 1e-9 {
		t.Fatalf("last value %v, want 0.06", last.Value)
	}
	if last.Label != "6%" {
		t.Fatalf("last label %q, want 6%%", last.Label)
	}
}

func TestRangeAxis_SinglePoint(t *testing.T) {
	ax := RangeAxis(model.FieldTermYears, 30, 30, 5, PlainLabel)
	if len(ax.Points) != 1 || ax.Points[0].Label != "30" {
		t.Fatalf("unexpected axis: %+v", ax.Points)
	}
}

func TestPercentLabel(t *testing.T) {
	cases := map[float64]string{
		0.045: "4.5%",
		0.05:  "5%",
		0.10:  "10%",
		0:     "0%",
	}
	for in, want := range cases {
		if got := PercentLabel(in); got != want {
			t.Errorf("PercentLabel(%v) = %q, want %q", in, got, want)
		}
	}
}
