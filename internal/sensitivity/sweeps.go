package sensitivity

import "buyrent-sim/internal/model"

// Sweep is a named two-axis sensitivity table definition.
type Sweep struct {
	ID    string
	Title string
	Row   Axis
	Col   Axis
}

// ReferenceSweeps returns the three tables from the reference report,
// with its exact axis ranges:
//   - A) mortgage rate (cols, 3.0-6.0% step 0.5pp) x investment return (rows, 4-10% step 1pp)
//   - B) home appreciation (cols, 0.0-5.0% step 0.5pp) x investment return (rows)
//   - C) rent yield (cols, 3.0-6.0% step 0.5pp) x mortgage rate (rows)
func ReferenceSweeps() []Sweep {
	mortgage := RangeAxis(model.FieldMortgageRate, 0.03, 0.06, 0.005, PercentLabel)
	invest := RangeAxis(model.FieldInvestReturn, 0.04, 0.10, 0.01, PercentLabel)
	appreciation := RangeAxis(model.FieldAppreciation, 0.00, 0.05, 0.005, PercentLabel)
	rentYield := RangeAxis(model.FieldRentYield, 0.03, 0.06, 0.005, PercentLabel)

	return []Sweep{
		{
			ID:    "mortgage_x_investment",
			Title: "Mortgage Rate (%) x Investment Return (%)",
			Row:   invest,
			Col:   mortgage,
		},
		{
			ID:    "appreciation_x_investment",
			Title: "Property Appreciation (%) x Investment Return (%)",
			Row:   invest,
			Col:   appreciation,
		},
		{
			ID:    "rent_yield_x_mortgage",
			Title: "Rent Yield (%) x Mortgage Rate (%)",
			Row:   mortgage,
			Col:   rentYield,
		},
	}
}
