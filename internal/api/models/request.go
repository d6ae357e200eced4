package models

// ScenarioParams is the request-side shape of the seven comparison inputs.
// Rates are annual fractions (0.04 == 4%). Binding rejects out-of-range
// values before they reach the core.
type ScenarioParams struct {
	HousePrice       float64 `json:"house_price" binding:"required,gt=0"`
	DownPayment      float64 `json:"down_payment" binding:"gte=0,lt=1"`
	MortgageRate     float64 `json:"mortgage_rate" binding:"gte=0"`
	TermYears        int     `json:"term_years" binding:"required,gt=0"`
	RentYield        float64 `json:"rent_yield" binding:"gte=0"`
	InvestmentReturn float64 `json:"investment_return" binding:"gte=0"`
	HomeAppreciation float64 `json:"home_appreciation" binding:"gte=0"`
}

// EvaluateRequest is the body of POST /api/v1/scenario.
type EvaluateRequest struct {
	Params ScenarioParams `json:"params" binding:"required"`
}

// GridRequest is the body of POST /api/v1/scenario/grid: a generic
// two-axis sweep around the supplied base parameters.
type GridRequest struct {
	Params ScenarioParams `json:"params" binding:"required"`
	Row    AxisSpec       `json:"row" binding:"required"`
	Col    AxisSpec       `json:"col" binding:"required"`
}

// AxisSpec selects one parameter field and the values to sweep it over.
// Values are used in the order given; no sorting or deduplication.
type AxisSpec struct {
	Field  string    `json:"field" binding:"required"`
	Values []float64 `json:"values" binding:"required,min=1"`
}

// ReferenceGridsRequest is the body of POST /api/v1/scenario/grids:
// the three reference sensitivity tables around the supplied base.
type ReferenceGridsRequest struct {
	Params ScenarioParams `json:"params" binding:"required"`
}
