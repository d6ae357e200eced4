package models

// ScenarioResponse is the response of POST /api/v1/scenario.
type ScenarioResponse struct {
	Status string         `json:"status"`
	Result ScenarioResult `json:"result"`
}

// ScenarioResult contains the wealth comparison outcome.
type ScenarioResult struct {
	BuyWealth  float64 `json:"buy_wealth"`
	RentWealth float64 `json:"rent_wealth"`
	Difference float64 `json:"difference"` // buy minus rent; positive means buying leads
	Verdict    string  `json:"verdict"`    // "BUYING", "RENTING", "EVEN"
}

// GridResponse is the response of POST /api/v1/scenario/grid.
type GridResponse struct {
	Status string `json:"status"`
	Grid   Grid   `json:"grid"`
}

// Grid is a rendered sensitivity table. Cells[row][col] holds the
// buy-minus-rent difference for that parameter combination.
type Grid struct {
	RowField  string      `json:"row_field"`
	ColField  string      `json:"col_field"`
	RowLabels []string    `json:"row_labels"`
	ColLabels []string    `json:"col_labels"`
	RowValues []float64   `json:"row_values"`
	ColValues []float64   `json:"col_values"`
	Cells     [][]float64 `json:"cells"`
}

// ReferenceGridsResponse is the response of POST /api/v1/scenario/grids.
type ReferenceGridsResponse struct {
	Status string      `json:"status"`
	Grids  []NamedGrid `json:"grids"`
}

// NamedGrid is one of the reference sensitivity tables.
type NamedGrid struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Grid  Grid   `json:"grid"`
}

// ParametersResponse is the response of GET /api/v1/parameters.
type ParametersResponse struct {
	Parameters []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes one scenario input for UI construction:
// suggested control bounds plus the reference default.
type ParameterInfo struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"` // "float", "int"
	Description string  `json:"description"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Default     float64 `json:"default"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
