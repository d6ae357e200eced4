package handlers

import (
	"net/http"

	"buyrent-sim/internal/api/models"
	"buyrent-sim/internal/config"
	"buyrent-sim/internal/model"

	"github.com/gin-gonic/gin"
)

// ParamsHandler serves parameter metadata for UI construction
type ParamsHandler struct{}

// NewParamsHandler creates a new parameters handler
func NewParamsHandler() *ParamsHandler {
	return &ParamsHandler{}
}

// ListParameters handles GET /api/v1/parameters. The bounds mirror the
// reference dashboard's input controls; defaults are the Kuala Lumpur
// base case.
func (h *ParamsHandler) ListParameters(c *gin.Context) {
	def := config.Default()
	parameters := []models.ParameterInfo{
		{
			Name:        model.FieldHousePrice,
			Type:        "float",
			Description: "House price in currency units",
			Min:         100000,
			Max:         5000000,
			Default:     def.HousePrice,
		},
		{
			Name:        model.FieldDownPayment,
			Type:        "float",
			Description: "Down payment as a fraction of house price",
			Min:         0,
			Max:         0.9,
			Default:     def.DownPayment,
		},
		{
			Name:        model.FieldMortgageRate,
			Type:        "float",
			Description: "Annual mortgage rate (0.04 == 4%)",
			Min:         0,
			Max:         0.10,
			Default:     def.MortgageRate,
		},
		{
			Name:        model.FieldTermYears,
			Type:        "int",
			Description: "Loan term and comparison horizon in years",
			Min:         5,
			Max:         40,
			Default:     float64(def.TermYears),
		},
		{
			Name:        model.FieldRentYield,
			Type:        "float",
			Description: "Annual rent as a fraction of house price",
			Min:         0,
			Max:         0.10,
			Default:     def.RentYield,
		},
		{
			Name:        model.FieldInvestReturn,
			Type:        "float",
			Description: "Annual return on invested capital",
			Min:         0,
			Max:         0.15,
			Default:     def.InvestmentReturn,
		},
		{
			Name:        model.FieldAppreciation,
			Type:        "float",
			Description: "Annual home price appreciation",
			Min:         0,
			Max:         0.10,
			Default:     def.HomeAppreciation,
		},
	}

	c.JSON(http.StatusOK, models.ParametersResponse{Parameters: parameters})
}
