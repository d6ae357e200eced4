package handlers

import (
	"net/http"

	"buyrent-sim/internal/api/models"
	"buyrent-sim/internal/model"
	"buyrent-sim/internal/scenario"

	"github.com/gin-gonic/gin"
)

// ScenarioHandler handles single-scenario evaluation requests
type ScenarioHandler struct {
	eval *scenario.Evaluator
}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler() *ScenarioHandler {
	return &ScenarioHandler{eval: scenario.New()}
}

// Evaluate handles POST /api/v1/scenario
func (h *ScenarioHandler) Evaluate(c *gin.Context) {
	var req models.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	res, err := h.eval.Evaluate(toModelParams(req.Params))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PARAMS",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.ScenarioResponse{
		Status: "completed",
		Result: buildResult(res),
	})
}

func toModelParams(p models.ScenarioParams) model.ScenarioParams {
	return model.ScenarioParams{
		HousePrice:             p.HousePrice,
		DownPaymentFraction:    p.DownPayment,
		MortgageAnnualRate:     p.MortgageRate,
		TermYears:              p.TermYears,
		RentYieldAnnual:        p.RentYield,
		InvestmentAnnualReturn: p.InvestmentReturn,
		HomeAppreciationAnnual: p.HomeAppreciation,
	}
}

func buildResult(r model.ScenarioResult) models.ScenarioResult {
	return models.ScenarioResult{
		BuyWealth:  r.BuyWealth,
		RentWealth: r.RentWealth,
		Difference: r.Difference,
		Verdict:    string(model.VerdictFromDifference(r.Difference)),
	}
}
