package handlers

import (
	"net/http"

	"buyrent-sim/internal/api/models"
	"buyrent-sim/internal/sensitivity"

	"github.com/gin-gonic/gin"
)

// GridHandler handles sensitivity-grid requests
type GridHandler struct {
	runner *sensitivity.Runner
}

// NewGridHandler creates a new grid handler
func NewGridHandler() *GridHandler {
	return &GridHandler{runner: sensitivity.NewRunner(nil)}
}

// BuildGrid handles POST /api/v1/scenario/grid
func (h *GridHandler) BuildGrid(c *gin.Context) {
	var req models.GridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	row := sensitivity.ValuesAxis(req.Row.Field, req.Row.Values, sensitivity.LabelFor(req.Row.Field))
	col := sensitivity.ValuesAxis(req.Col.Field, req.Col.Values, sensitivity.LabelFor(req.Col.Field))

	g, err := h.runner.BuildGrid(toModelParams(req.Params), row, col)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "GRID_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.GridResponse{
		Status: "completed",
		Grid:   convertGrid(g),
	})
}

// ReferenceGrids handles POST /api/v1/scenario/grids: the three reference
// sensitivity tables computed around the supplied base parameters.
func (h *GridHandler) ReferenceGrids(c *gin.Context) {
	var req models.ReferenceGridsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	base := toModelParams(req.Params)
	grids := make([]models.NamedGrid, 0, 3)
	for _, sw := range sensitivity.ReferenceSweeps() {
		g, err := h.runner.BuildGrid(base, sw.Row, sw.Col)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "GRID_ERROR",
					Message: err.Error(),
					Details: map[string]interface{}{"sweep": sw.ID},
				},
			})
			return
		}
		grids = append(grids, models.NamedGrid{
			ID:    sw.ID,
			Title: sw.Title,
			Grid:  convertGrid(g),
		})
	}

	c.JSON(http.StatusOK, models.ReferenceGridsResponse{
		Status: "completed",
		Grids:  grids,
	})
}

func convertGrid(g *sensitivity.Grid) models.Grid {
	rowValues := make([]float64, len(g.Row.Points))
	for i, p := range g.Row.Points {
		rowValues[i] = p.Value
	}
	colValues := make([]float64, len(g.Col.Points))
	for i, p := range g.Col.Points {
		colValues[i] = p.Value
	}
	return models.Grid{
		RowField:  g.Row.Field,
		ColField:  g.Col.Field,
		RowLabels: g.RowLabels(),
		ColLabels: g.ColLabels(),
		RowValues: rowValues,
		ColValues: colValues,
		Cells:     g.Cells,
	}
}
