package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agroclimate/entities"
	"agroclimate/pkg/diversify"
	fieldrepo "agroclimate/pkg/field/repository"
	riskservice "agroclimate/pkg/risk/service"
	"agroclimate/pkg/season"
)

type DiversifyCtrl struct {
	planner diversify.Planner
	risk    riskservice.RiskService
	fields  fieldrepo.FieldRepository
}

func New(planner diversify.Planner, risk riskservice.RiskService, fields fieldrepo.FieldRepository) *DiversifyCtrl {
	return &DiversifyCtrl{planner: planner, risk: risk, fields: fields}
}

// Plan handles GET /fields/:id/diversification?area=
func (h *DiversifyCtrl) Plan(c echo.Context) error {
	uid := c.Get("uid").(string)
	fid, _ := strconv.Atoi(c.Param("id"))
	f, err := h.fields.FindByID(uint(fid), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "field not found"})
	}

	area := f.AreaHa
	if v := c.QueryParam("area"); v != "" {
		if a, err := strconv.ParseFloat(v, 64); err == nil {
			area = a
		}
	}

	score, err := h.risk.Calculate(c.Request().Context(), uid, f.FieldID, f.Location(), 3)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidLocation) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	plan, err := h.planner.Plan(score.RiskLevel, area, f.PrimaryCrop, season.RegionOf(f.Location()))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	plan.FarmerID = uid
	plan.FieldID = f.FieldID
	return c.JSON(http.StatusOK, plan)
}
