package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"agroclimate/entities"
	"agroclimate/pkg/diversify"
	fieldrepo "agroclimate/pkg/field/repository"
	harvestservice "agroclimate/pkg/harvest/service"
	plantingrepo "agroclimate/pkg/planting/repository"
	plantingservice "agroclimate/pkg/planting/service"
	riskservice "agroclimate/pkg/risk/service"
	"agroclimate/pkg/season"
)

// AdvisoryCtrl is the thin aggregation layer: it bundles the engines'
// outputs for one field into a single payload. Each section is
// best-effort; a missing section never fails the whole advisory.
type AdvisoryCtrl struct {
	fields    fieldrepo.FieldRepository
	risk      riskservice.RiskService
	planting  plantingservice.PlantingService
	plantings plantingrepo.PlantingRepository
	planner   diversify.Planner
	harvest   harvestservice.HarvestService
}

func New(fields fieldrepo.FieldRepository, risk riskservice.RiskService, planting plantingservice.PlantingService, plantings plantingrepo.PlantingRepository, planner diversify.Planner, harvest harvestservice.HarvestService) *AdvisoryCtrl {
	return &AdvisoryCtrl{fields: fields, risk: risk, planting: planting, plantings: plantings, planner: planner, harvest: harvest}
}

type bundle struct {
	Field           *entities.Field               `json:"field"`
	Risk            *entities.ClimateRiskScore    `json:"risk,omitempty"`
	PlantingStatus  *entities.PlantingStatus      `json:"planting_status,omitempty"`
	Diversification *entities.DiversificationPlan `json:"diversification,omitempty"`
	Harvest         *entities.HarvestPrediction   `json:"harvest,omitempty"`
	Gaps            []string                      `json:"gaps,omitempty"`
}

func (h *AdvisoryCtrl) Bundle(c echo.Context) error {
	uid := c.Get("uid").(string)
	fid, _ := strconv.Atoi(c.Param("id"))
	f, err := h.fields.FindByID(uint(fid), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "field not found"})
	}

	ctx := c.Request().Context()
	out := &bundle{Field: f}

	score, err := h.risk.Calculate(ctx, uid, f.FieldID, f.Location(), 3)
	if err != nil {
		out.Gaps = append(out.Gaps, "risk: "+err.Error())
	} else {
		out.Risk = score
	}

	if f.PrimaryCrop != "" {
		if st, err := h.planting.CheckStatus(ctx, uid, f.FieldID, f.PrimaryCrop, f.Location(), time.Now()); err == nil {
			out.PlantingStatus = st
		} else {
			out.Gaps = append(out.Gaps, "planting: "+err.Error())
		}
	}

	if score != nil {
		if plan, err := h.planner.Plan(score.RiskLevel, f.AreaHa, f.PrimaryCrop, season.RegionOf(f.Location())); err == nil {
			plan.FarmerID = uid
			plan.FieldID = f.FieldID
			out.Diversification = plan
		}
	}

	if rec, err := h.plantings.LatestByField(uid, f.FieldID); err == nil {
		if pred, err := h.harvest.Predict(ctx, rec, f.Location(), c.QueryParam("sensor")); err == nil {
			out.Harvest = pred
		} else {
			out.Gaps = append(out.Gaps, "harvest: "+err.Error())
		}
	} else {
		out.Gaps = append(out.Gaps, "harvest: no planting recorded")
	}

	return c.JSON(http.StatusOK, out)
}
