package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"agroclimate/entities"
	fieldrepo "agroclimate/pkg/field/repository"
	"agroclimate/pkg/harvest/service"
	plantingrepo "agroclimate/pkg/planting/repository"
)

type HarvestCtrl struct {
	svc       service.HarvestService
	fields    fieldrepo.FieldRepository
	plantings plantingrepo.PlantingRepository
}

func New(svc service.HarvestService, fields fieldrepo.FieldRepository, plantings plantingrepo.PlantingRepository) *HarvestCtrl {
	return &HarvestCtrl{svc: svc, fields: fields, plantings: plantings}
}

// Predict handles GET /fields/:id/harvest?sensor=&crop=&variety=&planting_date=
// Without explicit crop/date parameters the latest planting record is used.
func (h *HarvestCtrl) Predict(c echo.Context) error {
	uid := c.Get("uid").(string)
	fid, _ := strconv.Atoi(c.Param("id"))
	f, err := h.fields.FindByID(uint(fid), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "field not found"})
	}

	var rec *entities.PlantingRecord
	if d := c.QueryParam("planting_date"); d != "" {
		pd, err := time.Parse("2006-01-02", d)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "planting_date must be YYYY-MM-DD"})
		}
		rec = &entities.PlantingRecord{
			FarmerID:     uid,
			FieldID:      f.FieldID,
			Crop:         c.QueryParam("crop"),
			Variety:      c.QueryParam("variety"),
			PlantingDate: pd,
			AreaHa:       f.AreaHa,
		}
	} else {
		rec, err = h.plantings.LatestByField(uid, f.FieldID)
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "no planting recorded for this field"})
		}
	}

	pred, err := h.svc.Predict(c.Request().Context(), rec, f.Location(), c.QueryParam("sensor"))
	if err != nil {
		if errors.Is(err, entities.ErrInconsistentPlantingRecord) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, pred)
}
