package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"agroclimate/entities"
	fieldrepo "agroclimate/pkg/field/repository"
	harvestservice "agroclimate/pkg/harvest/service"
	"agroclimate/pkg/planting/repository"
	"agroclimate/pkg/planting/service"
)

type PlantingCtrl struct {
	svc     service.PlantingService
	repo    repository.PlantingRepository
	fields  fieldrepo.FieldRepository
	harvest harvestservice.HarvestService
}

func New(svc service.PlantingService, repo repository.PlantingRepository, fields fieldrepo.FieldRepository, harvest harvestservice.HarvestService) *PlantingCtrl {
	return &PlantingCtrl{svc: svc, repo: repo, fields: fields, harvest: harvest}
}

// Window handles GET /planting/window?crop=&lat=&lon=
func (h *PlantingCtrl) Window(c echo.Context) error {
	crop := c.QueryParam("crop")
	if crop == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "crop is required"})
	}
	lat, _ := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lon, _ := strconv.ParseFloat(c.QueryParam("lon"), 64)
	w, err := h.svc.Window(crop, entities.Location{Lat: lat, Lon: lon}, time.Now())
	if err != nil {
		if errors.Is(err, entities.ErrInvalidLocation) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, w)
}

// Status handles GET /fields/:id/planting/status?crop=
func (h *PlantingCtrl) Status(c echo.Context) error {
	uid := c.Get("uid").(string)
	fid, _ := strconv.Atoi(c.Param("id"))
	f, err := h.fields.FindByID(uint(fid), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "field not found"})
	}
	crop := c.QueryParam("crop")
	if crop == "" {
		crop = f.PrimaryCrop
	}
	if crop == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "crop is required"})
	}
	st, err := h.svc.CheckStatus(c.Request().Context(), uid, f.FieldID, crop, f.Location(), time.Now())
	if err != nil {
		if errors.Is(err, entities.ErrInvalidLocation) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, st)
}

type recordReq struct {
	Crop         string  `json:"crop"`
	Variety      string  `json:"variety"`
	PlantingDate string  `json:"planting_date"`
	AreaHa       float64 `json:"area_ha"`
}

// Record handles POST /fields/:id/plantings
func (h *PlantingCtrl) Record(c echo.Context) error {
	uid := c.Get("uid").(string)
	fid, _ := strconv.Atoi(c.Param("id"))
	if _, err := h.fields.FindByID(uint(fid), uid); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "field not found"})
	}
	var req recordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	pd := time.Now()
	if req.PlantingDate != "" {
		d, err := time.Parse("2006-01-02", req.PlantingDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "planting_date must be YYYY-MM-DD"})
		}
		pd = d
	}
	p := &entities.PlantingRecord{FarmerID: uid, FieldID: uint(fid), Crop: req.Crop, Variety: req.Variety, PlantingDate: pd, AreaHa: req.AreaHa}
	if err := h.svc.Record(p); err != nil {
		if errors.Is(err, entities.ErrInconsistentPlantingRecord) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

// List handles GET /fields/:id/plantings?active=true
func (h *PlantingCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	fid, _ := strconv.Atoi(c.Param("id"))
	if c.QueryParam("active") == "true" {
		out, err := h.repo.ActiveByField(uid, uint(fid), time.Now(), h.harvest.MaturityDays)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, out)
	}
	out, err := h.repo.ListByField(uid, uint(fid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
