package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"agroclimate/entities"
	repo "agroclimate/pkg/observation/repository"
)

type ObservationCtrl struct{ repo repo.ObservationRepository }

func New(repo repo.ObservationRepository) *ObservationCtrl { return &ObservationCtrl{repo} }

type rainReq struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Amount string  `json:"amount"`
}

func (h *ObservationCtrl) SubmitRain(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req rainReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	loc := entities.Location{Lat: req.Lat, Lon: req.Lon}
	if !loc.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": entities.ErrInvalidLocation.Error()})
	}
	amount := entities.RainAmount(req.Amount)
	if _, ok := amount.Intensity(); !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "amount must be none|light|moderate|heavy"})
	}
	rep := &entities.RainReport{FarmerID: uid, Lat: req.Lat, Lon: req.Lon, Amount: amount, Timestamp: time.Now()}
	if err := h.repo.RecordRain(rep); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rep)
}

type soilReq struct {
	MoistureLevel string `json:"moisture_level"`
}

func (h *ObservationCtrl) SubmitSoil(c echo.Context) error {
	uid := c.Get("uid").(string)
	fid, _ := strconv.Atoi(c.Param("id"))
	var req soilReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	state := entities.MoistState(req.MoistureLevel)
	smi, ok := state.SMI()
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "moisture_level must be dry|damp|saturated"})
	}
	rep := &entities.SoilMoistureReport{FarmerID: uid, FieldID: uint(fid), MoistState: state, SMI: smi, Timestamp: time.Now()}
	if err := h.repo.RecordSoil(rep); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rep)
}
