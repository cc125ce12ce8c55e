package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agroclimate/entities"
	"agroclimate/pkg/field/repository"
)

type FieldCtrl struct{ repo repository.FieldRepository }

func New(repo repository.FieldRepository) *FieldCtrl { return &FieldCtrl{repo} }

type createReq struct {
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	AreaHa      float64 `json:"area_ha"`
	PrimaryCrop string  `json:"primary_crop"`
	SoilTexture string  `json:"soil_texture"`
}

func (h *FieldCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	loc := entities.Location{Lat: req.Lat, Lon: req.Lon}
	if !loc.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": entities.ErrInvalidLocation.Error()})
	}
	if req.AreaHa <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "area_ha must be positive"})
	}
	f := &entities.Field{FarmerID: uid, Name: req.Name, Lat: req.Lat, Lon: req.Lon, AreaHa: req.AreaHa, PrimaryCrop: req.PrimaryCrop, SoilTexture: req.SoilTexture}
	if err := h.repo.Create(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FieldCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	f, err := h.repo.FindByID(uint(id), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	fs, err := h.repo.ListByFarmer(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, fs)
}
