package controllerImp

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"agroclimate/entities"
	repo "agroclimate/pkg/storage/repository"
)

type StorageCtrl struct{ repo repo.StorageRepository }

func New(repo repo.StorageRepository) *StorageCtrl { return &StorageCtrl{repo} }

type sensorReq struct {
	Label string `json:"label"`
}

func (h *StorageCtrl) RegisterSensor(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req sensorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	s := &entities.StorageSensor{SensorID: uuid.NewString(), FarmerID: uid, Label: req.Label}
	if err := h.repo.CreateSensor(s); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, s)
}

type readingReq struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Timestamp   string  `json:"timestamp"`
}

func (h *StorageCtrl) SubmitReading(c echo.Context) error {
	sensorID := c.Param("id")
	var req readingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	ts := time.Now()
	if req.Timestamp != "" {
		if t, err := time.Parse(time.RFC3339, req.Timestamp); err == nil {
			ts = t
		}
	}
	rd := &entities.StorageReading{SensorID: sensorID, Temperature: req.Temperature, Humidity: req.Humidity, Timestamp: ts}
	if err := h.repo.AddReading(rd); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rd)
}

func (h *StorageCtrl) Latest(c echo.Context) error {
	rd, err := h.repo.LatestReading(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no readings"})
	}
	return c.JSON(http.StatusOK, rd)
}
