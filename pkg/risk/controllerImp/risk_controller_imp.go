package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agroclimate/entities"
	fieldrepo "agroclimate/pkg/field/repository"
	"agroclimate/pkg/risk/service"
)

type RiskCtrl struct {
	svc    service.RiskService
	fields fieldrepo.FieldRepository
}

func New(svc service.RiskService, fields fieldrepo.FieldRepository) *RiskCtrl {
	return &RiskCtrl{svc: svc, fields: fields}
}

func (h *RiskCtrl) Calculate(c echo.Context) error {
	uid := c.Get("uid").(string)
	fid, _ := strconv.Atoi(c.Param("id"))
	months, _ := strconv.Atoi(c.QueryParam("months"))

	f, err := h.fields.FindByID(uint(fid), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "field not found"})
	}

	score, err := h.svc.Calculate(c.Request().Context(), uid, f.FieldID, f.Location(), months)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidLocation) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, score)
}
