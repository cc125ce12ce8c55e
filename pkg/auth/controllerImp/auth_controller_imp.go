package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type AuthCtrl struct{}

func New() *AuthCtrl { return &AuthCtrl{} }

func (h *AuthCtrl) DevLogin(c echo.Context) error {
	uid := c.QueryParam("uid")
	if uid == "" {
		uid = "F-DEV-DEFAULT"
	}
	c.SetCookie(&http.Cookie{Name: "FARMER_ID", Value: uid, Path: "/"})
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}

func (h *AuthCtrl) WhoAmI(c echo.Context) error {
	v := c.Get("uid")
	uid, _ := v.(string)
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}
