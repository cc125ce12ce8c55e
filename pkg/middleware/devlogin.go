package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// FarmerID resolves the requesting farmer from a cookie, minting a dev
// identity when none is present. Real account management lives outside
// this service.
func FarmerID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie("FARMER_ID"); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				if q := c.QueryParam("uid"); q != "" {
					uid = q
				} else {
					uid = "F-" + uuid.NewString()[:8]
				}
				c.SetCookie(&http.Cookie{Name: "FARMER_ID", Value: uid, Path: "/"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
