package router

import (
	"github.com/labstack/echo/v4"

	"agroclimate/pkg/middleware"
)

func New(
	e *echo.Echo,
	fieldCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
	},
	obsCtrl interface {
		SubmitRain(echo.Context) error
		SubmitSoil(echo.Context) error
	},
	riskCalculate func(echo.Context) error,
	plantingCtrl interface {
		Window(echo.Context) error
		Status(echo.Context) error
		Record(echo.Context) error
		List(echo.Context) error
	},
	diversifyPlan func(echo.Context) error,
	harvestPredict func(echo.Context) error,
	storageCtrl interface {
		RegisterSensor(echo.Context) error
		SubmitReading(echo.Context) error
		Latest(echo.Context) error
	},
	advisoryBundle func(echo.Context) error,
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.FarmerID())
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	api.POST("/fields", fieldCtrl.Create)
	api.GET("/fields", fieldCtrl.List)
	api.GET("/fields/:id", fieldCtrl.Get)

	// Observations
	api.POST("/observations/rain", obsCtrl.SubmitRain)
	api.POST("/fields/:id/observations/soil", obsCtrl.SubmitSoil)

	// Risk + planting advisory
	api.GET("/fields/:id/risk", riskCalculate)
	api.GET("/planting/window", plantingCtrl.Window)
	api.GET("/fields/:id/planting/status", plantingCtrl.Status)
	api.POST("/fields/:id/plantings", plantingCtrl.Record)
	api.GET("/fields/:id/plantings", plantingCtrl.List)
	api.GET("/fields/:id/diversification", diversifyPlan)
	api.GET("/fields/:id/harvest", harvestPredict)

	// Storage telemetry
	api.POST("/storage/sensors", storageCtrl.RegisterSensor)
	api.POST("/storage/sensors/:id/readings", storageCtrl.SubmitReading)
	api.GET("/storage/sensors/:id", storageCtrl.Latest)

	// Bundled advisory
	api.GET("/fields/:id/advisory", advisoryBundle)

	return e
}
