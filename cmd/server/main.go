package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"agroclimate/config"
	"agroclimate/database"
	"agroclimate/router"

	// Identity
	authCtrlImp "agroclimate/pkg/auth/controllerImp"

	// Fields
	fieldCtrlImp "agroclimate/pkg/field/controllerImp"
	fieldRepoImp "agroclimate/pkg/field/repositoryImp"

	// Observations
	obsCtrlImp "agroclimate/pkg/observation/controllerImp"
	obsRepoImp "agroclimate/pkg/observation/repositoryImp"

	// Seasonal baseline
	"agroclimate/pkg/season"

	// Risk fusion
	riskCtrlImp "agroclimate/pkg/risk/controllerImp"
	riskSvcImp "agroclimate/pkg/risk/serviceImp"

	// Planting advisory
	plantCtrlImp "agroclimate/pkg/planting/controllerImp"
	plantRepoImp "agroclimate/pkg/planting/repositoryImp"
	plantSvcImp "agroclimate/pkg/planting/serviceImp"

	// Diversification
	"agroclimate/pkg/diversify"
	divCtrlImp "agroclimate/pkg/diversify/controllerImp"

	// Harvest prediction
	harvCtrlImp "agroclimate/pkg/harvest/controllerImp"
	harvSvcImp "agroclimate/pkg/harvest/serviceImp"

	// Storage telemetry
	storCtrlImp "agroclimate/pkg/storage/controllerImp"
	storRepoImp "agroclimate/pkg/storage/repositoryImp"

	// Aggregated advisory
	advCtrlImp "agroclimate/pkg/advisory/controllerImp"

	// Health
	healthCtrlImp "agroclimate/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()
	th := cfg.Thresholds

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Seasonal baseline provider (static table, optional overrides)
	seasons := season.NewStatic(cfg.SeasonCSV, cfg.SeasonXLSX)

	// 5) Repos
	fRepo := fieldRepoImp.New(db)
	oRepo := obsRepoImp.New(db)
	pRepo := plantRepoImp.New(db)
	sRepo := storRepoImp.New(db)

	// 6) Engines
	riskSvc := riskSvcImp.New(oRepo, seasons, th)
	planner := diversify.New()
	harvSvc := harvSvcImp.New(seasons, sRepo, th)
	plantSvc := plantSvcImp.New(pRepo, riskSvc, planner, th)

	// 7) Controllers
	fCtrl := fieldCtrlImp.New(fRepo)
	oCtrl := obsCtrlImp.New(oRepo)
	rCtrl := riskCtrlImp.New(riskSvc, fRepo)
	pCtrl := plantCtrlImp.New(plantSvc, pRepo, fRepo, harvSvc)
	dCtrl := divCtrlImp.New(planner, riskSvc, fRepo)
	hCtrl := harvCtrlImp.New(harvSvc, fRepo, pRepo)
	stCtrl := storCtrlImp.New(sRepo)
	aCtrl := advCtrlImp.New(fRepo, riskSvc, plantSvc, pRepo, planner, harvSvc)

	authCtrl := authCtrlImp.New()
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 8) Router
	r := router.New(
		e,
		fCtrl,
		oCtrl,
		rCtrl.Calculate,
		pCtrl,
		dCtrl.Plan,
		hCtrl.Predict,
		stCtrl,
		aCtrl.Bundle,
		authCtrl,
		healthCtrl,
	)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
