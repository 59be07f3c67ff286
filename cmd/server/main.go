package main

import (
	"log"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"agritech/config"
	"agritech/database"
	"agritech/router"

	authCtrlImp "agritech/pkg/auth/controllerImp"
	authRepoImp "agritech/pkg/auth/repositoryImp"

	regCtrlImp "agritech/pkg/registrant/controllerImp"
	regRepoImp "agritech/pkg/registrant/repositoryImp"
	regSvcImp "agritech/pkg/registrant/serviceImp"

	histCtrlImp "agritech/pkg/history/controllerImp"
	histRepoImp "agritech/pkg/history/repositoryImp"

	dashCtrlImp "agritech/pkg/dashboard/controllerImp"
	dashSvcImp "agritech/pkg/dashboard/serviceImp"

	mapCtrlImp "agritech/pkg/mapdata/controllerImp"

	repCtrlImp "agritech/pkg/report/controllerImp"
	"agritech/pkg/report"
	"agritech/pkg/report/pdf"

	refCtrlImp "agritech/pkg/refdata/controllerImp"
	refRepoImp "agritech/pkg/refdata/repositoryImp"

	healthCtrlImp "agritech/pkg/health/controllerImp"

	"agritech/pkg/stats"
)

func main() {
	cfg := config.Load()

	db := database.OpenSQLite(cfg.DBPath)
	if err := database.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))

	engine := stats.New(stats.WithYieldFactor(cfg.YieldFactor))

	regRepo := regRepoImp.New(db)
	histRepo := histRepoImp.New(db)
	regSvc := regSvcImp.New(regRepo, histRepo)
	dashSvc := dashSvcImp.New(regRepo, engine)

	renderer := pdf.New(pdf.Letterhead{
		Province:     cfg.Province,
		Municipality: cfg.Municipality,
		Office:       cfg.OfficeName,
		LogoPath:     cfg.LogoPath,
	})

	ctrl := router.Controllers{
		Auth:       authCtrlImp.New(authRepoImp.New(db), store),
		Registrant: regCtrlImp.New(regSvc),
		Dashboard:  dashCtrlImp.New(dashSvc),
		Report:     repCtrlImp.New(regRepo, report.NewBuilder(engine), renderer),
		Map:        mapCtrlImp.New(regRepo),
		History:    histCtrlImp.New(histRepo),
		Refdata:    refCtrlImp.New(refRepoImp.New(db), strings.Split(cfg.RefDomains, ",")),
		Health:     healthCtrlImp.New(db),
	}

	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Static("/static", "static")

	r := router.New(e, store, ctrl)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
