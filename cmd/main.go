package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"school-attendance/config"
	"school-attendance/database"
	"school-attendance/handlers"
	"school-attendance/routes"
)

func main() {
	cfg := config.Load()

	// Fail fast if the database is not reachable.
	database.Connect(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, cfg)

	log.Printf("listening on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
	if err := e.Start(":" + cfg.AppPort); err != nil {
		log.Fatal(err)
	}
}
