package main

import (
	"hrm-backend/config"
	"hrm-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env not found, using system environment variables")
	}

	cfg := config.Load()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}

	app := fiber.New()

	app.Use(cors.New())
	app.Use(logger.New())

	routes.SetupAuthRoutes(app, db, cfg)
	routes.SetupDepartmentRoutes(app, db, cfg)
	routes.SetupPositionRoutes(app, db, cfg)
	routes.SetupEmployeeRoutes(app, db, cfg)
	routes.SetupAttendanceRoutes(app, db, cfg)
	routes.SetupLeaveRoutes(app, db, cfg)
	routes.SetupUserRoutes(app, db, cfg)
	routes.SetupReportRoutes(app, db, cfg)
	routes.SetupDashboardRoutes(app, db, cfg)

	logrus.WithField("port", cfg.AppPort).Info("server listening")
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
