package routes

import (
	"hrm-backend/config"
	"hrm-backend/internal/handler"
	"hrm-backend/internal/middleware"
	"hrm-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB, cfg config.Config) {
	hdl := handler.NewDashboardHandler(
		repository.NewDepartmentRepository(db),
		repository.NewEmployeeRepository(db),
		repository.NewAttendanceRepository(db),
	)

	api := app.Group("/api/dashboard", middleware.Auth(cfg.JWTSecret), middleware.Role("admin", "manager"))

	api.Get("/stats", hdl.GetStats)
}
