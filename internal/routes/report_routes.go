package routes

import (
	"hrm-backend/config"
	"hrm-backend/internal/handler"
	"hrm-backend/internal/middleware"
	"hrm-backend/internal/repository"
	"hrm-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupReportRoutes exposes the aggregate views for the admin dashboard.
func SetupReportRoutes(app *fiber.App, db *gorm.DB, cfg config.Config) {
	salaryRepo := repository.NewSalaryRepository(db)
	empRepo := repository.NewEmployeeRepository(db)

	salaryHdl := handler.NewSalaryHandler(usecase.NewSalaryUsecase(salaryRepo, empRepo))

	api := app.Group("/api/reports", middleware.Auth(cfg.JWTSecret), middleware.Role("admin", "manager"))

	api.Get("/salaries", salaryHdl.Stats)
}
