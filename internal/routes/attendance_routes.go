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

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB, cfg config.Config) {
	attRepo := repository.NewAttendanceRepository(db)
	empRepo := repository.NewEmployeeRepository(db)

	hdl := handler.NewAttendanceHandler(usecase.NewAttendanceUsecase(attRepo, empRepo, cfg.WorkdayStart))

	api := app.Group("/api/attendances", middleware.Auth(cfg.JWTSecret))

	api.Post("/check-in", hdl.CheckIn)
	api.Post("/check-out", hdl.CheckOut)

	api.Post("/", middleware.Role("admin", "manager"), hdl.Record)
	api.Get("/stats", middleware.Role("admin", "manager"), hdl.Stats)
	api.Get("/employee/:id", middleware.Role("admin", "manager"), hdl.Monthly)
	api.Get("/employee/:id/history", middleware.Role("admin", "manager"), hdl.History)
	api.Get("/employee/:id/report", middleware.Role("admin", "manager"), hdl.MonthlyReport)
}
