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

func SetupDepartmentRoutes(app *fiber.App, db *gorm.DB, cfg config.Config) {
	repo := repository.NewDepartmentRepository(db)
	empRepo := repository.NewEmployeeRepository(db)

	hdl := handler.NewDepartmentHandler(repo)
	empHdl := handler.NewEmployeeHandler(usecase.NewEmployeeUsecase(empRepo))

	api := app.Group("/api/departments", middleware.Auth(cfg.JWTSecret))

	api.Get("/", hdl.List)
	api.Get("/:id", hdl.Get)
	api.Get("/:id/employees", empHdl.ListByDepartment)

	api.Post("/", middleware.Role("admin"), hdl.Create)
	api.Put("/:id", middleware.Role("admin"), hdl.Update)
	api.Delete("/:id", middleware.Role("admin"), hdl.Delete)
}
