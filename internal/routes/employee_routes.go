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

func SetupEmployeeRoutes(app *fiber.App, db *gorm.DB, cfg config.Config) {
	empRepo := repository.NewEmployeeRepository(db)
	salaryRepo := repository.NewSalaryRepository(db)

	empHdl := handler.NewEmployeeHandler(usecase.NewEmployeeUsecase(empRepo))
	salaryHdl := handler.NewSalaryHandler(usecase.NewSalaryUsecase(salaryRepo, empRepo))

	api := app.Group("/api/employees", middleware.Auth(cfg.JWTSecret))

	api.Get("/", empHdl.List)
	api.Get("/lookup", empHdl.Lookup)
	api.Get("/:id", empHdl.Get)

	api.Post("/", middleware.Role("admin", "manager"), empHdl.Hire)
	api.Put("/:id", middleware.Role("admin", "manager"), empHdl.Reassign)
	api.Delete("/:id", middleware.Role("admin"), empHdl.Terminate)
	api.Delete("/:id/purge", middleware.Role("admin"), empHdl.Purge)

	// Salary history hangs off the employee.
	api.Get("/:id/salaries", middleware.Role("admin", "manager"), salaryHdl.History)
	api.Get("/:id/salaries/current", middleware.Role("admin", "manager"), salaryHdl.Current)
	api.Post("/:id/salaries", middleware.Role("admin"), salaryHdl.Grant)
	api.Post("/:id/salaries/raise", middleware.Role("admin"), salaryHdl.Raise)
}
