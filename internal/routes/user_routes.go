package routes

import (
	"hrm-backend/config"
	"hrm-backend/internal/handler"
	"hrm-backend/internal/middleware"
	"hrm-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB, cfg config.Config) {
	repo := repository.NewUserRepository(db)
	hdl := handler.NewUserHandler(repo)

	api := app.Group("/api/users", middleware.Auth(cfg.JWTSecret), middleware.Role("admin"))

	api.Get("/", hdl.List)
	api.Get("/by-employee/:id", hdl.GetByEmployee)
	api.Get("/:id", hdl.Get)
	api.Post("/:id/deactivate", hdl.Deactivate)
	api.Delete("/:id", hdl.Delete)
}
