package routes

import (
	"hrm-backend/config"
	"hrm-backend/internal/handler"
	"hrm-backend/internal/middleware"
	"hrm-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPositionRoutes(app *fiber.App, db *gorm.DB, cfg config.Config) {
	repo := repository.NewPositionRepository(db)
	hdl := handler.NewPositionHandler(repo)

	api := app.Group("/api/positions", middleware.Auth(cfg.JWTSecret))

	api.Get("/", hdl.List)
	api.Get("/:id", hdl.Get)

	api.Post("/", middleware.Role("admin"), hdl.Create)
	api.Put("/:id", middleware.Role("admin"), hdl.Update)
	api.Delete("/:id", middleware.Role("admin"), hdl.Delete)
}
