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

func SetupAuthRoutes(app *fiber.App, db *gorm.DB, cfg config.Config) {
	users := repository.NewUserRepository(db)
	auth := usecase.NewAuthUsecase(users, cfg)
	hdl := handler.NewAuthHandler(auth, users)

	api := app.Group("/api/auth")

	api.Post("/login", hdl.Login)

	// Account management is admin-only.
	api.Post("/register", middleware.Auth(cfg.JWTSecret), middleware.Role("admin"), hdl.Register)
	api.Get("/me", middleware.Auth(cfg.JWTSecret), hdl.Me)
}
