package routes

import (
	"hrm-backend/config"
	"hrm-backend/internal/handler"
	"hrm-backend/internal/mailer"
	"hrm-backend/internal/middleware"
	"hrm-backend/internal/repository"
	"hrm-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLeaveRoutes(app *fiber.App, db *gorm.DB, cfg config.Config) {
	leaveRepo := repository.NewLeaveRepository(db)
	empRepo := repository.NewEmployeeRepository(db)
	userRepo := repository.NewUserRepository(db)

	leaves := usecase.NewLeaveUsecase(leaveRepo, empRepo, mailer.New(cfg))
	hdl := handler.NewLeaveHandler(leaves, userRepo)

	api := app.Group("/api/leaves", middleware.Auth(cfg.JWTSecret))

	api.Post("/", hdl.Request)
	api.Get("/mine", hdl.MyLeaves)
	api.Get("/calendar", hdl.Calendar)
	api.Get("/balance/:id", hdl.Balance)
	api.Get("/:id", hdl.Get)

	// Approval endpoints; the usecase re-checks capability.
	api.Get("/pending/all", middleware.Role("admin", "manager"), hdl.Pending)
	api.Post("/:id/approve", middleware.Role("admin", "manager"), hdl.Approve)
	api.Post("/:id/reject", middleware.Role("admin", "manager"), hdl.Reject)
}
