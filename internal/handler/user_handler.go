package handler

import (
	"hrm-backend/internal/model"
	"hrm-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	repo repository.UserRepository
}

func NewUserHandler(repo repository.UserRepository) *UserHandler {
	return &UserHandler{repo: repo}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	var role *model.UserRole
	if raw := c.Query("role"); raw != "" {
		r := model.UserRole(raw)
		role = &r
	}

	var isActive *bool
	if raw := c.Query("is_active"); raw != "" {
		active := raw == "true"
		isActive = &active
	}

	users, err := h.repo.GetAll(role, isActive, parseListOptions(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": users})
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	user, err := h.repo.FindByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": user})
}

// GetByEmployee resolves the account linked to an employee record.
func (h *UserHandler) GetByEmployee(c *fiber.Ctx) error {
	employeeID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}

	user, err := h.repo.FindByEmployeeID(uint(employeeID))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": user})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := h.repo.Delete(uint(id)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "user deleted"})
}

func (h *UserHandler) Deactivate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	user, err := h.repo.FindByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	user.IsActive = false
	if err := h.repo.Update(user); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "user deactivated", "data": user})
}
