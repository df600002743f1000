package handler

import (
	"hrm-backend/internal/model"
	"hrm-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type DepartmentHandler struct {
	repo repository.DepartmentRepository
}

func NewDepartmentHandler(repo repository.DepartmentRepository) *DepartmentHandler {
	return &DepartmentHandler{repo: repo}
}

type DepartmentRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	var req DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	dept := &model.Department{Name: req.Name}
	if err := h.repo.Create(dept); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dept})
}

func (h *DepartmentHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	dept, err := h.repo.FindByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": dept})
}

// List returns all departments; `?name=` resolves a single one by its
// exact name instead.
func (h *DepartmentHandler) List(c *fiber.Ctx) error {
	if name := c.Query("name"); name != "" {
		dept, err := h.repo.FindByName(name)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": []model.Department{*dept}})
	}

	depts, err := h.repo.GetAll(parseListOptions(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": depts})
}

func (h *DepartmentHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	var req DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	dept, err := h.repo.FindByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	dept.Name = req.Name
	if err := h.repo.Update(dept); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": dept})
}

// Delete removes the department; its employees are kept with a cleared
// department reference.
func (h *DepartmentHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := h.repo.Delete(uint(id)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "department deleted"})
}
