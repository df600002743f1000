package handler

import (
	"hrm-backend/internal/model"
	"hrm-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type PositionHandler struct {
	repo repository.PositionRepository
}

func NewPositionHandler(repo repository.PositionRepository) *PositionHandler {
	return &PositionHandler{repo: repo}
}

type PositionRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Code        string `json:"code" validate:"required,max=20"`
	Level       string `json:"level" validate:"required,oneof=junior senior manager director executive"`
	Description string `json:"description"`
}

func (h *PositionHandler) Create(c *fiber.Ctx) error {
	var req PositionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	pos := &model.Position{
		Title:       req.Title,
		Code:        req.Code,
		Level:       model.PositionLevel(req.Level),
		Description: req.Description,
	}
	if err := h.repo.Create(pos); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": pos})
}

func (h *PositionHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	pos, err := h.repo.FindByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": pos})
}

func (h *PositionHandler) List(c *fiber.Ctx) error {
	opts := parseListOptions(c)

	if level := c.Query("level"); level != "" {
		positions, err := h.repo.GetByLevel(model.PositionLevel(level), opts)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": positions})
	}

	positions, err := h.repo.GetAll(opts)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": positions})
}

func (h *PositionHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	var req PositionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	pos, err := h.repo.FindByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	pos.Title = req.Title
	pos.Code = req.Code
	pos.Level = model.PositionLevel(req.Level)
	pos.Description = req.Description
	if err := h.repo.Update(pos); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": pos})
}

func (h *PositionHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := h.repo.Delete(uint(id)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "position deleted"})
}
