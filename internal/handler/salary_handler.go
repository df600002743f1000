package handler

import (
	"time"

	"hrm-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type SalaryHandler struct {
	salaries *usecase.SalaryUsecase
}

func NewSalaryHandler(salaries *usecase.SalaryUsecase) *SalaryHandler {
	return &SalaryHandler{salaries: salaries}
}

type GrantSalaryRequest struct {
	BaseSalary    float64 `json:"base_salary" validate:"required,gt=0"`
	EffectiveFrom string  `json:"effective_from" validate:"required"`
	EffectiveTo   string  `json:"effective_to"`
}

func (h *SalaryHandler) Grant(c *fiber.Ctx) error {
	employeeID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}

	var req GrantSalaryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	from, err := time.Parse("2006-01-02", req.EffectiveFrom)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid effective_from date"})
	}
	var to *time.Time
	if req.EffectiveTo != "" {
		t, err := time.Parse("2006-01-02", req.EffectiveTo)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid effective_to date"})
		}
		to = &t
	}

	salary, err := h.salaries.Grant(uint(employeeID), req.BaseSalary, from, to)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": salary})
}

type RaiseRequest struct {
	BaseSalary    float64 `json:"base_salary" validate:"required,gt=0"`
	EffectiveFrom string  `json:"effective_from" validate:"required"`
}

// Raise closes the current open-ended salary and opens a new one.
func (h *SalaryHandler) Raise(c *fiber.Ctx) error {
	employeeID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}

	var req RaiseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	from, err := time.Parse("2006-01-02", req.EffectiveFrom)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid effective_from date"})
	}

	salary, err := h.salaries.Raise(uint(employeeID), req.BaseSalary, from)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": salary})
}

func (h *SalaryHandler) Current(c *fiber.Ctx) error {
	employeeID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}

	var asOf time.Time
	if raw := c.Query("as_of"); raw != "" {
		asOf, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid as_of date"})
		}
	}

	salary, err := h.salaries.Current(uint(employeeID), asOf)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": salary})
}

func (h *SalaryHandler) History(c *fiber.Ctx) error {
	employeeID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}

	salaries, err := h.salaries.History(uint(employeeID), parseListOptions(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": salaries})
}

func (h *SalaryHandler) Stats(c *fiber.Ctx) error {
	var deptID *uint
	if raw := c.QueryInt("department_id", 0); raw > 0 {
		id := uint(raw)
		deptID = &id
	}

	stats, err := h.salaries.StatsByDepartment(deptID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": stats})
}
