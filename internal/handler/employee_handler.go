package handler

import (
	"time"

	"hrm-backend/internal/model"
	"hrm-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type EmployeeHandler struct {
	employees *usecase.EmployeeUsecase
}

func NewEmployeeHandler(employees *usecase.EmployeeUsecase) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

type HireRequest struct {
	EmployeeCode  string  `json:"employee_code" validate:"required,max=20"`
	FullName      string  `json:"full_name" validate:"required,max=100"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         string  `json:"phone" validate:"max=20"`
	DepartmentID  *uint   `json:"department_id"`
	PositionID    *uint   `json:"position_id"`
	BaseSalary    float64 `json:"base_salary"`
	EffectiveFrom string  `json:"effective_from"` // YYYY-MM-DD, optional
}

func (h *EmployeeHandler) Hire(c *fiber.Ctx) error {
	var req HireRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	in := usecase.HireInput{
		EmployeeCode: req.EmployeeCode,
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		DepartmentID: req.DepartmentID,
		PositionID:   req.PositionID,
		BaseSalary:   req.BaseSalary,
	}
	if req.EffectiveFrom != "" {
		from, err := time.Parse("2006-01-02", req.EffectiveFrom)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid effective_from date"})
		}
		in.EffectiveFrom = &from
	}

	emp, err := h.employees.Hire(in)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "employee hired",
		"data":    emp,
	})
}

func (h *EmployeeHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	emp, err := h.employees.Get(uint(id),
		c.QueryBool("include_department", false),
		c.QueryBool("include_position", false))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": emp})
}

// Lookup resolves an employee by exact code or email.
func (h *EmployeeHandler) Lookup(c *fiber.Ctx) error {
	if code := c.Query("code"); code != "" {
		emp, err := h.employees.GetByCode(code)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": emp})
	}
	if email := c.Query("email"); email != "" {
		emp, err := h.employees.GetByEmail(email)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": emp})
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "code or email query parameter required"})
}

// List supports search (substring over name/email) and the eager include
// flags, paginated.
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	employees, err := h.employees.List(c.Query("search"), parseListOptions(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": employees})
}

func (h *EmployeeHandler) ListByDepartment(c *fiber.Ctx) error {
	deptID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid department id"})
	}

	status := model.EmploymentStatus(c.Query("status", string(model.EmploymentActive)))

	employees, err := h.employees.ListByDepartmentAndStatus(uint(deptID), status, parseListOptions(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": employees})
}

type ReassignRequest struct {
	DepartmentID *uint `json:"department_id"`
	PositionID   *uint `json:"position_id"`
}

func (h *EmployeeHandler) Reassign(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	var req ReassignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	emp, err := h.employees.Reassign(uint(id), req.DepartmentID, req.PositionID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": emp})
}

func (h *EmployeeHandler) Terminate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := h.employees.Terminate(uint(id)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "employee terminated"})
}

// Purge permanently removes the employee and all dependent records.
func (h *EmployeeHandler) Purge(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := h.employees.Purge(uint(id)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "employee permanently deleted"})
}
