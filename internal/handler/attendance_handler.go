package handler

import (
	"time"

	"hrm-backend/internal/model"
	"hrm-backend/internal/repository"
	"hrm-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AttendanceHandler struct {
	attendances *usecase.AttendanceUsecase
}

func NewAttendanceHandler(attendances *usecase.AttendanceUsecase) *AttendanceHandler {
	return &AttendanceHandler{attendances: attendances}
}

func employeeIDFromToken(c *fiber.Ctx) (uint, bool) {
	raw, ok := c.Locals("employee_id").(float64)
	if !ok {
		return 0, false
	}
	return uint(raw), true
}

func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	employeeID, ok := employeeIDFromToken(c)
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "account is not linked to an employee"})
	}

	now := time.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	att, err := h.attendances.CheckIn(employeeID, day, now)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "checked in",
		"data":    att,
	})
}

func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	employeeID, ok := employeeIDFromToken(c)
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "account is not linked to an employee"})
	}

	now := time.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	att, err := h.attendances.CheckOut(employeeID, day, now)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "checked out",
		"data":    att,
	})
}

type RecordAttendanceRequest struct {
	EmployeeID uint   `json:"employee_id" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=present absent late half_day early_leave"`
}

// Record is the backoffice path for entering attendance directly.
func (h *AttendanceHandler) Record(c *fiber.Ctx) error {
	var req RecordAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date"})
	}

	att := &model.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       day,
		Status:     model.AttendanceStatus(req.Status),
	}
	if err := h.attendances.Record(att); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": att})
}

func (h *AttendanceHandler) Monthly(c *fiber.Ctx) error {
	employeeID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}

	year := c.QueryInt("year", time.Now().Year())
	month := c.QueryInt("month", int(time.Now().Month()))
	if month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month must be 1-12"})
	}

	list, err := h.attendances.Monthly(uint(employeeID), year, time.Month(month))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": list})
}

// History lists an employee's attendance over an arbitrary date range,
// paginated.
func (h *AttendanceHandler) History(c *fiber.Ctx) error {
	employeeID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}

	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid from date"})
		}
		from = &parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid to date"})
		}
		to = &parsed
	}

	list, err := h.attendances.History(uint(employeeID), from, to, parseListOptions(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": list})
}

func (h *AttendanceHandler) MonthlyReport(c *fiber.Ctx) error {
	employeeID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}

	year := c.QueryInt("year", time.Now().Year())
	month := c.QueryInt("month", int(time.Now().Month()))
	if month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month must be 1-12"})
	}

	report, err := h.attendances.MonthlyReport(uint(employeeID), year, time.Month(month))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": report})
}

// Stats returns per-status counts over the filtered row set.
func (h *AttendanceHandler) Stats(c *fiber.Ctx) error {
	var filters repository.AttendanceFilters

	if raw := c.QueryInt("employee_id", 0); raw > 0 {
		id := uint(raw)
		filters.EmployeeID = &id
	}
	if raw := c.QueryInt("department_id", 0); raw > 0 {
		id := uint(raw)
		filters.DepartmentID = &id
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid from date"})
		}
		filters.DateFrom = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid to date"})
		}
		filters.DateTo = &to
	}

	stats, err := h.attendances.Stats(filters)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": stats})
}
