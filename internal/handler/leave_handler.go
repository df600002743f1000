package handler

import (
	"time"

	"hrm-backend/internal/model"
	"hrm-backend/internal/repository"
	"hrm-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type LeaveHandler struct {
	leaves *usecase.LeaveUsecase
	users  repository.UserRepository
}

func NewLeaveHandler(leaves *usecase.LeaveUsecase, users repository.UserRepository) *LeaveHandler {
	return &LeaveHandler{leaves: leaves, users: users}
}

type LeaveRequestBody struct {
	LeaveType string `json:"leave_type" validate:"required,oneof=annual sick unpaid maternity paternity emergency other"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Reason    string `json:"reason"`
}

func (h *LeaveHandler) Request(c *fiber.Ctx) error {
	employeeID, ok := employeeIDFromToken(c)
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "account is not linked to an employee"})
	}

	var req LeaveRequestBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid start_date"})
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid end_date"})
	}

	leave, err := h.leaves.Request(employeeID, model.LeaveType(req.LeaveType), start, end, req.Reason)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "leave requested",
		"data":    leave,
	})
}

// actor loads the calling user so capability checks run against the
// current role, not the one baked into the token.
func (h *LeaveHandler) actor(c *fiber.Ctx) (*model.User, error) {
	userID := uint(c.Locals("user_id").(float64))
	return h.users.FindByID(userID)
}

func (h *LeaveHandler) Approve(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	actor, err := h.actor(c)
	if err != nil {
		return respondError(c, err)
	}

	leave, err := h.leaves.Approve(actor, uint(id))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "leave approved",
		"data":    leave,
	})
}

func (h *LeaveHandler) Reject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	actor, err := h.actor(c)
	if err != nil {
		return respondError(c, err)
	}

	leave, err := h.leaves.Reject(actor, uint(id))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "leave rejected",
		"data":    leave,
	})
}

func (h *LeaveHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	leave, err := h.leaves.Get(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": leave})
}

func (h *LeaveHandler) MyLeaves(c *fiber.Ctx) error {
	employeeID, ok := employeeIDFromToken(c)
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "account is not linked to an employee"})
	}

	var status *model.LeaveStatus
	if raw := c.Query("status"); raw != "" {
		s := model.LeaveStatus(raw)
		status = &s
	}

	leaves, err := h.leaves.ListByEmployee(employeeID, status, parseListOptions(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": leaves})
}

// Pending lists all undecided requests, oldest start date first.
func (h *LeaveHandler) Pending(c *fiber.Ctx) error {
	leaves, err := h.leaves.ListPending(parseListOptions(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": leaves})
}

// Balance reports the annual-leave balance. Employees may only query
// their own; managers and admins may query anyone's.
func (h *LeaveHandler) Balance(c *fiber.Ctx) error {
	employeeID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}

	if role, _ := c.Locals("role").(string); role == string(model.RoleEmployee) {
		own, ok := employeeIDFromToken(c)
		if !ok || own != uint(employeeID) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "you can only view your own leave balance"})
		}
	}

	year := c.QueryInt("year", time.Now().Year())

	balance, err := h.leaves.Balance(uint(employeeID), year)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": balance})
}

func (h *LeaveHandler) Calendar(c *fiber.Ctx) error {
	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date"})
		}
		day = parsed
	}

	leaves, err := h.leaves.Calendar(day)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"date":           day.Format("2006-01-02"),
		"total_on_leave": len(leaves),
		"data":           leaves,
	})
}
