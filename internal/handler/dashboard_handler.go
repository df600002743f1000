package handler

import (
	"time"

	"hrm-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	departments repository.DepartmentRepository
	employees   repository.EmployeeRepository
	attendances repository.AttendanceRepository
}

func NewDashboardHandler(departments repository.DepartmentRepository, employees repository.EmployeeRepository, attendances repository.AttendanceRepository) *DashboardHandler {
	return &DashboardHandler{departments: departments, employees: employees, attendances: attendances}
}

// GetStats returns the headline numbers for the admin dashboard: totals
// plus today's attendance broken down by status.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	totalDepartments, err := h.departments.Count()
	if err != nil {
		return respondError(c, err)
	}
	totalEmployees, err := h.employees.Count()
	if err != nil {
		return respondError(c, err)
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	attendanceToday, err := h.attendances.CountByStatus(repository.AttendanceFilters{
		DateFrom: &today,
		DateTo:   &today,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"total_departments": totalDepartments,
			"total_employees":   totalEmployees,
			"attendance_today":  attendanceToday,
		},
	})
}
