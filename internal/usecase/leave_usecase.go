package usecase

import (
	"time"

	"hrm-backend/internal/apperror"
	"hrm-backend/internal/mailer"
	"hrm-backend/internal/model"
	"hrm-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// Annual entitlement in working days.
const annualLeaveEntitlement = 12

// LeaveBalance summarizes how much annual leave an employee has left in
// a year. Pending days are reported but not deducted until approved.
type LeaveBalance struct {
	EmployeeID      uint   `json:"employee_id"`
	EmployeeName    string `json:"employee_name"`
	Year            int    `json:"year"`
	TotalAnnual     int    `json:"total_annual_leave"`
	UsedAnnual      int    `json:"used_annual_leave"`
	PendingDays     int    `json:"pending_leave"`
	RemainingAnnual int    `json:"remaining_annual_leave"`
}

type LeaveUsecase struct {
	leaves    repository.LeaveRepository
	employees repository.EmployeeRepository
	notifier  mailer.Notifier
}

func NewLeaveUsecase(leaves repository.LeaveRepository, employees repository.EmployeeRepository, notifier mailer.Notifier) *LeaveUsecase {
	return &LeaveUsecase{leaves: leaves, employees: employees, notifier: notifier}
}

// Request files a new leave in pending state.
func (u *LeaveUsecase) Request(employeeID uint, leaveType model.LeaveType, start, end time.Time, reason string) (*model.Leave, error) {
	if !leaveType.Valid() {
		return nil, apperror.InvalidValue("leave_type", "unknown leave type: "+string(leaveType))
	}
	if end.Before(start) {
		return nil, apperror.InvalidValue("check_leave_dates", "end_date must not precede start_date")
	}

	if _, err := u.employees.FindByID(employeeID, repository.ListOptions{}); err != nil {
		return nil, err
	}

	conflict, err := u.leaves.HasConflict(employeeID, start, end, 0)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, apperror.ConstraintViolation("leave_overlap",
			"employee already has a pending or approved leave in this range")
	}

	leave := &model.Leave{
		EmployeeID: employeeID,
		LeaveType:  leaveType,
		StartDate:  start,
		EndDate:    end,
		TotalDays:  int(end.Sub(start).Hours()/24) + 1,
		Reason:     reason,
		Status:     model.LeavePending,
	}
	if err := u.leaves.Create(leave); err != nil {
		return nil, err
	}
	return leave, nil
}

// Approve transitions a pending leave to approved. Only managers and
// admins may decide.
func (u *LeaveUsecase) Approve(actor *model.User, leaveID uint) (*model.Leave, error) {
	return u.decide(actor, leaveID, model.LeaveApproved)
}

// Reject transitions a pending leave to rejected.
func (u *LeaveUsecase) Reject(actor *model.User, leaveID uint) (*model.Leave, error) {
	return u.decide(actor, leaveID, model.LeaveRejected)
}

func (u *LeaveUsecase) decide(actor *model.User, leaveID uint, next model.LeaveStatus) (*model.Leave, error) {
	if actor == nil || !actor.Role.CanApproveLeaves() {
		return nil, apperror.Forbidden("only managers and admins can decide leave requests")
	}

	leave, err := u.leaves.Decide(leaveID, next, actor.ID, time.Now())
	if err != nil {
		return nil, err
	}

	u.notify(leave)
	return leave, nil
}

// notify e-mails the requester; delivery problems are logged, never fatal.
func (u *LeaveUsecase) notify(leave *model.Leave) {
	emp, err := u.employees.FindByID(leave.EmployeeID, repository.ListOptions{})
	if err != nil {
		logrus.WithError(err).WithField("leave_id", leave.ID).Warn("could not load employee for notification")
		return
	}
	if err := u.notifier.LeaveDecided(emp.Email, leave); err != nil {
		logrus.WithError(err).WithField("leave_id", leave.ID).Warn("leave notification failed")
	}
}

func (u *LeaveUsecase) Get(id uint) (*model.Leave, error) {
	return u.leaves.FindByID(id)
}

func (u *LeaveUsecase) ListByEmployee(employeeID uint, status *model.LeaveStatus, opts repository.ListOptions) ([]model.Leave, error) {
	return u.leaves.GetByEmployee(employeeID, status, opts)
}

func (u *LeaveUsecase) ListPending(opts repository.ListOptions) ([]model.Leave, error) {
	return u.leaves.GetPending(opts)
}

// Balance computes the annual-leave balance for the year.
func (u *LeaveUsecase) Balance(employeeID uint, year int) (*LeaveBalance, error) {
	emp, err := u.employees.FindByID(employeeID, repository.ListOptions{})
	if err != nil {
		return nil, err
	}

	used, err := u.leaves.SumDays(employeeID, model.LeaveAnnual, model.LeaveApproved, year)
	if err != nil {
		return nil, err
	}
	pending, err := u.leaves.SumDays(employeeID, model.LeaveAnnual, model.LeavePending, year)
	if err != nil {
		return nil, err
	}

	return &LeaveBalance{
		EmployeeID:      employeeID,
		EmployeeName:    emp.FullName,
		Year:            year,
		TotalAnnual:     annualLeaveEntitlement,
		UsedAnnual:      used,
		PendingDays:     pending,
		RemainingAnnual: annualLeaveEntitlement - used,
	}, nil
}

func (u *LeaveUsecase) Calendar(day time.Time) ([]model.Leave, error) {
	approved := model.LeaveApproved
	return u.leaves.GetOverlapping(day, day, &approved)
}
