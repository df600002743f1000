package repository

import (
	"errors"
	"time"

	"hrm-backend/internal/apperror"
	"hrm-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeaveRepository interface {
	Create(leave *model.Leave) error
	FindByID(id uint) (*model.Leave, error)
	GetByEmployee(employeeID uint, status *model.LeaveStatus, opts ListOptions) ([]model.Leave, error)
	GetPending(opts ListOptions) ([]model.Leave, error)
	GetOverlapping(start, end time.Time, status *model.LeaveStatus) ([]model.Leave, error)
	HasConflict(employeeID uint, start, end time.Time, excludeID uint) (bool, error)
	SumDays(employeeID uint, leaveType model.LeaveType, status model.LeaveStatus, year int) (int, error)
	Decide(id uint, next model.LeaveStatus, approverID uint, decidedAt time.Time) (*model.Leave, error)
}

type leaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &leaveRepository{db}
}

func (r *leaveRepository) Create(leave *model.Leave) error {
	return apperror.FromDB(r.db.Create(leave).Error, "leave")
}

func (r *leaveRepository) FindByID(id uint) (*model.Leave, error) {
	var leave model.Leave
	if err := r.db.First(&leave, id).Error; err != nil {
		return nil, apperror.FromDB(err, "leave")
	}
	return &leave, nil
}

func (r *leaveRepository) GetByEmployee(employeeID uint, status *model.LeaveStatus, opts ListOptions) ([]model.Leave, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, err
	}

	query := r.db.Where("employee_id = ?", employeeID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var leaves []model.Leave
	err = query.Order("created_at desc").Order("id asc").
		Offset(opts.Skip).Limit(opts.Limit).
		Find(&leaves).Error
	if err != nil {
		return nil, apperror.FromDB(err, "leave")
	}
	return leaves, nil
}

func (r *leaveRepository) GetPending(opts ListOptions) ([]model.Leave, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, err
	}

	var leaves []model.Leave
	err = r.db.Preload("Employee").
		Where("status = ?", model.LeavePending).
		Order("start_date asc").Order("id asc").
		Offset(opts.Skip).Limit(opts.Limit).
		Find(&leaves).Error
	if err != nil {
		return nil, apperror.FromDB(err, "leave")
	}
	return leaves, nil
}

// GetOverlapping returns leaves whose [start_date, end_date] intersects the
// given range.
func (r *leaveRepository) GetOverlapping(start, end time.Time, status *model.LeaveStatus) ([]model.Leave, error) {
	query := r.db.Where("start_date <= ? AND end_date >= ?", end, start)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var leaves []model.Leave
	if err := query.Order("start_date asc").Find(&leaves).Error; err != nil {
		return nil, apperror.FromDB(err, "leave")
	}
	return leaves, nil
}

// HasConflict reports whether the employee already has a pending or
// approved leave intersecting the range.
func (r *leaveRepository) HasConflict(employeeID uint, start, end time.Time, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&model.Leave{}).
		Where("employee_id = ? AND status IN ? AND start_date <= ? AND end_date >= ?",
			employeeID, []model.LeaveStatus{model.LeavePending, model.LeaveApproved}, end, start)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, apperror.FromDB(err, "leave")
	}
	return count > 0, nil
}

// SumDays totals total_days over the employee's leaves of the given type
// and status whose start_date falls in the year.
func (r *leaveRepository) SumDays(employeeID uint, leaveType model.LeaveType, status model.LeaveStatus, year int) (int, error) {
	from := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	var total int64
	err := r.db.Model(&model.Leave{}).
		Select("COALESCE(SUM(total_days), 0)").
		Where("employee_id = ? AND leave_type = ? AND status = ? AND start_date >= ? AND start_date < ?",
			employeeID, leaveType, status, from, to).
		Scan(&total).Error
	if err != nil {
		return 0, apperror.FromDB(err, "leave")
	}
	return int(total), nil
}

// Decide moves a pending leave to approved or rejected, recording the
// approver and timestamp. The row is locked for the duration of the check
// so two concurrent decisions cannot both pass the pending guard.
func (r *leaveRepository) Decide(id uint, next model.LeaveStatus, approverID uint, decidedAt time.Time) (*model.Leave, error) {
	var leave model.Leave
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&leave, id).Error
		if err != nil {
			return apperror.FromDB(err, "leave")
		}

		if !leave.Status.CanTransitionTo(next) {
			return apperror.InvalidStateTransition(
				"leave is " + string(leave.Status) + ", only pending leaves can be decided")
		}

		leave.Status = next
		leave.ApprovedBy = &approverID
		leave.ApprovedAt = &decidedAt
		return apperror.FromDB(tx.Save(&leave).Error, "leave")
	})
	if err != nil {
		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperror.FromDB(err, "leave")
	}
	return &leave, nil
}
