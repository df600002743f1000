package repository

import (
	"time"

	"hrm-backend/internal/apperror"
	"hrm-backend/internal/model"

	"gorm.io/gorm"
)

// AttendanceFilters narrows aggregate queries; nil fields mean "any".
type AttendanceFilters struct {
	EmployeeID   *uint
	DepartmentID *uint
	DateFrom     *time.Time
	DateTo       *time.Time
}

type AttendanceRepository interface {
	Create(att *model.Attendance) error
	GetByEmployeeAndDate(employeeID uint, date time.Time) (*model.Attendance, error)
	GetByEmployee(employeeID uint, from, to *time.Time, opts ListOptions) ([]model.Attendance, error)
	GetByMonth(employeeID uint, year int, month time.Month) ([]model.Attendance, error)
	CountByStatus(filters AttendanceFilters) (map[model.AttendanceStatus]int64, error)
	Update(att *model.Attendance) error
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

// Create relies on the store-level unique (employee_id, date) index to
// close the race between two inserts for the same day.
func (r *attendanceRepository) Create(att *model.Attendance) error {
	return apperror.FromDB(r.db.Create(att).Error, "attendance")
}

func (r *attendanceRepository) GetByEmployeeAndDate(employeeID uint, date time.Time) (*model.Attendance, error) {
	var att model.Attendance
	err := r.db.Where("employee_id = ? AND date = ?", employeeID, date).First(&att).Error
	if err != nil {
		return nil, apperror.FromDB(err, "attendance")
	}
	return &att, nil
}

func (r *attendanceRepository) GetByEmployee(employeeID uint, from, to *time.Time, opts ListOptions) ([]model.Attendance, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, err
	}

	query := r.db.Where("employee_id = ?", employeeID)
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date <= ?", *to)
	}

	var list []model.Attendance
	err = query.Order("date desc").Order("id asc").
		Offset(opts.Skip).Limit(opts.Limit).
		Find(&list).Error
	if err != nil {
		return nil, apperror.FromDB(err, "attendance")
	}
	return list, nil
}

// GetByMonth returns the employee's rows inside one calendar month,
// ascending by date.
func (r *attendanceRepository) GetByMonth(employeeID uint, year int, month time.Month) ([]model.Attendance, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	var list []model.Attendance
	err := r.db.Where("employee_id = ? AND date >= ? AND date < ?", employeeID, first, next).
		Order("date asc").
		Find(&list).Error
	if err != nil {
		return nil, apperror.FromDB(err, "attendance")
	}
	return list, nil
}

func (r *attendanceRepository) CountByStatus(filters AttendanceFilters) (map[model.AttendanceStatus]int64, error) {
	query := r.db.Model(&model.Attendance{}).
		Select("attendances.status, COUNT(*) as count").
		Group("attendances.status")

	if filters.EmployeeID != nil {
		query = query.Where("attendances.employee_id = ?", *filters.EmployeeID)
	}
	if filters.DepartmentID != nil {
		query = query.Joins("JOIN employees ON employees.id = attendances.employee_id").
			Where("employees.department_id = ?", *filters.DepartmentID)
	}
	if filters.DateFrom != nil {
		query = query.Where("attendances.date >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("attendances.date <= ?", *filters.DateTo)
	}

	var rows []struct {
		Status model.AttendanceStatus
		Count  int64
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, apperror.FromDB(err, "attendance")
	}

	stats := make(map[model.AttendanceStatus]int64, len(rows))
	for _, row := range rows {
		stats[row.Status] = row.Count
	}
	return stats, nil
}

func (r *attendanceRepository) Update(att *model.Attendance) error {
	return apperror.FromDB(r.db.Save(att).Error, "attendance")
}
