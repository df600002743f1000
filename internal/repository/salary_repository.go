package repository

import (
	"time"

	"hrm-backend/internal/apperror"
	"hrm-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DepartmentSalaryStats aggregates the open-ended salary rows per department.
type DepartmentSalaryStats struct {
	DepartmentID   uint    `json:"department_id"`
	DepartmentName string  `json:"department_name"`
	AvgSalary      float64 `json:"average_salary"`
	MinSalary      float64 `json:"min_salary"`
	MaxSalary      float64 `json:"max_salary"`
	EmployeeCount  int64   `json:"total_employees"`
}

type SalaryRepository interface {
	Create(salary *model.Salary) error
	GetByEmployee(employeeID uint, opts ListOptions) ([]model.Salary, error)
	GetCurrent(employeeID uint, asOf time.Time) (*model.Salary, error)
	SupersedeCurrent(employeeID uint, baseSalary float64, effectiveFrom time.Time) (*model.Salary, error)
	StatsByDepartment(departmentID *uint) ([]DepartmentSalaryStats, error)
}

type salaryRepository struct {
	db *gorm.DB
}

func NewSalaryRepository(db *gorm.DB) SalaryRepository {
	return &salaryRepository{db}
}

// Create inserts a salary row. An open-ended row is only accepted when the
// employee has no other open-ended row; the check runs under a row lock so
// two concurrent inserts cannot both pass it.
func (r *salaryRepository) Create(salary *model.Salary) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if salary.EffectiveTo == nil {
			var open int64
			err := tx.Model(&model.Salary{}).
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("employee_id = ? AND effective_to IS NULL", salary.EmployeeID).
				Count(&open).Error
			if err != nil {
				return apperror.FromDB(err, "salary")
			}
			if open > 0 {
				return apperror.ConstraintViolation("uq_open_salary",
					"employee already has an open-ended salary record")
			}
		}
		return apperror.FromDB(tx.Create(salary).Error, "salary")
	})
}

func (r *salaryRepository) GetByEmployee(employeeID uint, opts ListOptions) ([]model.Salary, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, err
	}

	var salaries []model.Salary
	err = r.db.Where("employee_id = ?", employeeID).
		Order("effective_from desc").Order("id asc").
		Offset(opts.Skip).Limit(opts.Limit).
		Find(&salaries).Error
	if err != nil {
		return nil, apperror.FromDB(err, "salary")
	}
	return salaries, nil
}

// GetCurrent returns the salary row effective on asOf. If overlapping rows
// ever exist, the latest effective_from wins; among rows sharing that date
// (a same-day supersede) the newest row wins.
func (r *salaryRepository) GetCurrent(employeeID uint, asOf time.Time) (*model.Salary, error) {
	var salary model.Salary
	err := r.db.Where("employee_id = ? AND effective_from <= ? AND (effective_to IS NULL OR effective_to >= ?)",
		employeeID, asOf, asOf).
		Order("effective_from desc").Order("id desc").
		First(&salary).Error
	if err != nil {
		return nil, apperror.FromDB(err, "salary")
	}
	return &salary, nil
}

// SupersedeCurrent closes the employee's open-ended row and opens a new one
// atomically, returning the new row as stored.
func (r *salaryRepository) SupersedeCurrent(employeeID uint, baseSalary float64, effectiveFrom time.Time) (*model.Salary, error) {
	newSalary := &model.Salary{
		EmployeeID:    employeeID,
		BaseSalary:    baseSalary,
		EffectiveFrom: effectiveFrom,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var current model.Salary
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("employee_id = ? AND effective_to IS NULL", employeeID).
			Order("effective_from desc").
			First(&current).Error
		switch {
		case err == nil:
			if effectiveFrom.Before(current.EffectiveFrom) {
				return apperror.InvalidValue("check_salary_dates",
					"new salary cannot start before the current one")
			}
			closeAt := effectiveFrom
			current.EffectiveTo = &closeAt
			if err := tx.Save(&current).Error; err != nil {
				return apperror.FromDB(err, "salary")
			}
		case err == gorm.ErrRecordNotFound:
			// no open row to close, first salary for this employee
		default:
			return apperror.FromDB(err, "salary")
		}

		return apperror.FromDB(tx.Create(newSalary).Error, "salary")
	})
	if err != nil {
		return nil, err
	}
	return newSalary, nil
}

// StatsByDepartment computes avg/min/max over open-ended rows only.
func (r *salaryRepository) StatsByDepartment(departmentID *uint) ([]DepartmentSalaryStats, error) {
	query := r.db.Model(&model.Salary{}).
		Select("departments.id as department_id, departments.name as department_name, "+
			"AVG(salaries.base_salary) as avg_salary, MIN(salaries.base_salary) as min_salary, "+
			"MAX(salaries.base_salary) as max_salary, COUNT(DISTINCT salaries.employee_id) as employee_count").
		Joins("JOIN employees ON employees.id = salaries.employee_id").
		Joins("JOIN departments ON departments.id = employees.department_id").
		Where("salaries.effective_to IS NULL").
		Group("departments.id, departments.name")

	if departmentID != nil {
		query = query.Where("departments.id = ?", *departmentID)
	}

	var stats []DepartmentSalaryStats
	if err := query.Scan(&stats).Error; err != nil {
		return nil, apperror.FromDB(err, "salary")
	}
	return stats, nil
}
