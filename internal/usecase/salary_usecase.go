package usecase

import (
	"time"

	"hrm-backend/internal/apperror"
	"hrm-backend/internal/model"
	"hrm-backend/internal/repository"
)

type SalaryUsecase struct {
	salaries  repository.SalaryRepository
	employees repository.EmployeeRepository
}

func NewSalaryUsecase(salaries repository.SalaryRepository, employees repository.EmployeeRepository) *SalaryUsecase {
	return &SalaryUsecase{salaries: salaries, employees: employees}
}

func validateSalary(baseSalary float64, from time.Time, to *time.Time) error {
	if baseSalary <= 0 {
		return apperror.InvalidValue("check_salary_positive", "base salary must be positive")
	}
	if to != nil && to.Before(from) {
		return apperror.InvalidValue("check_salary_dates", "effective_to must not precede effective_from")
	}
	return nil
}

// Grant records a salary row for the employee. Open-ended rows are
// rejected when another open row exists.
func (u *SalaryUsecase) Grant(employeeID uint, baseSalary float64, from time.Time, to *time.Time) (*model.Salary, error) {
	if err := validateSalary(baseSalary, from, to); err != nil {
		return nil, err
	}
	if _, err := u.employees.FindByID(employeeID, repository.ListOptions{}); err != nil {
		return nil, err
	}

	salary := &model.Salary{
		EmployeeID:    employeeID,
		BaseSalary:    baseSalary,
		EffectiveFrom: from,
		EffectiveTo:   to,
	}
	if err := u.salaries.Create(salary); err != nil {
		return nil, err
	}
	return salary, nil
}

// Raise supersedes the current open-ended salary: the old row is closed
// and a new open row starts at effectiveFrom, atomically.
func (u *SalaryUsecase) Raise(employeeID uint, baseSalary float64, effectiveFrom time.Time) (*model.Salary, error) {
	if err := validateSalary(baseSalary, effectiveFrom, nil); err != nil {
		return nil, err
	}
	if _, err := u.employees.FindByID(employeeID, repository.ListOptions{}); err != nil {
		return nil, err
	}
	return u.salaries.SupersedeCurrent(employeeID, baseSalary, effectiveFrom)
}

// Current resolves the salary effective on asOf (today when zero).
func (u *SalaryUsecase) Current(employeeID uint, asOf time.Time) (*model.Salary, error) {
	if asOf.IsZero() {
		asOf = time.Now()
	}
	return u.salaries.GetCurrent(employeeID, asOf)
}

func (u *SalaryUsecase) History(employeeID uint, opts repository.ListOptions) ([]model.Salary, error) {
	return u.salaries.GetByEmployee(employeeID, opts)
}

func (u *SalaryUsecase) StatsByDepartment(departmentID *uint) ([]repository.DepartmentSalaryStats, error) {
	return u.salaries.StatsByDepartment(departmentID)
}
