package usecase

import (
	"time"

	"hrm-backend/internal/apperror"
	"hrm-backend/internal/model"
	"hrm-backend/internal/repository"
)

// HireInput carries everything needed to onboard an employee, optionally
// with an opening salary.
type HireInput struct {
	EmployeeCode  string
	FullName      string
	Email         string
	Phone         string
	DepartmentID  *uint
	PositionID    *uint
	BaseSalary    float64
	EffectiveFrom *time.Time
}

type EmployeeUsecase struct {
	employees repository.EmployeeRepository
}

func NewEmployeeUsecase(employees repository.EmployeeRepository) *EmployeeUsecase {
	return &EmployeeUsecase{employees: employees}
}

// Hire creates the employee and, when a salary is given, its opening
// salary row in the same transaction.
func (u *EmployeeUsecase) Hire(in HireInput) (*model.Employee, error) {
	emp := &model.Employee{
		EmployeeCode:     in.EmployeeCode,
		FullName:         in.FullName,
		Email:            in.Email,
		Phone:            in.Phone,
		DepartmentID:     in.DepartmentID,
		PositionID:       in.PositionID,
		EmploymentStatus: model.EmploymentActive,
	}

	if in.BaseSalary == 0 {
		if err := u.employees.Create(emp); err != nil {
			return nil, err
		}
		return emp, nil
	}

	if in.BaseSalary < 0 {
		return nil, apperror.InvalidValue("check_salary_positive", "base salary must be positive")
	}
	from := time.Now().Truncate(24 * time.Hour)
	if in.EffectiveFrom != nil {
		from = *in.EffectiveFrom
	}
	salary := &model.Salary{
		BaseSalary:    in.BaseSalary,
		EffectiveFrom: from,
	}
	if err := u.employees.CreateWithInitialSalary(emp, salary); err != nil {
		return nil, err
	}
	return emp, nil
}

func (u *EmployeeUsecase) Get(id uint, includeDepartment, includePosition bool) (*model.Employee, error) {
	return u.employees.FindByID(id, repository.ListOptions{
		IncludeDepartment: includeDepartment,
		IncludePosition:   includePosition,
	})
}

func (u *EmployeeUsecase) GetByCode(code string) (*model.Employee, error) {
	return u.employees.FindByCode(code)
}

func (u *EmployeeUsecase) GetByEmail(email string) (*model.Employee, error) {
	return u.employees.FindByEmail(email)
}

func (u *EmployeeUsecase) List(search string, opts repository.ListOptions) ([]model.Employee, error) {
	return u.employees.GetAll(search, opts)
}

func (u *EmployeeUsecase) ListByDepartmentAndStatus(departmentID uint, status model.EmploymentStatus, opts repository.ListOptions) ([]model.Employee, error) {
	return u.employees.GetByDepartmentAndStatus(departmentID, status, opts)
}

// Reassign moves the employee to a new department and/or position.
func (u *EmployeeUsecase) Reassign(id uint, departmentID, positionID *uint) (*model.Employee, error) {
	emp, err := u.employees.FindByID(id, repository.ListOptions{})
	if err != nil {
		return nil, err
	}
	if departmentID != nil {
		emp.DepartmentID = departmentID
	}
	if positionID != nil {
		emp.PositionID = positionID
	}
	if err := u.employees.Update(emp); err != nil {
		return nil, err
	}
	return emp, nil
}

// Terminate soft-deletes the employee; history stays queryable through
// unscoped reads and the record can be restored.
func (u *EmployeeUsecase) Terminate(id uint) error {
	return u.employees.Terminate(id)
}

// Purge hard-deletes the employee and cascades to salary, attendance and
// leave rows.
func (u *EmployeeUsecase) Purge(id uint) error {
	return u.employees.HardDelete(id)
}
