package repository

import (
	"hrm-backend/internal/apperror"
	"hrm-backend/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(emp *model.Employee) error
	CreateWithInitialSalary(emp *model.Employee, salary *model.Salary) error
	FindByID(id uint, opts ListOptions) (*model.Employee, error)
	FindByCode(code string) (*model.Employee, error)
	FindByEmail(email string) (*model.Employee, error)
	GetAll(search string, opts ListOptions) ([]model.Employee, error)
	GetByDepartmentAndStatus(departmentID uint, status model.EmploymentStatus, opts ListOptions) ([]model.Employee, error)
	Update(emp *model.Employee) error
	Terminate(id uint) error
	HardDelete(id uint) error
	Count() (int64, error)
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db}
}

func (r *employeeRepository) withIncludes(opts ListOptions) *gorm.DB {
	query := r.db
	if opts.IncludeDepartment {
		query = query.Preload("Department")
	}
	if opts.IncludePosition {
		query = query.Preload("Position")
	}
	return query
}

func (r *employeeRepository) Create(emp *model.Employee) error {
	return apperror.FromDB(r.db.Create(emp).Error, "employee")
}

// CreateWithInitialSalary inserts the employee and its first salary row in
// one transaction; neither becomes visible unless both succeed.
func (r *employeeRepository) CreateWithInitialSalary(emp *model.Employee, salary *model.Salary) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(emp).Error; err != nil {
			return apperror.FromDB(err, "employee")
		}
		salary.EmployeeID = emp.ID
		if err := tx.Create(salary).Error; err != nil {
			return apperror.FromDB(err, "salary")
		}
		return nil
	})
	return err
}

func (r *employeeRepository) FindByID(id uint, opts ListOptions) (*model.Employee, error) {
	var emp model.Employee
	if err := r.withIncludes(opts).First(&emp, id).Error; err != nil {
		return nil, apperror.FromDB(err, "employee")
	}
	return &emp, nil
}

func (r *employeeRepository) FindByCode(code string) (*model.Employee, error) {
	var emp model.Employee
	if err := r.db.Where("employee_code = ?", code).First(&emp).Error; err != nil {
		return nil, apperror.FromDB(err, "employee")
	}
	return &emp, nil
}

func (r *employeeRepository) FindByEmail(email string) (*model.Employee, error) {
	var emp model.Employee
	if err := r.db.Where("email = ?", email).First(&emp).Error; err != nil {
		return nil, apperror.FromDB(err, "employee")
	}
	return &emp, nil
}

// GetAll returns a stable page; search does a case-insensitive substring
// match over name and email.
func (r *employeeRepository) GetAll(search string, opts ListOptions) ([]model.Employee, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, err
	}

	query := r.withIncludes(opts)
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("full_name LIKE ? OR email LIKE ?", pattern, pattern)
	}

	var employees []model.Employee
	err = query.Order("full_name asc").Order("id asc").
		Offset(opts.Skip).Limit(opts.Limit).
		Find(&employees).Error
	if err != nil {
		return nil, apperror.FromDB(err, "employee")
	}
	return employees, nil
}

func (r *employeeRepository) GetByDepartmentAndStatus(departmentID uint, status model.EmploymentStatus, opts ListOptions) ([]model.Employee, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, err
	}

	var employees []model.Employee
	err = r.withIncludes(opts).
		Where("department_id = ? AND employment_status = ?", departmentID, status).
		Order("full_name asc").Order("id asc").
		Offset(opts.Skip).Limit(opts.Limit).
		Find(&employees).Error
	if err != nil {
		return nil, apperror.FromDB(err, "employee")
	}
	return employees, nil
}

func (r *employeeRepository) Update(emp *model.Employee) error {
	return apperror.FromDB(r.db.Save(emp).Error, "employee")
}

// Terminate marks the employee terminated and soft-deletes the row. The
// record stays recoverable; child rows are kept.
func (r *employeeRepository) Terminate(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Employee{}).Where("id = ?", id).
			Update("employment_status", model.EmploymentTerminated)
		if res.Error != nil {
			return apperror.FromDB(res.Error, "employee")
		}
		if res.RowsAffected == 0 {
			return apperror.NotFound("employee not found")
		}
		if err := tx.Delete(&model.Employee{}, id).Error; err != nil {
			return apperror.FromDB(err, "employee")
		}
		return nil
	})
}

// HardDelete removes the row permanently; salary, attendance and leave
// rows go with it via the store-level CASCADE.
func (r *employeeRepository) HardDelete(id uint) error {
	res := r.db.Unscoped().Delete(&model.Employee{}, id)
	if res.Error != nil {
		return apperror.FromDB(res.Error, "employee")
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("employee not found")
	}
	return nil
}

func (r *employeeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Employee{}).
		Where("employment_status = ?", model.EmploymentActive).
		Count(&count).Error
	return count, apperror.FromDB(err, "employee")
}
