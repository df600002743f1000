package repository

import (
	"hrm-backend/internal/apperror"
	"hrm-backend/internal/model"

	"gorm.io/gorm"
)

type DepartmentRepository interface {
	Create(dept *model.Department) error
	FindByID(id uint) (*model.Department, error)
	FindByName(name string) (*model.Department, error)
	GetAll(opts ListOptions) ([]model.Department, error)
	Update(dept *model.Department) error
	Delete(id uint) error
	Count() (int64, error)
}

type departmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db}
}

func (r *departmentRepository) Create(dept *model.Department) error {
	return apperror.FromDB(r.db.Create(dept).Error, "department")
}

func (r *departmentRepository) FindByID(id uint) (*model.Department, error) {
	var dept model.Department
	if err := r.db.First(&dept, id).Error; err != nil {
		return nil, apperror.FromDB(err, "department")
	}
	return &dept, nil
}

func (r *departmentRepository) FindByName(name string) (*model.Department, error) {
	var dept model.Department
	if err := r.db.Where("name = ?", name).First(&dept).Error; err != nil {
		return nil, apperror.FromDB(err, "department")
	}
	return &dept, nil
}

func (r *departmentRepository) GetAll(opts ListOptions) ([]model.Department, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, err
	}

	var depts []model.Department
	err = r.db.Order("name asc").Order("id asc").
		Offset(opts.Skip).Limit(opts.Limit).
		Find(&depts).Error
	if err != nil {
		return nil, apperror.FromDB(err, "department")
	}
	return depts, nil
}

func (r *departmentRepository) Update(dept *model.Department) error {
	return apperror.FromDB(r.db.Save(dept).Error, "department")
}

// Delete removes the department; employees keep existing but their
// department_id is cleared (SET NULL at the store level).
func (r *departmentRepository) Delete(id uint) error {
	res := r.db.Unscoped().Delete(&model.Department{}, id)
	if res.Error != nil {
		return apperror.FromDB(res.Error, "department")
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("department not found")
	}
	return nil
}

func (r *departmentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Department{}).Count(&count).Error
	return count, apperror.FromDB(err, "department")
}
