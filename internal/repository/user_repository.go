package repository

import (
	"time"

	"hrm-backend/internal/apperror"
	"hrm-backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByEmployeeID(employeeID uint) (*model.User, error)
	GetAll(role *model.UserRole, isActive *bool, opts ListOptions) ([]model.User, error)
	Update(user *model.User) error
	TouchLastLogin(id uint, at time.Time) error
	Delete(id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) Create(user *model.User) error {
	return apperror.FromDB(r.db.Create(user).Error, "user")
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.Preload("Employee").First(&user, id).Error; err != nil {
		return nil, apperror.FromDB(err, "user")
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Preload("Employee").Where("username = ?", username).First(&user).Error; err != nil {
		return nil, apperror.FromDB(err, "user")
	}
	return &user, nil
}

func (r *userRepository) FindByEmployeeID(employeeID uint) (*model.User, error) {
	var user model.User
	if err := r.db.Where("employee_id = ?", employeeID).First(&user).Error; err != nil {
		return nil, apperror.FromDB(err, "user")
	}
	return &user, nil
}

func (r *userRepository) GetAll(role *model.UserRole, isActive *bool, opts ListOptions) ([]model.User, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, err
	}

	query := r.db.Preload("Employee")
	if role != nil {
		query = query.Where("role = ?", *role)
	}
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}

	var users []model.User
	err = query.Order("username asc").Order("id asc").
		Offset(opts.Skip).Limit(opts.Limit).
		Find(&users).Error
	if err != nil {
		return nil, apperror.FromDB(err, "user")
	}
	return users, nil
}

func (r *userRepository) Update(user *model.User) error {
	return apperror.FromDB(r.db.Save(user).Error, "user")
}

func (r *userRepository) TouchLastLogin(id uint, at time.Time) error {
	err := r.db.Model(&model.User{}).Where("id = ?", id).
		Update("last_login", at).Error
	return apperror.FromDB(err, "user")
}

func (r *userRepository) Delete(id uint) error {
	res := r.db.Delete(&model.User{}, id)
	if res.Error != nil {
		return apperror.FromDB(res.Error, "user")
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("user not found")
	}
	return nil
}
