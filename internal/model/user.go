package model

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleManager  UserRole = "manager"
	RoleEmployee UserRole = "employee"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// CanApproveLeaves reports whether the role carries approval capability.
func (r UserRole) CanApproveLeaves() bool {
	return r == RoleAdmin || r == RoleManager
}

type User struct {
	gorm.Model
	EmployeeID   *uint      `json:"employee_id" gorm:"unique"`
	Username     string     `json:"username" gorm:"size:50;unique;not null"`
	Email        string     `json:"email" gorm:"size:100;unique;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"`
	Role         UserRole   `json:"role" gorm:"size:20;not null;default:employee;index"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	LastLogin    *time.Time `json:"last_login"`

	// Relasi
	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}
