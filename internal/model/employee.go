package model

import "gorm.io/gorm"

type EmploymentStatus string

const (
	EmploymentActive     EmploymentStatus = "active"
	EmploymentTerminated EmploymentStatus = "terminated"
)

type Employee struct {
	gorm.Model
	EmployeeCode     string           `json:"employee_code" gorm:"size:20;unique;not null"`
	FullName         string           `json:"full_name" gorm:"size:100;not null;index"`
	Email            string           `json:"email" gorm:"size:100;unique;not null"`
	Phone            string           `json:"phone" gorm:"size:20"`
	DepartmentID     *uint            `json:"department_id" gorm:"index"`
	PositionID       *uint            `json:"position_id" gorm:"index"`
	EmploymentStatus EmploymentStatus `json:"employment_status" gorm:"size:20;not null;default:active;index"`

	// Relasi
	Department  *Department  `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
	Position    *Position    `json:"position,omitempty" gorm:"foreignKey:PositionID"`
	User        *User        `json:"user,omitempty" gorm:"foreignKey:EmployeeID"`
	Salaries    []Salary     `json:"salaries,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Attendances []Attendance `json:"attendances,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Leaves      []Leave      `json:"leaves,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}
