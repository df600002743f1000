package model

import (
	"time"

	"gorm.io/gorm"
)

// Salary is append-mostly: a raise closes the open row (sets EffectiveTo)
// and inserts a new open-ended one. At most one row per employee may have
// EffectiveTo = nil.
type Salary struct {
	gorm.Model
	EmployeeID    uint       `json:"employee_id" gorm:"not null;index"`
	BaseSalary    float64    `json:"base_salary" gorm:"type:decimal(15,2);not null"`
	EffectiveFrom time.Time  `json:"effective_from" gorm:"type:date;not null;index"`
	EffectiveTo   *time.Time `json:"effective_to" gorm:"type:date;index"`

	// Relasi
	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

// Covers reports whether the row is effective on the given date.
func (s *Salary) Covers(d time.Time) bool {
	if d.Before(s.EffectiveFrom) {
		return false
	}
	return s.EffectiveTo == nil || !s.EffectiveTo.Before(d)
}
