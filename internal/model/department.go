package model

import "gorm.io/gorm"

type Department struct {
	gorm.Model
	Name string `json:"name" gorm:"size:100;unique;not null;index"`

	// Relasi
	Employees []Employee `json:"employees,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}
