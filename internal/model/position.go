package model

import "gorm.io/gorm"

type PositionLevel string

const (
	LevelJunior    PositionLevel = "junior"
	LevelSenior    PositionLevel = "senior"
	LevelManager   PositionLevel = "manager"
	LevelDirector  PositionLevel = "director"
	LevelExecutive PositionLevel = "executive"
)

func (l PositionLevel) Valid() bool {
	switch l {
	case LevelJunior, LevelSenior, LevelManager, LevelDirector, LevelExecutive:
		return true
	}
	return false
}

type Position struct {
	gorm.Model
	Title       string        `json:"title" gorm:"size:100;not null;index"`
	Code        string        `json:"code" gorm:"size:20;unique;not null"`
	Level       PositionLevel `json:"level" gorm:"size:20;not null;index"`
	Description string        `json:"description" gorm:"type:text"`

	// Relasi
	Employees []Employee `json:"employees,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}
