package model

import (
	"time"

	"gorm.io/gorm"
)

type AttendanceStatus string

const (
	AttendancePresent    AttendanceStatus = "present"
	AttendanceAbsent     AttendanceStatus = "absent"
	AttendanceLate       AttendanceStatus = "late"
	AttendanceHalfDay    AttendanceStatus = "half_day"
	AttendanceEarlyLeave AttendanceStatus = "early_leave"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceHalfDay, AttendanceEarlyLeave:
		return true
	}
	return false
}

type Attendance struct {
	gorm.Model
	EmployeeID   uint             `json:"employee_id" gorm:"not null;uniqueIndex:uq_employee_date"`
	Date         time.Time        `json:"date" gorm:"type:date;not null;uniqueIndex:uq_employee_date;index"`
	CheckInTime  *time.Time       `json:"check_in_time"`
	CheckOutTime *time.Time       `json:"check_out_time"`
	Status       AttendanceStatus `json:"status" gorm:"size:20;not null;default:present;index"`

	// Relasi
	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}
