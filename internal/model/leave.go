package model

import (
	"time"

	"gorm.io/gorm"
)

type LeaveType string

const (
	LeaveAnnual    LeaveType = "annual"
	LeaveSick      LeaveType = "sick"
	LeaveUnpaid    LeaveType = "unpaid"
	LeaveMaternity LeaveType = "maternity"
	LeavePaternity LeaveType = "paternity"
	LeaveEmergency LeaveType = "emergency"
	LeaveOther     LeaveType = "other"
)

func (t LeaveType) Valid() bool {
	switch t {
	case LeaveAnnual, LeaveSick, LeaveUnpaid, LeaveMaternity, LeavePaternity, LeaveEmergency, LeaveOther:
		return true
	}
	return false
}

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// CanTransitionTo encodes the approval state machine: pending is the only
// non-terminal state.
func (s LeaveStatus) CanTransitionTo(next LeaveStatus) bool {
	return s == LeavePending && (next == LeaveApproved || next == LeaveRejected)
}

type Leave struct {
	gorm.Model
	EmployeeID uint        `json:"employee_id" gorm:"not null;index"`
	LeaveType  LeaveType   `json:"leave_type" gorm:"size:20;not null;index"`
	StartDate  time.Time   `json:"start_date" gorm:"type:date;not null;index"`
	EndDate    time.Time   `json:"end_date" gorm:"type:date;not null;index"`
	TotalDays  int         `json:"total_days" gorm:"not null"`
	Reason     string      `json:"reason" gorm:"type:text"`
	Status     LeaveStatus `json:"status" gorm:"size:20;not null;default:pending;index"`
	ApprovedBy *uint       `json:"approved_by" gorm:"index"`
	ApprovedAt *time.Time  `json:"approved_at"`

	// Relasi
	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
	Approver *User     `json:"approver,omitempty" gorm:"foreignKey:ApprovedBy;constraint:OnDelete:SET NULL"`
}
