package usecase

import (
	"time"

	"hrm-backend/internal/apperror"
	"hrm-backend/internal/model"
	"hrm-backend/internal/repository"
)

// MonthlyAttendanceReport summarizes one employee's calendar month.
type MonthlyAttendanceReport struct {
	EmployeeID   uint               `json:"employee_id"`
	Year         int                `json:"year"`
	Month        int                `json:"month"`
	TotalDays    int                `json:"total_days"`
	PresentDays  int                `json:"present_days"`
	LateDays     int                `json:"late_days"`
	AbsentDays   int                `json:"absent_days"`
	HalfDays     int                `json:"half_days"`
	WorkingHours float64            `json:"working_hours"`
	Attendances  []model.Attendance `json:"attendances"`
}

type AttendanceUsecase struct {
	attendances  repository.AttendanceRepository
	employees    repository.EmployeeRepository
	workdayStart string
}

func NewAttendanceUsecase(attendances repository.AttendanceRepository, employees repository.EmployeeRepository, workdayStart string) *AttendanceUsecase {
	return &AttendanceUsecase{attendances: attendances, employees: employees, workdayStart: workdayStart}
}

// CheckIn records the day's attendance. Arriving after the configured
// workday start marks the row late. A second check-in the same day fails
// with a constraint violation from the store.
func (u *AttendanceUsecase) CheckIn(employeeID uint, day time.Time, at time.Time) (*model.Attendance, error) {
	if _, err := u.employees.FindByID(employeeID, repository.ListOptions{}); err != nil {
		return nil, err
	}

	status := model.AttendancePresent
	if start, err := time.Parse("15:04", u.workdayStart); err == nil {
		cutoff := time.Date(day.Year(), day.Month(), day.Day(), start.Hour(), start.Minute(), 0, 0, at.Location())
		if at.After(cutoff) {
			status = model.AttendanceLate
		}
	}

	att := &model.Attendance{
		EmployeeID:  employeeID,
		Date:        day,
		CheckInTime: &at,
		Status:      status,
	}
	if err := u.attendances.Create(att); err != nil {
		return nil, err
	}
	return att, nil
}

// CheckOut closes the day's record.
func (u *AttendanceUsecase) CheckOut(employeeID uint, day time.Time, at time.Time) (*model.Attendance, error) {
	att, err := u.attendances.GetByEmployeeAndDate(employeeID, day)
	if err != nil {
		return nil, err
	}
	if att.CheckOutTime != nil {
		return nil, apperror.InvalidStateTransition("already checked out")
	}
	att.CheckOutTime = &at
	if err := u.attendances.Update(att); err != nil {
		return nil, err
	}
	return att, nil
}

// Record inserts an attendance row as given (bulk/backoffice path).
func (u *AttendanceUsecase) Record(att *model.Attendance) error {
	if !att.Status.Valid() {
		return apperror.InvalidValue("attendance_status", "unknown status: "+string(att.Status))
	}
	return u.attendances.Create(att)
}

func (u *AttendanceUsecase) Monthly(employeeID uint, year int, month time.Month) ([]model.Attendance, error) {
	return u.attendances.GetByMonth(employeeID, year, month)
}

func (u *AttendanceUsecase) History(employeeID uint, from, to *time.Time, opts repository.ListOptions) ([]model.Attendance, error) {
	return u.attendances.GetByEmployee(employeeID, from, to, opts)
}

// MonthlyReport aggregates counts and worked hours for one month.
func (u *AttendanceUsecase) MonthlyReport(employeeID uint, year int, month time.Month) (*MonthlyAttendanceReport, error) {
	list, err := u.attendances.GetByMonth(employeeID, year, month)
	if err != nil {
		return nil, err
	}

	report := &MonthlyAttendanceReport{
		EmployeeID:  employeeID,
		Year:        year,
		Month:       int(month),
		TotalDays:   len(list),
		Attendances: list,
	}
	for _, att := range list {
		switch att.Status {
		case model.AttendancePresent:
			report.PresentDays++
		case model.AttendanceLate:
			report.LateDays++
		case model.AttendanceAbsent:
			report.AbsentDays++
		case model.AttendanceHalfDay:
			report.HalfDays++
		}
		if att.CheckInTime != nil && att.CheckOutTime != nil {
			report.WorkingHours += att.CheckOutTime.Sub(*att.CheckInTime).Hours()
		}
	}
	return report, nil
}

func (u *AttendanceUsecase) Stats(filters repository.AttendanceFilters) (map[model.AttendanceStatus]int64, error) {
	return u.attendances.CountByStatus(filters)
}
