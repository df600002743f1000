package usecase

import (
	"testing"
	"time"

	"hrm-backend/internal/apperror"
	"hrm-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAttendanceFixture(t *testing.T) (*AttendanceUsecase, *model.Employee, *fakeAttendanceRepo) {
	t.Helper()
	emps := newFakeEmployeeRepo()
	emp := emps.add(&model.Employee{EmployeeCode: "EMP001", Email: "ana@example.com"})
	atts := newFakeAttendanceRepo()
	return NewAttendanceUsecase(atts, emps, "08:00"), emp, atts
}

func TestAttendanceCheckIn(t *testing.T) {
	workday := day(2024, 6, 3)

	t.Run("on time is present", func(t *testing.T) {
		uc, emp, _ := newAttendanceFixture(t)

		at := time.Date(2024, 6, 3, 7, 55, 0, 0, time.UTC)
		att, err := uc.CheckIn(emp.ID, workday, at)
		require.NoError(t, err)
		assert.Equal(t, model.AttendancePresent, att.Status)
		require.NotNil(t, att.CheckInTime)
		assert.Equal(t, at, *att.CheckInTime)
	})

	t.Run("after cutoff is late", func(t *testing.T) {
		uc, emp, _ := newAttendanceFixture(t)

		at := time.Date(2024, 6, 3, 8, 15, 0, 0, time.UTC)
		att, err := uc.CheckIn(emp.ID, workday, at)
		require.NoError(t, err)
		assert.Equal(t, model.AttendanceLate, att.Status)
	})

	t.Run("exactly at cutoff is present", func(t *testing.T) {
		uc, emp, _ := newAttendanceFixture(t)

		at := time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)
		att, err := uc.CheckIn(emp.ID, workday, at)
		require.NoError(t, err)
		assert.Equal(t, model.AttendancePresent, att.Status)
	})

	t.Run("second check-in same day rejected", func(t *testing.T) {
		uc, emp, _ := newAttendanceFixture(t)

		_, err := uc.CheckIn(emp.ID, workday, time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		_, err = uc.CheckIn(emp.ID, workday, time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC))
		assert.Equal(t, apperror.CodeConstraintViolation, apperror.GetCode(err))
	})

	t.Run("missing employee", func(t *testing.T) {
		uc, _, _ := newAttendanceFixture(t)

		_, err := uc.CheckIn(999, workday, time.Now())
		assert.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
	})
}

func TestAttendanceCheckOut(t *testing.T) {
	workday := day(2024, 6, 3)

	t.Run("closes the day", func(t *testing.T) {
		uc, emp, _ := newAttendanceFixture(t)

		_, err := uc.CheckIn(emp.ID, workday, time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		out := time.Date(2024, 6, 3, 17, 0, 0, 0, time.UTC)
		att, err := uc.CheckOut(emp.ID, workday, out)
		require.NoError(t, err)
		require.NotNil(t, att.CheckOutTime)
		assert.Equal(t, out, *att.CheckOutTime)
	})

	t.Run("double check-out rejected", func(t *testing.T) {
		uc, emp, _ := newAttendanceFixture(t)

		_, err := uc.CheckIn(emp.ID, workday, time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		_, err = uc.CheckOut(emp.ID, workday, time.Date(2024, 6, 3, 17, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		_, err = uc.CheckOut(emp.ID, workday, time.Date(2024, 6, 3, 18, 0, 0, 0, time.UTC))
		assert.Equal(t, apperror.CodeInvalidStateTransition, apperror.GetCode(err))
	})

	t.Run("without check-in", func(t *testing.T) {
		uc, emp, _ := newAttendanceFixture(t)

		_, err := uc.CheckOut(emp.ID, workday, time.Now())
		assert.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
	})
}

func TestAttendanceRecord(t *testing.T) {
	uc, emp, _ := newAttendanceFixture(t)

	err := uc.Record(&model.Attendance{
		EmployeeID: emp.ID,
		Date:       day(2024, 6, 4),
		Status:     model.AttendanceStatus("vacationing"),
	})
	assert.Equal(t, apperror.CodeInvalidValue, apperror.GetCode(err))

	err = uc.Record(&model.Attendance{
		EmployeeID: emp.ID,
		Date:       day(2024, 6, 4),
		Status:     model.AttendanceAbsent,
	})
	assert.NoError(t, err)
}

func TestAttendanceMonthlyReport(t *testing.T) {
	uc, emp, atts := newAttendanceFixture(t)

	in1 := time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)
	out1 := time.Date(2024, 6, 3, 17, 0, 0, 0, time.UTC)
	in2 := time.Date(2024, 6, 4, 9, 0, 0, 0, time.UTC)
	out2 := time.Date(2024, 6, 4, 17, 30, 0, 0, time.UTC)
	require.NoError(t, atts.Create(&model.Attendance{
		EmployeeID: emp.ID, Date: day(2024, 6, 3),
		CheckInTime: &in1, CheckOutTime: &out1,
		Status: model.AttendancePresent,
	}))
	require.NoError(t, atts.Create(&model.Attendance{
		EmployeeID: emp.ID, Date: day(2024, 6, 4),
		CheckInTime: &in2, CheckOutTime: &out2,
		Status: model.AttendanceLate,
	}))
	require.NoError(t, atts.Create(&model.Attendance{
		EmployeeID: emp.ID, Date: day(2024, 6, 5),
		Status: model.AttendanceAbsent,
	}))
	// Outside the requested month.
	require.NoError(t, atts.Create(&model.Attendance{
		EmployeeID: emp.ID, Date: day(2024, 7, 1),
		Status: model.AttendancePresent,
	}))

	report, err := uc.MonthlyReport(emp.ID, 2024, time.June)
	require.NoError(t, err)
	assert.Equal(t, 3, report.TotalDays)
	assert.Equal(t, 1, report.PresentDays)
	assert.Equal(t, 1, report.LateDays)
	assert.Equal(t, 1, report.AbsentDays)
	assert.Equal(t, 0, report.HalfDays)
	assert.InDelta(t, 17.5, report.WorkingHours, 0.001)
}
