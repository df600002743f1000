package usecase

import (
	"testing"
	"time"

	"hrm-backend/internal/apperror"
	"hrm-backend/internal/model"
	"hrm-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalaryGrantValidation(t *testing.T) {
	emps := newFakeEmployeeRepo()
	emp := emps.add(&model.Employee{EmployeeCode: "EMP001", Email: "ana@example.com"})
	uc := NewSalaryUsecase(newFakeSalaryRepo(), emps)

	t.Run("non positive amount", func(t *testing.T) {
		_, err := uc.Grant(emp.ID, 0, day(2024, 1, 1), nil)
		assert.Equal(t, apperror.CodeInvalidValue, apperror.GetCode(err))

		_, err = uc.Grant(emp.ID, -100, day(2024, 1, 1), nil)
		assert.Equal(t, apperror.CodeInvalidValue, apperror.GetCode(err))
	})

	t.Run("inverted range", func(t *testing.T) {
		to := day(2023, 12, 1)
		_, err := uc.Grant(emp.ID, 1000, day(2024, 1, 1), &to)
		assert.Equal(t, apperror.CodeInvalidValue, apperror.GetCode(err))
	})

	t.Run("missing employee", func(t *testing.T) {
		_, err := uc.Grant(999, 1000, day(2024, 1, 1), nil)
		assert.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
	})
}

func TestSalaryLifecycle(t *testing.T) {
	emps := newFakeEmployeeRepo()
	emp := emps.add(&model.Employee{
		EmployeeCode: "EMP001",
		Email:        "e1@x.com",
		FullName:     "Ana Silva",
	})
	uc := NewSalaryUsecase(newFakeSalaryRepo(), emps)

	granted, err := uc.Grant(emp.ID, 1000, day(2024, 1, 1), nil)
	require.NoError(t, err)
	assert.Nil(t, granted.EffectiveTo)

	current, err := uc.Current(emp.ID, day(2024, 6, 1))
	require.NoError(t, err)
	assert.Equal(t, granted.ID, current.ID)
	assert.Equal(t, 1000.0, current.BaseSalary)

	// A second open-ended row for the same employee is refused.
	_, err = uc.Grant(emp.ID, 1200, day(2024, 3, 1), nil)
	assert.Equal(t, apperror.CodeConstraintViolation, apperror.GetCode(err))

	// A raise closes the old row and opens a new one.
	raised, err := uc.Raise(emp.ID, 1500, day(2024, 7, 1))
	require.NoError(t, err)
	assert.Nil(t, raised.EffectiveTo)

	current, err = uc.Current(emp.ID, day(2024, 8, 1))
	require.NoError(t, err)
	assert.Equal(t, 1500.0, current.BaseSalary)

	// The superseded row still answers historical lookups.
	current, err = uc.Current(emp.ID, day(2024, 6, 1))
	require.NoError(t, err)
	assert.Equal(t, 1000.0, current.BaseSalary)

	history, err := uc.History(emp.ID, repository.ListOptions{})
	require.NoError(t, err)
	require.Len(t, history, 2)

	// The superseded row is closed on the raise date itself.
	for _, s := range history {
		if s.ID == granted.ID {
			require.NotNil(t, s.EffectiveTo)
			assert.Equal(t, day(2024, 7, 1), *s.EffectiveTo)
		}
	}
}

func TestSalaryCurrentBeforeFirstGrant(t *testing.T) {
	emps := newFakeEmployeeRepo()
	emp := emps.add(&model.Employee{EmployeeCode: "EMP001", Email: "ana@example.com"})
	salaries := newFakeSalaryRepo()
	uc := NewSalaryUsecase(salaries, emps)

	_, err := uc.Grant(emp.ID, 1000, day(2024, 1, 1), nil)
	require.NoError(t, err)

	_, err = uc.Current(emp.ID, day(2023, 12, 31))
	assert.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
}

func TestSalaryRaiseWithoutOpenRow(t *testing.T) {
	emps := newFakeEmployeeRepo()
	emp := emps.add(&model.Employee{EmployeeCode: "EMP001", Email: "ana@example.com"})
	uc := NewSalaryUsecase(newFakeSalaryRepo(), emps)

	// No salary on record yet: the raise simply opens the first row.
	raised, err := uc.Raise(emp.ID, 1500, day(2024, 7, 1))
	require.NoError(t, err)
	assert.Nil(t, raised.EffectiveTo)
	assert.Equal(t, day(2024, 7, 1), raised.EffectiveFrom)

	current, err := uc.Current(emp.ID, day(2024, 8, 1))
	require.NoError(t, err)
	assert.Equal(t, 1500.0, current.BaseSalary)
}

func TestSalaryCoversBoundaries(t *testing.T) {
	to := day(2024, 6, 30)
	s := model.Salary{EffectiveFrom: day(2024, 1, 1), EffectiveTo: &to}

	assert.True(t, s.Covers(day(2024, 1, 1)))
	assert.True(t, s.Covers(day(2024, 6, 30)))
	assert.False(t, s.Covers(day(2023, 12, 31)))
	assert.False(t, s.Covers(day(2024, 7, 1)))

	open := model.Salary{EffectiveFrom: day(2024, 1, 1)}
	assert.True(t, open.Covers(day(2030, 1, 1)))
}

func TestSalaryCurrentDefaultsToNow(t *testing.T) {
	emps := newFakeEmployeeRepo()
	emp := emps.add(&model.Employee{EmployeeCode: "EMP001", Email: "ana@example.com"})
	uc := NewSalaryUsecase(newFakeSalaryRepo(), emps)

	_, err := uc.Grant(emp.ID, 2000, day(2020, 1, 1), nil)
	require.NoError(t, err)

	current, err := uc.Current(emp.ID, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 2000.0, current.BaseSalary)
}
