package database

import (
	"time"

	"hrm-backend/internal/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAll provisions the baseline master data and the first admin account.
// Every step is idempotent (FirstOrCreate).
func SeedAll(db *gorm.DB) {
	// 1. Departments
	departments := []model.Department{
		{Name: "Engineering"},
		{Name: "Human Resources"},
		{Name: "Finance"},
	}
	for i := range departments {
		db.FirstOrCreate(&departments[i], model.Department{Name: departments[i].Name})
	}

	// 2. Positions
	positions := []model.Position{
		{Title: "Software Engineer", Code: "SE", Level: model.LevelJunior},
		{Title: "Senior Software Engineer", Code: "SSE", Level: model.LevelSenior},
		{Title: "Engineering Manager", Code: "EM", Level: model.LevelManager},
		{Title: "HR Specialist", Code: "HRS", Level: model.LevelJunior},
	}
	for i := range positions {
		db.FirstOrCreate(&positions[i], model.Position{Code: positions[i].Code})
	}

	// 3. First admin account
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)

	admin := model.User{
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: string(hashedPassword),
		Role:         model.RoleAdmin,
		IsActive:     true,
	}
	result := db.FirstOrCreate(&admin, model.User{Username: admin.Username})
	if result.Error == nil {
		// Keep the password in sync with "admin123" even if the row existed.
		db.Model(&admin).Update("password_hash", string(hashedPassword))
		logrus.Info("admin account seeded")
	}

	// 4. A sample employee with an opening salary, for local development
	emp := model.Employee{
		EmployeeCode:     "EMP-" + uuid.NewString()[:8],
		FullName:         "Sample Employee",
		Email:            "sample@example.com",
		DepartmentID:     &departments[0].ID,
		PositionID:       &positions[0].ID,
		EmploymentStatus: model.EmploymentActive,
	}
	result = db.FirstOrCreate(&emp, model.Employee{Email: emp.Email})
	if result.Error == nil && result.RowsAffected > 0 {
		db.Create(&model.Salary{
			EmployeeID:    emp.ID,
			BaseSalary:    1000,
			EffectiveFrom: time.Now().Truncate(24 * time.Hour),
		})
	}
}
