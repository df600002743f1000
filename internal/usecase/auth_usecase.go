package usecase

import (
	"strings"
	"time"

	"hrm-backend/config"
	"hrm-backend/internal/apperror"
	"hrm-backend/internal/model"
	"hrm-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase struct {
	users repository.UserRepository
	cfg   config.Config
}

func NewAuthUsecase(users repository.UserRepository, cfg config.Config) *AuthUsecase {
	return &AuthUsecase{users: users, cfg: cfg}
}

func (u *AuthUsecase) Register(username, email, password string, role model.UserRole, employeeID *uint) (*model.User, error) {
	if !role.Valid() {
		return nil, apperror.InvalidValue("user_role", "unknown role: "+string(role))
	}
	if len(password) < 8 {
		return nil, apperror.InvalidValue("password_length", "password must be at least 8 characters")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), u.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     strings.ToLower(username),
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
		IsActive:     true,
		EmployeeID:   employeeID,
	}
	if err := u.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns a signed token plus the user.
func (u *AuthUsecase) Login(username, password string) (string, *model.User, error) {
	user, err := u.users.FindByUsername(strings.ToLower(username))
	if err != nil {
		if apperror.Is(err, apperror.CodeNotFound) {
			return "", nil, apperror.Unauthorized("invalid credentials")
		}
		return "", nil, err
	}

	if !user.IsActive {
		return "", nil, apperror.Unauthorized("account is disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperror.Unauthorized("invalid credentials")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     now.Add(u.cfg.JWTExpiry).Unix(),
	}
	if user.EmployeeID != nil {
		claims["employee_id"] = *user.EmployeeID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(u.cfg.JWTSecret))
	if err != nil {
		return "", nil, err
	}

	// Best-effort; a failed timestamp update must not fail the login.
	_ = u.users.TouchLastLogin(user.ID, now)

	return signed, user, nil
}
