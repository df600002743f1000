package handler

import (
	"errors"

	"hrm-backend/internal/apperror"
	"hrm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// statusFor maps the error taxonomy onto HTTP status codes. This is the
// only place transport learns about error categories.
func statusFor(code apperror.Code) int {
	switch code {
	case apperror.CodeNotFound:
		return fiber.StatusNotFound
	case apperror.CodeConstraintViolation:
		return fiber.StatusConflict
	case apperror.CodeInvalidValue:
		return fiber.StatusBadRequest
	case apperror.CodeInvalidStateTransition:
		return fiber.StatusConflict
	case apperror.CodeForbidden:
		return fiber.StatusForbidden
	case apperror.CodeUnauthorized:
		return fiber.StatusUnauthorized
	case apperror.CodeUnavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	code := apperror.GetCode(err)
	payload := fiber.Map{"error": err.Error(), "code": string(code)}

	var appErr *apperror.Error
	if errors.As(err, &appErr) && appErr.Constraint != "" {
		payload["constraint"] = appErr.Constraint
	}

	return c.Status(statusFor(code)).JSON(payload)
}

func validationError(c *fiber.Ctx, err error) error {
	if ve, ok := err.(validator.ValidationErrors); ok {
		fields := make([]string, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, fe.Field()+": "+fe.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "validation failed",
			"fields": fields,
		})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
}

// parseListOptions reads skip/limit from the query string. Negative values
// are passed through so the repository can reject them.
func parseListOptions(c *fiber.Ctx) repository.ListOptions {
	return repository.ListOptions{
		Skip:              c.QueryInt("skip", 0),
		Limit:             c.QueryInt("limit", 0),
		IncludeDepartment: c.QueryBool("include_department", false),
		IncludePosition:   c.QueryBool("include_position", false),
	}
}
