package apperror

import "errors"

type Code string

const (
	CodeNotFound               Code = "not_found"
	CodeConstraintViolation    Code = "constraint_violation"
	CodeInvalidValue           Code = "invalid_value"
	CodeInvalidStateTransition Code = "invalid_state_transition"
	CodeUnavailable            Code = "unavailable"
	CodeForbidden              Code = "forbidden"
	CodeUnauthorized           Code = "unauthorized"
	CodeInternal               Code = "internal"
)

type Error struct {
	Code    Code
	Message string
	// Constraint names the violated constraint for constraint_violation
	// and invalid_value errors, empty otherwise.
	Constraint string
	Err        error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func ConstraintViolation(constraint, message string) *Error {
	return &Error{Code: CodeConstraintViolation, Message: message, Constraint: constraint}
}

func InvalidValue(constraint, message string) *Error {
	return &Error{Code: CodeInvalidValue, Message: message, Constraint: constraint}
}

func InvalidStateTransition(message string) *Error {
	return &Error{Code: CodeInvalidStateTransition, Message: message}
}

func Unavailable(message string, err error) *Error {
	return &Error{Code: CodeUnavailable, Message: message, Err: err}
}

func Forbidden(message string) *Error {
	return &Error{Code: CodeForbidden, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Code: CodeUnauthorized, Message: message}
}

func GetCode(err error) Code {
	if err == nil {
		return ""
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return CodeInternal
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return GetCode(err) == code
}
