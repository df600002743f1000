package apperror

import (
	"context"
	"database/sql/driver"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// MySQL server error numbers that map onto the error taxonomy.
const (
	mysqlDupEntry        = 1062
	mysqlNoReferencedRow = 1452
	mysqlRowIsReferenced = 1451
	mysqlCheckViolated   = 3819
	mysqlBadNull         = 1048
)

// FromDB translates a gorm/driver error into a typed application error.
// entity is used for not-found messages ("employee not found").
func FromDB(err error, entity string) error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(entity + " not found")
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlDupEntry:
			return ConstraintViolation(dupKeyName(mysqlErr.Message), entity+": duplicate value for unique constraint")
		case mysqlNoReferencedRow, mysqlRowIsReferenced:
			return ConstraintViolation("foreign_key", entity+": referential integrity violated")
		case mysqlCheckViolated:
			return InvalidValue(checkName(mysqlErr.Message), entity+": check constraint violated")
		case mysqlBadNull:
			return InvalidValue("not_null", entity+": column must not be null")
		}
	}

	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, mysql.ErrInvalidConn) {
		return Unavailable("database unavailable", err)
	}

	return &Error{Code: CodeInternal, Message: entity + ": " + err.Error(), Err: err}
}

// dupKeyName pulls the index name out of a MySQL duplicate-entry message,
// e.g. `Duplicate entry 'x' for key 'employees.uni_employees_email'`.
func dupKeyName(msg string) string {
	const marker = "for key '"
	i := strings.Index(msg, marker)
	if i < 0 {
		return "unique"
	}
	name := msg[i+len(marker):]
	if j := strings.IndexByte(name, '\''); j >= 0 {
		name = name[:j]
	}
	// Strip the table qualifier MySQL 8 prepends.
	if j := strings.LastIndexByte(name, '.'); j >= 0 {
		name = name[j+1:]
	}
	return name
}

// checkName pulls the constraint name out of a MySQL 8 check-violation
// message, e.g. `Check constraint 'chk_salary_positive' is violated.`
func checkName(msg string) string {
	i := strings.IndexByte(msg, '\'')
	if i < 0 {
		return "check"
	}
	name := msg[i+1:]
	if j := strings.IndexByte(name, '\''); j >= 0 {
		name = name[:j]
	}
	return name
}
