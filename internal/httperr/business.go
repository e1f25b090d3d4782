package httperr

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// BusinessError is a user-correctable failure carrying its own HTTP status.
type BusinessError struct {
	Code    string
	Message string
	Status  int
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code, Status: http.StatusBadRequest}
}

func NewBusiness(status int, code, message string) BusinessError {
	return BusinessError{Code: code, Message: message, Status: status}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// IsUniqueViolation reports whether err is a PostgreSQL unique or exclusion
// constraint failure, optionally restricted to the named constraint.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != pgUniqueViolation && pgErr.Code != pgExclusionViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
