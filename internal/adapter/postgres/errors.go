package postgres

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// wrapError maps driver failures to domain errors.
func wrapError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23502":
			err = fmt.Errorf("required field is missing: %s", pqErr.Column)
		case "23503":
			err = fmt.Errorf("referenced row does not exist: %s", pqErr.Constraint)
		case "23505":
			err = fmt.Errorf("duplicate row violates %s", pqErr.Constraint)
		case "23514":
			err = fmt.Errorf("check constraint %s failed", pqErr.Constraint)
		}
	}
	return &domain.PersistenceError{Op: op, Err: err}
}
