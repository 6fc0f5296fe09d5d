package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotFound indicates a referenced entity is absent
var ErrNotFound = errors.New("not found")

// ConstraintViolationError indicates a unique or foreign-key constraint was
// violated by a write
type ConstraintViolationError struct {
	Constraint string
	Err        error
}

// Error implements the error interface
func (e *ConstraintViolationError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("constraint violation on %s: %v", e.Constraint, e.Err)
	}
	return fmt.Sprintf("constraint violation: %v", e.Err)
}

// Unwrap returns the underlying driver error
func (e *ConstraintViolationError) Unwrap() error {
	return e.Err
}

// ValidationError indicates a value outside an enumerated choice set or
// exceeding a declared length bound
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// Translate maps store and driver errors onto the error taxonomy. Errors
// outside the taxonomy pass through unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &ConstraintViolationError{Constraint: constraintName(err), Err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		return &ConstraintViolationError{Constraint: pgErr.ConstraintName, Err: err}
	}

	return err
}

func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// IsNotFound reports whether err is a NotFound error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConstraintViolation reports whether err is a ConstraintViolation error
func IsConstraintViolation(err error) bool {
	var cv *ConstraintViolationError
	return errors.As(err, &cv)
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
