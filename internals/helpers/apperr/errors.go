// Package apperr holds the error taxonomy of the classroom data layer and
// translates driver errors (pgx, lib/pq, gorm, sqlite) into it.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	ErrUniqueViolation    = errors.New("uniqueness violation")
	ErrReferenceNotFound  = errors.New("referenced record not found")
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// SQLSTATE codes we care about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
	pgProgramLimit        = "54000" // e.g. index row size exceeds btree maximum
)

// ValidationError carries field → rule pairs. It matches ErrValidation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidation.Error() + " (" + strings.Join(parts, ", ") + ")"
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Validation builds a single-field ValidationError.
func Validation(field, rule string) error {
	return &ValidationError{Fields: map[string]string{field: rule}}
}

// FromValidator converts validator.ValidationErrors into a ValidationError.
func FromValidator(err error) error {
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		rule := fe.Tag()
		if p := fe.Param(); p != "" {
			rule += "=" + p
		}
		fields[fe.Field()] = rule
	}
	return &ValidationError{Fields: fields}
}

// FromDB maps storage errors onto the sentinels above. Errors that are
// already classified pass through unchanged.
func FromDB(err error) error {
	if err == nil {
		return nil
	}
	if isClassified(err) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	// pgx
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		if s := fromSQLState(pgxErr.Code); s != nil {
			return fmt.Errorf("%w: %s", s, constraintDetail(pgxErr.ConstraintName, pgxErr.Message))
		}
		return err
	}
	// lib/pq
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if s := fromSQLState(string(pqErr.Code)); s != nil {
			return fmt.Errorf("%w: %s", s, constraintDetail(pqErr.Constraint, pqErr.Message))
		}
		return err
	}

	// gorm TranslateError
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", ErrReferenceNotFound, err)
	}

	// message fallback (sqlite and untranslated drivers)
	s := strings.ToLower(err.Error())
	switch {
	case strings.Contains(s, "duplicate key"),
		strings.Contains(s, "unique constraint"),
		strings.Contains(s, "sqlstate "+pgUniqueViolation):
		return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
	case strings.Contains(s, "foreign key constraint"),
		strings.Contains(s, "sqlstate "+pgForeignKeyViolation):
		return fmt.Errorf("%w: %w", ErrReferenceNotFound, err)
	case strings.Contains(s, "check constraint"),
		strings.Contains(s, "sqlstate "+pgCheckViolation):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return err
}

func fromSQLState(code string) error {
	switch code {
	case pgUniqueViolation:
		return ErrUniqueViolation
	case pgForeignKeyViolation:
		return ErrReferenceNotFound
	case pgCheckViolation, pgNotNullViolation, pgProgramLimit:
		return ErrValidation
	}
	return nil
}

func constraintDetail(constraint, msg string) string {
	if constraint != "" {
		return constraint
	}
	return msg
}

func isClassified(err error) bool {
	return errors.Is(err, ErrUniqueViolation) ||
		errors.Is(err, ErrReferenceNotFound) ||
		errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidCredentials)
}

// HTTPStatus gives the request layer a status code for err.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrUniqueViolation):
		return http.StatusConflict
	case errors.Is(err, ErrReferenceNotFound):
		return http.StatusBadRequest
	case errors.Is(err, ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
