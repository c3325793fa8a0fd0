package helper

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

/* ===============================
   Error taxonomy
   ValidationError  → 422, re-render form
   NotFoundError    → 404, view error
   lainnya          → 500 (StoreError)
=================================*/

// ValidationError membawa SEMUA pelanggaran field sekaligus, bukan hanya
// yang pertama, supaya form bisa menampilkan daftar lengkap.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsUniqueViolation mengecek pelanggaran unique constraint. Driver
// Postgres (pgx) mengembalikan pgconn.PgError code 23505; fallback
// string matching untuk driver lain.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
