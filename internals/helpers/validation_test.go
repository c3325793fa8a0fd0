package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Name   string `validate:"required,min=2,max=50"`
	Code   string `validate:"required,len=9,alphanum"`
	Indoor string `validate:"omitempty,max=5"`
}

func TestValidateStructCollectsAllViolations(t *testing.T) {
	msgs := ValidateStruct(&sampleForm{Name: "A", Code: "123"}, map[string]string{
		"Name": "nombre inválido",
		"Code": "código inválido",
	})
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs, "nombre inválido")
	assert.Contains(t, msgs, "código inválido")
}

func TestValidateStructFallbackMessage(t *testing.T) {
	msgs := ValidateStruct(&sampleForm{Name: "A", Code: "AB1234567"}, nil)
	require.Len(t, msgs, 1)
	assert.Equal(t, "El campo Name no es válido.", msgs[0])
}

func TestValidateStructValid(t *testing.T) {
	msgs := ValidateStruct(&sampleForm{Name: "María", Code: "AB1234567"}, nil)
	assert.Nil(t, msgs)
}

func TestErrorTaxonomy(t *testing.T) {
	ve := NewValidationError("uno", "dos")
	got, ok := AsValidationError(ve)
	require.True(t, ok)
	assert.Equal(t, []string{"uno", "dos"}, got.Messages)
	assert.Equal(t, "uno; dos", ve.Error())

	nf := NewNotFoundError("Paciente no encontrado.")
	assert.True(t, IsNotFound(nf))
	assert.False(t, IsNotFound(errors.New("otra cosa")))
	_, ok = AsValidationError(nf)
	assert.False(t, ok)
}

func TestIsUniqueViolationPgError(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "users_user_login_key"}
	assert.True(t, IsUniqueViolation(unique))
	// juga kalau sudah dibungkus di jalan
	assert.True(t, IsUniqueViolation(fmt.Errorf("create user: %w", unique)))

	fk := &pgconn.PgError{Code: "23503"}
	assert.False(t, IsUniqueViolation(fk))
}

func TestIsUniqueViolationStringFallback(t *testing.T) {
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: users.user_login")))
	assert.True(t, IsUniqueViolation(errors.New(`duplicate key value violates unique constraint "users_user_login_key"`)))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, IsUniqueViolation(nil))
}
