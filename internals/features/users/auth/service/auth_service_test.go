package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"physiocare_backend/internals/constants"
	"physiocare_backend/internals/features/users/auth/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.UserModel{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, login, password string) *model.UserModel {
	t.Helper()
	hashed, err := HashPassword(password)
	require.NoError(t, err)
	user := &model.UserModel{
		UserID:       uuid.New(),
		UserLogin:    login,
		UserPassword: hashed,
		UserRole:     constants.RoleAdmin,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestAuthenticate(t *testing.T) {
	db := openTestDB(t)
	seeded := seedUser(t, db, "admin", "secreta1")

	user, err := Authenticate(db, "admin", "secreta1")
	require.NoError(t, err)
	assert.Equal(t, seeded.UserID, user.UserID)
	assert.Equal(t, constants.RoleAdmin, user.UserRole)
}

// Login tidak ada dan password salah harus menghasilkan error yang SAMA,
// supaya respons tidak membocorkan akun mana yang terdaftar.
func TestAuthenticateIndistinguishableFailures(t *testing.T) {
	db := openTestDB(t)
	seedUser(t, db, "admin", "secreta1")

	_, errUnknown := Authenticate(db, "noexiste", "secreta1")
	_, errWrongPass := Authenticate(db, "admin", "equivocada")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestAuthenticateExactMatchLogin(t *testing.T) {
	db := openTestDB(t)
	seedUser(t, db, "admin", "secreta1")

	_, err := Authenticate(db, "Admin", "secreta1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

/* ==========================
   TOKEN CODEC
========================== */

func TestAccessTokenRoundTrip(t *testing.T) {
	user := &model.UserModel{
		UserID:    uuid.New(),
		UserLogin: "admin",
		UserRole:  constants.RoleAdmin,
	}

	raw, err := IssueAccessToken("clave-de-firma", time.Hour, user)
	require.NoError(t, err)

	claims, err := ParseAccessToken("clave-de-firma", raw)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, claims.UserID)
	assert.Equal(t, "admin", claims.Login)
	assert.Equal(t, constants.RoleAdmin, claims.Role)
}

func TestParseAccessTokenRejectsBadSecret(t *testing.T) {
	user := &model.UserModel{UserID: uuid.New(), UserLogin: "admin", UserRole: constants.RoleAdmin}

	raw, err := IssueAccessToken("clave-buena", time.Hour, user)
	require.NoError(t, err)

	_, err = ParseAccessToken("clave-mala", raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	user := &model.UserModel{UserID: uuid.New(), UserLogin: "admin", UserRole: constants.RoleAdmin}

	raw, err := IssueAccessToken("clave-de-firma", -time.Minute, user)
	require.NoError(t, err)

	_, err = ParseAccessToken("clave-de-firma", raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessTokenRejectsGarbage(t *testing.T) {
	_, err := ParseAccessToken("clave-de-firma", "no.es.un.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
