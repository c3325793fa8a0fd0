package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"physiocare_backend/internals/features/users/auth/model"
)

// Pesan sengaja sama untuk "login tidak ada" dan "password salah"
// supaya tidak bocor informasi akun mana yang terdaftar.
var ErrInvalidCredentials = errors.New("login incorrecto")

/* ==========================
   LOGIN (login + password)
========================== */

// Authenticate mencari credential by login (exact match) dan mencocokkan
// password dengan hash bcrypt-nya.
func Authenticate(db *gorm.DB, login, password string) (*model.UserModel, error) {
	var user model.UserModel
	err := db.Where("user_login = ?", login).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// HashPassword membuat hash bcrypt untuk password plaintext.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
