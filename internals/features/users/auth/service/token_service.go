package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"physiocare_backend/internals/features/users/auth/model"
)

var ErrInvalidToken = errors.New("token invalid")

// TokenClaims adalah isi access token yang dipakai middleware.
type TokenClaims struct {
	UserID uuid.UUID
	Login  string
	Role   string
}

// IssueAccessToken membuat JWT HS256 berisi {sub, login, role} + expiry.
func IssueAccessToken(secret string, ttl time.Duration, user *model.UserModel) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   user.UserID.String(),
		"login": user.UserLogin,
		"role":  user.UserRole,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseAccessToken memverifikasi signature + expiry dan mengembalikan claims.
func ParseAccessToken(secret, raw string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrInvalidToken
	}
	login, _ := claims["login"].(string)
	role, _ := claims["role"].(string)

	return &TokenClaims{UserID: userID, Login: login, Role: role}, nil
}
