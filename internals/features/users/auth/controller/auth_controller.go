package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"physiocare_backend/internals/features/users/auth/service"
	helper "physiocare_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	JWTSecret string
	TokenTTL  time.Duration
}

func NewAuthController(db *gorm.DB, jwtSecret string, tokenTTL time.Duration) *AuthController {
	return &AuthController{DB: db, JWTSecret: jwtSecret, TokenTTL: tokenTTL}
}

// POST /auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Login    string `json:"login" form:"login"`
		Password string `json:"password" form:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de petición no válido")
	}
	input.Login = strings.TrimSpace(input.Login)
	if input.Login == "" || input.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "login y password son obligatorios")
	}

	user, err := service.Authenticate(ac.DB, input.Login, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "login incorrecto")
		}
		log.Printf("[ERROR] login: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	token, err := service.IssueAccessToken(ac.JWTSecret, ac.TokenTTL, user)
	if err != nil {
		log.Printf("[ERROR] issue token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	// Cookie untuk flow HTML; API client cukup pakai result token.
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(ac.TokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.JsonResult(c, token)
}

// POST /auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonResult(c, "sesión cerrada")
}
