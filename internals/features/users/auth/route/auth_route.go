package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtrl "physiocare_backend/internals/features/users/auth/controller"
	"physiocare_backend/internals/middlewares"
)

func AuthRoutes(app fiber.Router, db *gorm.DB, jwtSecret string, tokenTTL time.Duration) {
	h := authCtrl.NewAuthController(db, jwtSecret, tokenTTL)

	g := app.Group("/auth")
	g.Post("/login", middlewares.LoginRateLimiter(), h.Login)
	g.Post("/logout", h.Logout)
}
