package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"

	authService "physiocare_backend/internals/features/users/auth/service"
	helper "physiocare_backend/internals/helpers"
)

// AuthMiddleware memverifikasi access token (cookie atau Bearer header)
// dan menyimpan identitas ke Locals untuk handler berikutnya.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helper.GetRawAccessToken(c)
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Acceso no autorizado")
		}

		claims, err := authService.ParseAccessToken(secret, raw)
		if err != nil {
			log.Printf("[ERROR] token invalid: %v", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Acceso no autorizado")
		}

		c.Locals("user_id", claims.UserID.String())
		c.Locals("user_login", claims.Login)
		c.Locals("user_role", claims.Role)
		return c.Next()
	}
}
