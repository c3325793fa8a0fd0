package auth

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRoles menolak request kalau role di token tidak termasuk allowed.
// Pasang SETELAH AuthMiddleware.
func RequireRoles(allowed ...string) fiber.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if _, ok := set[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "No tiene permisos para esta operación")
		}
		return c.Next()
	}
}
