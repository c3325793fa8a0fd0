package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Form HTML hanya bisa GET/POST; field _method menumpang di body POST
// untuk DELETE/PUT/PATCH (gaya method-override Express).
var overridableMethods = map[string]struct{}{
	fiber.MethodDelete: {},
	fiber.MethodPut:    {},
	fiber.MethodPatch:  {},
}

func MethodOverride() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodPost {
			if m := strings.ToUpper(strings.TrimSpace(c.FormValue("_method"))); m != "" {
				if _, ok := overridableMethods[m]; ok {
					c.Method(m)
					return c.RestartRouting()
				}
			}
		}
		return c.Next()
	}
}
