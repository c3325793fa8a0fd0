package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   JSON envelope (API routes)
   Bentuk selalu {error, result}
=================================*/

func JsonResult(c *fiber.Ctx, result any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"error":  nil,
		"result": result,
	})
}

func JsonError(c *fiber.Ctx, status int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{
		"error":  message,
		"result": nil,
	})
}

/* ===============================
   Rendered views (HTML routes)
=================================*/

// RenderError menampilkan view error generik dengan satu pesan.
func RenderError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).Render("error", fiber.Map{
		"message": message,
	})
}

// RenderForm me-render ulang sebuah form beserta daftar error validasi
// dan input asli pengguna, supaya form tidak kosong saat gagal.
func RenderForm(c *fiber.Ctx, view string, data fiber.Map, errs []string, old any) error {
	if data == nil {
		data = fiber.Map{}
	}
	if len(errs) > 0 {
		data["errors"] = errs
	}
	if old != nil {
		data["old"] = old
	}
	return c.Status(statusForForm(errs)).Render(view, data)
}

func statusForForm(errs []string) int {
	if len(errs) > 0 {
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusOK
}
