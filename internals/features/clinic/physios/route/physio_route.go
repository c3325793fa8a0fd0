package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"physiocare_backend/internals/constants"
	phCtrl "physiocare_backend/internals/features/clinic/physios/controller"
	"physiocare_backend/internals/helpers/storage"
	authmw "physiocare_backend/internals/middlewares/auth"
)

func PhysioRoutes(app fiber.Router, db *gorm.DB, images *storage.ImageStore, jwtSecret string) {
	h := phCtrl.NewPhysioController(db, images)

	g := app.Group("/physios", authmw.AuthMiddleware(jwtSecret))
	g.Get("/", h.List)
	g.Get("/find", h.Find)
	g.Get("/new", authmw.RequireRoles(constants.AdminOnly...), h.NewForm)
	g.Get("/:id/edit", authmw.RequireRoles(constants.AdminOnly...), h.EditForm)
	g.Get("/:id", h.Detail)
	g.Post("/", authmw.RequireRoles(constants.AdminOnly...), h.Create)
	g.Post("/:id", authmw.RequireRoles(constants.AdminOnly...), h.Update)
	g.Delete("/:id", authmw.RequireRoles(constants.AdminOnly...), h.Delete)
}
