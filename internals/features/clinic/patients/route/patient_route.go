package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"physiocare_backend/internals/constants"
	pCtrl "physiocare_backend/internals/features/clinic/patients/controller"
	"physiocare_backend/internals/helpers/storage"
	authmw "physiocare_backend/internals/middlewares/auth"
)

func PatientRoutes(app fiber.Router, db *gorm.DB, images *storage.ImageStore, jwtSecret string) {
	h := pCtrl.NewPatientController(db, images)

	g := app.Group("/patients", authmw.AuthMiddleware(jwtSecret))
	g.Get("/", h.List)
	g.Get("/find", h.Find)
	g.Get("/new", authmw.RequireRoles(constants.StaffRoles...), h.NewForm)
	g.Get("/:id/edit", authmw.RequireRoles(constants.StaffRoles...), h.EditForm)
	g.Get("/:id", h.Detail)
	g.Post("/", authmw.RequireRoles(constants.StaffRoles...), h.Create)
	g.Post("/:id", authmw.RequireRoles(constants.StaffRoles...), h.Update)
	g.Delete("/:id", authmw.RequireRoles(constants.AdminOnly...), h.Delete)
}
