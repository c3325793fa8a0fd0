package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"physiocare_backend/internals/constants"
	rCtrl "physiocare_backend/internals/features/clinic/records/controller"
	authmw "physiocare_backend/internals/middlewares/auth"
)

func RecordRoutes(app fiber.Router, db *gorm.DB, jwtSecret string) {
	h := rCtrl.NewRecordController(db)

	g := app.Group("/records", authmw.AuthMiddleware(jwtSecret))
	g.Get("/", authmw.RequireRoles(constants.StaffRoles...), h.List)
	g.Get("/find", authmw.RequireRoles(constants.StaffRoles...), h.Find)
	g.Get("/new", authmw.RequireRoles(constants.StaffRoles...), h.NewForm)
	g.Get("/:id/appointments/new", authmw.RequireRoles(constants.StaffRoles...), h.AppointmentForm)
	g.Post("/:id/appointments", authmw.RequireRoles(constants.StaffRoles...), h.AppendAppointment)
	g.Get("/:id", h.Detail)
	g.Post("/", authmw.RequireRoles(constants.StaffRoles...), h.Create)
}
