package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"physiocare_backend/internals/configs"
	patientRoute "physiocare_backend/internals/features/clinic/patients/route"
	physioRoute "physiocare_backend/internals/features/clinic/physios/route"
	recordRoute "physiocare_backend/internals/features/clinic/records/route"
	authRoute "physiocare_backend/internals/features/users/auth/route"
	"physiocare_backend/internals/helpers/storage"
)

// SetupRoutes merakit seluruh surface HTTP. Semua dependency (db, config,
// image store) dioper eksplisit — tidak ada global.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	images := storage.NewImageStore(cfg.UploadDir)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Bienvenido a la API de PhysioCare")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db, cfg.JWTSecret, cfg.AccessTokenTTL)

	log.Println("[INFO] Setting up PatientRoutes...")
	patientRoute.PatientRoutes(app, db, images, cfg.JWTSecret)

	log.Println("[INFO] Setting up PhysioRoutes...")
	physioRoute.PhysioRoutes(app, db, images, cfg.JWTSecret)

	log.Println("[INFO] Setting up RecordRoutes...")
	recordRoute.RecordRoutes(app, db, cfg.JWTSecret)
}
