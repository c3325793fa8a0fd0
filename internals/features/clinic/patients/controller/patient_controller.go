package controller

import (
	"errors"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"physiocare_backend/internals/features/clinic/patients/dto"
	"physiocare_backend/internals/features/clinic/patients/service"
	helper "physiocare_backend/internals/helpers"
	"physiocare_backend/internals/helpers/storage"
)

type PatientController struct {
	DB     *gorm.DB
	Images *storage.ImageStore
}

func NewPatientController(db *gorm.DB, images *storage.ImageStore) *PatientController {
	return &PatientController{DB: db, Images: images}
}

/* ===================== HANDLERS ===================== */

// GET /patients
func (h *PatientController) List(c *fiber.Ctx) error {
	patients, err := service.ListPatients(h.DB)
	if err != nil {
		log.Printf("[ERROR] list patients: %v", err)
		return helper.RenderError(c, fiber.StatusInternalServerError, "Error interno del servidor.")
	}
	if len(patients) == 0 {
		return helper.RenderError(c, fiber.StatusOK, "No hay pacientes en el sistema.")
	}
	return c.Render("patients_list", fiber.Map{"patients": patients})
}

// GET /patients/find?surname=
func (h *PatientController) Find(c *fiber.Ctx) error {
	patients, err := service.SearchBySurname(h.DB, c.Query("surname"))
	if errors.Is(err, service.ErrNoMatches) {
		return helper.RenderError(c, fiber.StatusNotFound,
			"No se encontraron pacientes asociados al apellido ingresado.")
	}
	if err != nil {
		log.Printf("[ERROR] find patients: %v", err)
		return helper.RenderError(c, fiber.StatusInternalServerError,
			"Hubo un problema al procesar la búsqueda. Inténtelo más tarde.")
	}
	return c.Render("patients_list", fiber.Map{"patients": patients})
}

// GET /patients/new
func (h *PatientController) NewForm(c *fiber.Ctx) error {
	return c.Render("patient_add", fiber.Map{})
}

// GET /patients/:id
func (h *PatientController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.RenderError(c, fiber.StatusNotFound, "Paciente no encontrado.")
	}
	patient, err := service.GetPatient(h.DB, id)
	if err != nil {
		return h.renderServiceError(c, err)
	}
	return c.Render("patient_detail", fiber.Map{"patient": patient})
}

// GET /patients/:id/edit
func (h *PatientController) EditForm(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.RenderError(c, fiber.StatusNotFound, "Paciente no encontrado.")
	}
	patient, err := service.GetPatient(h.DB, id)
	if err != nil {
		return h.renderServiceError(c, err)
	}
	return c.Render("patient_edit", fiber.Map{"patient": patient})
}

// POST /patients
func (h *PatientController) Create(c *fiber.Ctx) error {
	var req dto.CreatePatientRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.RenderForm(c, "patient_add", nil,
			[]string{"Formato de petición no válido."}, req)
	}

	imageRef, err := h.saveUpload(c, "")
	if err != nil {
		return helper.RenderForm(c, "patient_add", nil,
			[]string{"No se pudo procesar la imagen subida."}, req)
	}

	if _, err := service.CreatePatientAccount(h.DB, &req, imageRef); err != nil {
		if ve, ok := helper.AsValidationError(err); ok {
			return helper.RenderForm(c, "patient_add", nil, ve.Messages, req)
		}
		log.Printf("[ERROR] create patient: %v", err)
		return helper.RenderForm(c, "patient_add", nil,
			[]string{"Hubo un error al registrar el paciente. Por favor, inténtelo nuevamente."}, req)
	}
	return c.Redirect("/patients", fiber.StatusFound)
}

// POST /patients/:id
func (h *PatientController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.RenderError(c, fiber.StatusNotFound, "Paciente no encontrado.")
	}

	var req dto.UpdatePatientRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.RenderForm(c, "patient_edit", nil,
			[]string{"Formato de petición no válido."}, req)
	}

	// tanpa upload baru: pakai ref lama dari hidden field
	imageRef, err := h.saveUpload(c, req.Image)
	if err != nil {
		return helper.RenderForm(c, "patient_edit", nil,
			[]string{"No se pudo procesar la imagen subida."}, req)
	}

	patient, err := service.UpdatePatient(h.DB, id, &req, imageRef)
	if err != nil {
		if ve, ok := helper.AsValidationError(err); ok {
			current, gerr := service.GetPatient(h.DB, id)
			if gerr != nil {
				return h.renderServiceError(c, gerr)
			}
			return helper.RenderForm(c, "patient_edit", fiber.Map{"patient": current}, ve.Messages, req)
		}
		return h.renderServiceError(c, err)
	}
	return c.Redirect("/patients/"+patient.PatientID.String(), fiber.StatusFound)
}

// DELETE /patients/:id
func (h *PatientController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.RenderError(c, fiber.StatusNotFound, "El paciente no existe.")
	}
	if err := service.DeletePatient(h.DB, id); err != nil {
		return h.renderServiceError(c, err)
	}
	return c.Redirect("/patients", fiber.StatusFound)
}

/* ===================== INTERNAL ===================== */

func (h *PatientController) saveUpload(c *fiber.Ctx, fallback string) (string, error) {
	var fh *multipart.FileHeader
	if f, err := c.FormFile("imagen"); err == nil {
		fh = f
	}
	return h.Images.SaveOrFallback(fh, fallback)
}

func (h *PatientController) renderServiceError(c *fiber.Ctx, err error) error {
	if helper.IsNotFound(err) {
		return helper.RenderError(c, fiber.StatusNotFound, err.Error())
	}
	log.Printf("[ERROR] patients: %v", err)
	return helper.RenderError(c, fiber.StatusInternalServerError, "Error interno del servidor.")
}
