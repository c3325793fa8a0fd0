package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	physioService "physiocare_backend/internals/features/clinic/physios/service"
	"physiocare_backend/internals/features/clinic/records/dto"
	"physiocare_backend/internals/features/clinic/records/service"
	helper "physiocare_backend/internals/helpers"
)

type RecordController struct {
	DB *gorm.DB
}

func NewRecordController(db *gorm.DB) *RecordController {
	return &RecordController{DB: db}
}

/* ===================== HANDLERS ===================== */

// GET /records
func (h *RecordController) List(c *fiber.Ctx) error {
	records, err := service.ListRecordsWithPatients(h.DB)
	if err != nil {
		log.Printf("[ERROR] list records: %v", err)
		return helper.RenderError(c, fiber.StatusInternalServerError, "Error interno del servidor.")
	}
	if len(records) == 0 {
		return helper.RenderError(c, fiber.StatusOK, "No se encontraron expedientes médicos válidos.")
	}
	return c.Render("records_list", fiber.Map{"records": records})
}

// GET /records/find?surname=
func (h *RecordController) Find(c *fiber.Ctx) error {
	records, err := service.SearchByPatientSurname(h.DB, c.Query("surname"))
	if errors.Is(err, service.ErrNoMatches) {
		return helper.RenderError(c, fiber.StatusNotFound,
			"No se encontraron expedientes asociados al apellido ingresado.")
	}
	if err != nil {
		log.Printf("[ERROR] find records: %v", err)
		return helper.RenderError(c, fiber.StatusInternalServerError,
			"Hubo un problema al procesar la búsqueda. Inténtelo más tarde.")
	}
	return c.Render("records_list", fiber.Map{"records": records})
}

// GET /records/new
func (h *RecordController) NewForm(c *fiber.Ctx) error {
	patients, err := service.PatientsWithoutRecord(h.DB)
	if err != nil {
		log.Printf("[ERROR] patients without record: %v", err)
		return helper.RenderError(c, fiber.StatusInternalServerError, "Error al cargar los pacientes")
	}
	return c.Render("record_add", fiber.Map{"patients": patients})
}

// POST /records
func (h *RecordController) Create(c *fiber.Ctx) error {
	var req dto.CreateRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return h.renderAddForm(c, []string{"Formato de petición no válido."}, req)
	}

	if _, err := service.CreateRecord(h.DB, &req); err != nil {
		if ve, ok := helper.AsValidationError(err); ok {
			return h.renderAddForm(c, ve.Messages, req)
		}
		if helper.IsNotFound(err) {
			return helper.RenderError(c, fiber.StatusNotFound, err.Error())
		}
		log.Printf("[ERROR] create record: %v", err)
		return h.renderAddForm(c,
			[]string{"Hubo un error al registrar el expediente. Inténtalo nuevamente."}, req)
	}
	return c.Redirect("/records", fiber.StatusFound)
}

// GET /records/:id/appointments/new
func (h *RecordController) AppointmentForm(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.RenderError(c, fiber.StatusNotFound, "Expediente no encontrado.")
	}
	record, err := service.GetRecordByID(h.DB, id)
	if err != nil {
		return h.renderServiceError(c, err)
	}
	physios, err := physioService.ListPhysios(h.DB)
	if err != nil {
		log.Printf("[ERROR] list physios: %v", err)
		return helper.RenderError(c, fiber.StatusInternalServerError,
			"Hubo un error al cargar el formulario de citas.")
	}
	return c.Render("appointment_add", fiber.Map{"record": record, "physios": physios})
}

// POST /records/:id/appointments
func (h *RecordController) AppendAppointment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.RenderError(c, fiber.StatusNotFound, "Expediente no encontrado.")
	}

	var req dto.CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.RenderError(c, fiber.StatusBadRequest, "Formato de petición no válido.")
	}

	record, err := service.AppendAppointment(h.DB, id, &req)
	if err != nil {
		if ve, ok := helper.AsValidationError(err); ok {
			return h.renderAppointmentForm(c, id, ve.Messages, req)
		}
		return h.renderServiceError(c, err)
	}
	return c.Redirect("/records/"+record.RecordPatientID.String(), fiber.StatusFound)
}

// GET /records/:id  (id = patientId, bukan recordId)
func (h *RecordController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.RenderError(c, fiber.StatusNotFound, "Expediente no encontrado.")
	}
	record, err := service.GetRecordByPatientID(h.DB, id)
	if err != nil {
		return h.renderServiceError(c, err)
	}
	return c.Render("record_detail", fiber.Map{"record": record})
}

/* ===================== INTERNAL ===================== */

func (h *RecordController) renderAddForm(c *fiber.Ctx, errs []string, old any) error {
	patients, err := service.PatientsWithoutRecord(h.DB)
	if err != nil {
		log.Printf("[ERROR] patients without record: %v", err)
		patients = nil
	}
	return helper.RenderForm(c, "record_add", fiber.Map{"patients": patients}, errs, old)
}

func (h *RecordController) renderAppointmentForm(c *fiber.Ctx, recordID uuid.UUID, errs []string, old any) error {
	record, err := service.GetRecordByID(h.DB, recordID)
	if err != nil {
		return h.renderServiceError(c, err)
	}
	physios, err := physioService.ListPhysios(h.DB)
	if err != nil {
		physios = nil
	}
	return helper.RenderForm(c, "appointment_add",
		fiber.Map{"record": record, "physios": physios}, errs, old)
}

func (h *RecordController) renderServiceError(c *fiber.Ctx, err error) error {
	if helper.IsNotFound(err) {
		return helper.RenderError(c, fiber.StatusNotFound, err.Error())
	}
	log.Printf("[ERROR] records: %v", err)
	return helper.RenderError(c, fiber.StatusInternalServerError, "Error interno del servidor.")
}
