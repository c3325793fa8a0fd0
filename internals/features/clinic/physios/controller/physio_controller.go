package controller

import (
	"errors"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"physiocare_backend/internals/features/clinic/physios/dto"
	"physiocare_backend/internals/features/clinic/physios/service"
	helper "physiocare_backend/internals/helpers"
	"physiocare_backend/internals/helpers/storage"
)

type PhysioController struct {
	DB     *gorm.DB
	Images *storage.ImageStore
}

func NewPhysioController(db *gorm.DB, images *storage.ImageStore) *PhysioController {
	return &PhysioController{DB: db, Images: images}
}

/* ===================== HANDLERS ===================== */

// GET /physios
func (h *PhysioController) List(c *fiber.Ctx) error {
	physios, err := service.ListPhysios(h.DB)
	if err != nil {
		log.Printf("[ERROR] list physios: %v", err)
		return helper.RenderError(c, fiber.StatusInternalServerError, "Error interno del servidor.")
	}
	if len(physios) == 0 {
		return helper.RenderError(c, fiber.StatusOK, "No hay fisios en el sistema.")
	}
	return c.Render("physios_list", fiber.Map{"physios": physios})
}

// GET /physios/find?specialty=
func (h *PhysioController) Find(c *fiber.Ctx) error {
	physios, err := service.SearchBySpecialty(h.DB, c.Query("specialty"))
	if errors.Is(err, service.ErrNoMatches) {
		return helper.RenderError(c, fiber.StatusNotFound,
			"No se encontraron fisioterapeutas con la especialidad indicada.")
	}
	if err != nil {
		log.Printf("[ERROR] find physios: %v", err)
		return helper.RenderError(c, fiber.StatusInternalServerError,
			"Hubo un problema al procesar la búsqueda. Inténtelo más tarde.")
	}
	return c.Render("physios_list", fiber.Map{"physios": physios})
}

// GET /physios/new
func (h *PhysioController) NewForm(c *fiber.Ctx) error {
	return c.Render("physio_add", fiber.Map{})
}

// GET /physios/:id
func (h *PhysioController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.RenderError(c, fiber.StatusNotFound, "Fisio no encontrado.")
	}
	physio, err := service.GetPhysio(h.DB, id)
	if err != nil {
		return h.renderServiceError(c, err)
	}
	return c.Render("physio_detail", fiber.Map{"physio": physio})
}

// GET /physios/:id/edit
func (h *PhysioController) EditForm(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.RenderError(c, fiber.StatusNotFound, "Fisio no encontrado.")
	}
	physio, err := service.GetPhysio(h.DB, id)
	if err != nil {
		return h.renderServiceError(c, err)
	}
	return c.Render("physio_edit", fiber.Map{"physio": physio})
}

// POST /physios
func (h *PhysioController) Create(c *fiber.Ctx) error {
	var req dto.CreatePhysioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.RenderForm(c, "physio_add", nil,
			[]string{"Formato de petición no válido."}, req)
	}

	imageRef, err := h.saveUpload(c, "")
	if err != nil {
		return helper.RenderForm(c, "physio_add", nil,
			[]string{"No se pudo procesar la imagen subida."}, req)
	}

	if _, err := service.CreatePhysioAccount(h.DB, &req, imageRef); err != nil {
		if ve, ok := helper.AsValidationError(err); ok {
			return helper.RenderForm(c, "physio_add", nil, ve.Messages, req)
		}
		log.Printf("[ERROR] create physio: %v", err)
		return helper.RenderForm(c, "physio_add", nil,
			[]string{"Error al registrar el fisioterapeuta. Por favor, inténtelo de nuevo."}, req)
	}
	return c.Redirect("/physios", fiber.StatusFound)
}

// POST /physios/:id
func (h *PhysioController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.RenderError(c, fiber.StatusNotFound, "Fisio no encontrado.")
	}

	var req dto.UpdatePhysioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.RenderForm(c, "physio_edit", nil,
			[]string{"Formato de petición no válido."}, req)
	}

	imageRef, err := h.saveUpload(c, req.Image)
	if err != nil {
		return helper.RenderForm(c, "physio_edit", nil,
			[]string{"No se pudo procesar la imagen subida."}, req)
	}

	physio, err := service.UpdatePhysio(h.DB, id, &req, imageRef)
	if err != nil {
		if ve, ok := helper.AsValidationError(err); ok {
			current, gerr := service.GetPhysio(h.DB, id)
			if gerr != nil {
				return h.renderServiceError(c, gerr)
			}
			return helper.RenderForm(c, "physio_edit", fiber.Map{"physio": current}, ve.Messages, req)
		}
		return h.renderServiceError(c, err)
	}
	return c.Redirect("/physios/"+physio.PhysioID.String(), fiber.StatusFound)
}

// DELETE /physios/:id
func (h *PhysioController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.RenderError(c, fiber.StatusNotFound, "Physio no encontrado.")
	}
	if err := service.DeletePhysio(h.DB, id); err != nil {
		return h.renderServiceError(c, err)
	}
	return c.Redirect("/physios", fiber.StatusFound)
}

/* ===================== INTERNAL ===================== */

func (h *PhysioController) saveUpload(c *fiber.Ctx, fallback string) (string, error) {
	var fh *multipart.FileHeader
	if f, err := c.FormFile("imagen"); err == nil {
		fh = f
	}
	return h.Images.SaveOrFallback(fh, fallback)
}

func (h *PhysioController) renderServiceError(c *fiber.Ctx, err error) error {
	if helper.IsNotFound(err) {
		return helper.RenderError(c, fiber.StatusNotFound, err.Error())
	}
	log.Printf("[ERROR] physios: %v", err)
	return helper.RenderError(c, fiber.StatusInternalServerError, "Error interno del servidor.")
}
