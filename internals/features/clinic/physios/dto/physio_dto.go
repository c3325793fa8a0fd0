package dto

import (
	"github.com/google/uuid"

	phModel "physiocare_backend/internals/features/clinic/physios/model"
)

/* ===================== REQUESTS ===================== */

type CreatePhysioRequest struct {
	Name          string `json:"name" form:"name" validate:"required,min=2,max=50"`
	Surname       string `json:"surname" form:"surname" validate:"required,min=2,max=50"`
	Specialty     string `json:"specialty" form:"specialty" validate:"required,oneof=Sports Neurological Pediatric Geriatric Oncological"`
	LicenseNumber string `json:"licenseNumber" form:"licenseNumber" validate:"required,len=8,alphanum"`
	Login         string `json:"login" form:"login" validate:"required,min=4,max=50"`
	Password      string `json:"password" form:"password" validate:"required,min=7,max=20"`
}

func (r *CreatePhysioRequest) Messages() map[string]string {
	return map[string]string{
		"Name":          "El nombre debe tener entre 2 y 50 caracteres.",
		"Surname":       "Los apellidos deben tener entre 2 y 50 caracteres.",
		"Specialty":     "La especialidad no es válida.",
		"LicenseNumber": "El número de licencia debe tener 8 caracteres alfanuméricos.",
		"Login":         "El nombre de usuario debe tener entre 4 y 50 caracteres.",
		"Password":      "La contraseña debe tener entre 7 y 20 caracteres.",
	}
}

func (r *CreatePhysioRequest) ToModel(id uuid.UUID, imageRef string) *phModel.PhysioModel {
	m := &phModel.PhysioModel{
		PhysioID:            id,
		PhysioName:          r.Name,
		PhysioSurname:       r.Surname,
		PhysioSpecialty:     r.Specialty,
		PhysioLicenseNumber: r.LicenseNumber,
	}
	if imageRef != "" {
		m.PhysioImage = &imageRef
	}
	return m
}

type UpdatePhysioRequest struct {
	Name          string `json:"name" form:"name" validate:"required,min=2,max=50"`
	Surname       string `json:"surname" form:"surname" validate:"required,min=2,max=50"`
	Specialty     string `json:"specialty" form:"specialty" validate:"required,oneof=Sports Neurological Pediatric Geriatric Oncological"`
	LicenseNumber string `json:"licenseNumber" form:"licenseNumber" validate:"required,len=8,alphanum"`
	Image         string `json:"imagen" form:"imagen" validate:"omitempty"`
}

func (r *UpdatePhysioRequest) Messages() map[string]string {
	return map[string]string{
		"Name":          "El nombre debe tener entre 2 y 50 caracteres.",
		"Surname":       "Los apellidos deben tener entre 2 y 50 caracteres.",
		"Specialty":     "La especialidad no es válida.",
		"LicenseNumber": "El número de licencia debe tener 8 caracteres alfanuméricos.",
	}
}

func (r *UpdatePhysioRequest) ApplyToModel(m *phModel.PhysioModel, imageRef string) {
	m.PhysioName = r.Name
	m.PhysioSurname = r.Surname
	m.PhysioSpecialty = r.Specialty
	m.PhysioLicenseNumber = r.LicenseNumber
	if imageRef != "" {
		m.PhysioImage = &imageRef
	}
}
