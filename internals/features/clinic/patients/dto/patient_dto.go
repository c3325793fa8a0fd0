package dto

import (
	"time"

	"github.com/google/uuid"

	pModel "physiocare_backend/internals/features/clinic/patients/model"
)

/* ===================== REQUESTS ===================== */

// CreatePatientRequest adalah input form pendaftaran pasien + credential.
// Semua constraint field ada di tag validate; pesan user di Messages().
type CreatePatientRequest struct {
	Name            string `json:"name" form:"name" validate:"required,min=2,max=50"`
	Surname         string `json:"surname" form:"surname" validate:"required,min=2,max=50"`
	BirthDate       string `json:"birthDate" form:"birthDate" validate:"required,datetime=2006-01-02"`
	Address         string `json:"address" form:"address" validate:"omitempty,max=120"`
	InsuranceNumber string `json:"insuranceNumber" form:"insuranceNumber" validate:"required,len=9,alphanum"`
	Login           string `json:"login" form:"login" validate:"required,min=4,max=50"`
	Password        string `json:"password" form:"password" validate:"required,min=7,max=20"`
}

func (r *CreatePatientRequest) Messages() map[string]string {
	return map[string]string{
		"Name":            "El nombre debe tener entre 2 y 50 caracteres.",
		"Surname":         "Los apellidos deben tener entre 2 y 50 caracteres.",
		"BirthDate":       "La fecha de nacimiento no es válida.",
		"Address":         "La dirección no puede superar 120 caracteres.",
		"InsuranceNumber": "El número de seguro debe tener 9 caracteres alfanuméricos.",
		"Login":           "El nombre de usuario debe tener entre 4 y 50 caracteres.",
		"Password":        "La contraseña debe tener entre 7 y 20 caracteres.",
	}
}

func (r *CreatePatientRequest) ToModel(id uuid.UUID, birthDate time.Time, imageRef string) *pModel.PatientModel {
	m := &pModel.PatientModel{
		PatientID:              id,
		PatientName:            r.Name,
		PatientSurname:         r.Surname,
		PatientBirthDate:       birthDate,
		PatientInsuranceNumber: r.InsuranceNumber,
	}
	if r.Address != "" {
		m.PatientAddress = &r.Address
	}
	if imageRef != "" {
		m.PatientImage = &imageRef
	}
	return m
}

// UpdatePatientRequest: hanya field profil; credential tidak pernah diedit.
// Image menampung ref lama dari hidden field (fallback kalau tidak upload).
type UpdatePatientRequest struct {
	Name            string `json:"name" form:"name" validate:"required,min=2,max=50"`
	Surname         string `json:"surname" form:"surname" validate:"required,min=2,max=50"`
	BirthDate       string `json:"birthDate" form:"birthDate" validate:"required,datetime=2006-01-02"`
	Address         string `json:"address" form:"address" validate:"omitempty,max=120"`
	InsuranceNumber string `json:"insuranceNumber" form:"insuranceNumber" validate:"required,len=9,alphanum"`
	Image           string `json:"imagen" form:"imagen" validate:"omitempty"`
}

func (r *UpdatePatientRequest) Messages() map[string]string {
	return map[string]string{
		"Name":            "El nombre debe tener entre 2 y 50 caracteres.",
		"Surname":         "Los apellidos deben tener entre 2 y 50 caracteres.",
		"BirthDate":       "La fecha de nacimiento no es válida.",
		"Address":         "La dirección no puede superar 120 caracteres.",
		"InsuranceNumber": "El número de seguro debe tener 9 caracteres alfanuméricos.",
	}
}

func (r *UpdatePatientRequest) ApplyToModel(m *pModel.PatientModel, birthDate time.Time, imageRef string) {
	m.PatientName = r.Name
	m.PatientSurname = r.Surname
	m.PatientBirthDate = birthDate
	m.PatientInsuranceNumber = r.InsuranceNumber
	if r.Address != "" {
		m.PatientAddress = &r.Address
	} else {
		m.PatientAddress = nil
	}
	if imageRef != "" {
		m.PatientImage = &imageRef
	}
}
