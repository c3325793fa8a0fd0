package dto

import (
	"time"
)

/* ===================== REQUESTS ===================== */

type CreateRecordRequest struct {
	PatientID string `json:"patientId" form:"patientId" validate:"required,uuid"`
	Notes     string `json:"medicalRecord" form:"medicalRecord" validate:"omitempty,max=1000"`
	// cita awal opsional (flow JSON); form HTML hanya kirim notes
	Appointments []CreateAppointmentRequest `json:"appointments" form:"-" validate:"omitempty,dive"`
}

func (r *CreateRecordRequest) Messages() map[string]string {
	return map[string]string{
		"PatientID": "El paciente no es válido.",
		"Notes":     "Las notas no pueden superar 1000 caracteres.",
	}
}

type CreateAppointmentRequest struct {
	Date         string `json:"date" form:"date" validate:"required"`
	PhysioID     string `json:"physio" form:"physio" validate:"required,uuid"`
	Diagnosis    string `json:"diagnosis" form:"diagnosis" validate:"required,max=500"`
	Treatment    string `json:"treatment" form:"treatment" validate:"required,max=500"`
	Observations string `json:"observations" form:"observations" validate:"omitempty,max=500"`
}

func (r *CreateAppointmentRequest) Messages() map[string]string {
	return map[string]string{
		"Date":         "La fecha de la cita no es válida.",
		"PhysioID":     "El fisioterapeuta no es válido.",
		"Diagnosis":    "El diagnóstico es obligatorio (máx. 500 caracteres).",
		"Treatment":    "El tratamiento es obligatorio (máx. 500 caracteres).",
		"Observations": "Las observaciones no pueden superar 500 caracteres.",
	}
}

// layout form datetime-local dulu, lalu varian dengan spasi, lalu date-only
var appointmentDateLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDate menerima beberapa format tanggal yang dikirim form/JSON.
func (r *CreateAppointmentRequest) ParseDate() (time.Time, bool) {
	for _, layout := range appointmentDateLayouts {
		if t, err := time.Parse(layout, r.Date); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
