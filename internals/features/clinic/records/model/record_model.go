package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Appointment hidup EMBEDDED di dalam record (kolom JSONB), tidak punya
// tabel sendiri dan tidak bisa di-address terpisah. Urutan list = urutan
// insert, append-only.
type Appointment struct {
	AppointmentDate         time.Time `json:"appointment_date"`
	AppointmentPhysioID     uuid.UUID `json:"appointment_physio_id"`
	AppointmentDiagnosis    string    `json:"appointment_diagnosis"`
	AppointmentTreatment    string    `json:"appointment_treatment"`
	AppointmentObservations string    `json:"appointment_observations,omitempty"`
}

// RecordModel: satu expediente médico per pasien (unique record_patient_id).
// Tidak pernah dihapus; hanya tumbuh lewat append appointment.
type RecordModel struct {
	RecordID           uuid.UUID                        `gorm:"type:uuid;primaryKey;column:record_id" json:"record_id"`
	RecordPatientID    uuid.UUID                        `gorm:"type:uuid;uniqueIndex;not null;column:record_patient_id" json:"record_patient_id"`
	RecordNotes        string                           `gorm:"type:text;column:record_notes" json:"record_notes"`
	RecordAppointments datatypes.JSONSlice[Appointment] `gorm:"column:record_appointments" json:"record_appointments"`
	RecordCreatedAt    time.Time                        `gorm:"column:record_created_at;autoCreateTime" json:"record_created_at"`
}

func (RecordModel) TableName() string { return "records" }
