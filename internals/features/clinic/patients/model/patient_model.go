package model

import (
	"time"

	"github.com/google/uuid"
)

// PatientModel 1:1 dengan credential role=patient; patient_id == user_id.
type PatientModel struct {
	PatientID        uuid.UUID `gorm:"type:uuid;primaryKey;column:patient_id" json:"patient_id"`
	PatientName      string    `gorm:"type:varchar(50);not null;column:patient_name" json:"patient_name"`
	PatientSurname   string    `gorm:"type:varchar(50);not null;column:patient_surname" json:"patient_surname"`
	PatientBirthDate time.Time `gorm:"type:date;not null;column:patient_birth_date" json:"patient_birth_date"`
	PatientAddress   *string   `gorm:"type:varchar(120);column:patient_address" json:"patient_address,omitempty"`
	// tepat 9 karakter alfanumerik (validasi di DTO)
	PatientInsuranceNumber string    `gorm:"type:varchar(9);not null;column:patient_insurance_number" json:"patient_insurance_number"`
	PatientImage           *string   `gorm:"column:patient_image" json:"patient_image,omitempty"`
	PatientCreatedAt       time.Time `gorm:"column:patient_created_at;autoCreateTime" json:"patient_created_at"`
}

func (PatientModel) TableName() string { return "patients" }
