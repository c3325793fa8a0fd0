package model

import (
	"time"

	"github.com/google/uuid"
)

// PhysioModel 1:1 dengan credential role=physio; physio_id == user_id.
type PhysioModel struct {
	PhysioID       uuid.UUID `gorm:"type:uuid;primaryKey;column:physio_id" json:"physio_id"`
	PhysioName     string    `gorm:"type:varchar(50);not null;column:physio_name" json:"physio_name"`
	PhysioSurname  string    `gorm:"type:varchar(50);not null;column:physio_surname" json:"physio_surname"`
	// Sports | Neurological | Pediatric | Geriatric | Oncological
	PhysioSpecialty string `gorm:"type:varchar(20);not null;column:physio_specialty" json:"physio_specialty"`
	// tepat 8 karakter alfanumerik, unik global
	PhysioLicenseNumber string    `gorm:"type:varchar(8);unique;not null;column:physio_license_number" json:"physio_license_number"`
	PhysioImage         *string   `gorm:"column:physio_image" json:"physio_image,omitempty"`
	PhysioCreatedAt     time.Time `gorm:"column:physio_created_at;autoCreateTime" json:"physio_created_at"`
}

func (PhysioModel) TableName() string { return "physios" }
