package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"physiocare_backend/internals/constants"
	"physiocare_backend/internals/features/clinic/patients/dto"
	"physiocare_backend/internals/features/clinic/patients/model"
	userModel "physiocare_backend/internals/features/users/auth/model"
	authService "physiocare_backend/internals/features/users/auth/service"
	helper "physiocare_backend/internals/helpers"
)

// ErrNoMatches membedakan "pencarian tanpa hasil" dari "koleksi kosong"
// (pesan user-facing berbeda).
var ErrNoMatches = errors.New("no se encontraron coincidencias")

const dateLayout = "2006-01-02"

/* ==========================
   LINKED-CREATION WORKFLOW
========================== */

// CreatePatientAccount memvalidasi seluruh DTO (mengumpulkan SEMUA
// pelanggaran), lalu membuat credential + profil dalam SATU transaksi:
// keduanya tertulis, atau tidak sama sekali.
func CreatePatientAccount(db *gorm.DB, req *dto.CreatePatientRequest, imageRef string) (*model.PatientModel, error) {
	if msgs := helper.ValidateStruct(req, req.Messages()); len(msgs) > 0 {
		return nil, &helper.ValidationError{Messages: msgs}
	}
	birthDate, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		return nil, helper.NewValidationError("La fecha de nacimiento no es válida.")
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	patient := req.ToModel(uuid.New(), birthDate, imageRef)
	err = db.Transaction(func(tx *gorm.DB) error {
		user := userModel.UserModel{
			UserID:       patient.PatientID,
			UserLogin:    req.Login,
			UserPassword: hashed,
			UserRole:     constants.RolePatient,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(patient).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			// race di unique login → anggap gagal validasi, bukan 500
			return nil, helper.NewValidationError("El nombre de usuario ya está en uso.")
		}
		return nil, err
	}
	return patient, nil
}

// UpdatePatient hanya menyentuh profil; credential tidak pernah diedit.
func UpdatePatient(db *gorm.DB, id uuid.UUID, req *dto.UpdatePatientRequest, imageRef string) (*model.PatientModel, error) {
	if msgs := helper.ValidateStruct(req, req.Messages()); len(msgs) > 0 {
		return nil, &helper.ValidationError{Messages: msgs}
	}
	birthDate, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		return nil, helper.NewValidationError("La fecha de nacimiento no es válida.")
	}

	patient, err := GetPatient(db, id)
	if err != nil {
		return nil, err
	}
	req.ApplyToModel(patient, birthDate, imageRef)
	if err := db.Save(patient).Error; err != nil {
		return nil, err
	}
	return patient, nil
}

/* ==========================
   QUERIES
========================== */

func GetPatient(db *gorm.DB, id uuid.UUID) (*model.PatientModel, error) {
	var patient model.PatientModel
	err := db.First(&patient, "patient_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NewNotFoundError("Paciente no encontrado.")
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func ListPatients(db *gorm.DB) ([]model.PatientModel, error) {
	var patients []model.PatientModel
	if err := db.Order("patient_surname, patient_name").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

// SearchBySurname: filter substring case-insensitive pada surname.
// Filter kosong → semua; nol hasil → ErrNoMatches.
func SearchBySurname(db *gorm.DB, surname string) ([]model.PatientModel, error) {
	surname = strings.TrimSpace(surname)
	if surname == "" {
		return ListPatients(db)
	}

	var patients []model.PatientModel
	err := db.
		Where("LOWER(patient_surname) LIKE ?", "%"+strings.ToLower(surname)+"%").
		Order("patient_surname, patient_name").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	if len(patients) == 0 {
		return nil, ErrNoMatches
	}
	return patients, nil
}

// DeletePatient menghapus profil saja. Credential dan medical record
// dibiarkan: orphan difilter saat baca, tidak ada cascading delete.
func DeletePatient(db *gorm.DB, id uuid.UUID) error {
	res := db.Delete(&model.PatientModel{}, "patient_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return helper.NewNotFoundError("El paciente no existe.")
	}
	return nil
}
