package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"physiocare_backend/internals/constants"
	"physiocare_backend/internals/features/clinic/physios/dto"
	"physiocare_backend/internals/features/clinic/physios/model"
	userModel "physiocare_backend/internals/features/users/auth/model"
	authService "physiocare_backend/internals/features/users/auth/service"
	helper "physiocare_backend/internals/helpers"
)

var ErrNoMatches = errors.New("no se encontraron coincidencias")

/* ==========================
   LINKED-CREATION WORKFLOW
========================== */

// CreatePhysioAccount: validasi penuh dulu (semua pelanggaran sekaligus),
// lalu credential + profil dalam satu transaksi.
func CreatePhysioAccount(db *gorm.DB, req *dto.CreatePhysioRequest, imageRef string) (*model.PhysioModel, error) {
	if msgs := helper.ValidateStruct(req, req.Messages()); len(msgs) > 0 {
		return nil, &helper.ValidationError{Messages: msgs}
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	physio := req.ToModel(uuid.New(), imageRef)
	err = db.Transaction(func(tx *gorm.DB) error {
		user := userModel.UserModel{
			UserID:       physio.PhysioID,
			UserLogin:    req.Login,
			UserPassword: hashed,
			UserRole:     constants.RolePhysio,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(physio).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			// bisa login ATAU licenseNumber yang bentrok; dua-duanya unik global
			return nil, helper.NewValidationError("El nombre de usuario o el número de licencia ya están en uso.")
		}
		return nil, err
	}
	return physio, nil
}

func UpdatePhysio(db *gorm.DB, id uuid.UUID, req *dto.UpdatePhysioRequest, imageRef string) (*model.PhysioModel, error) {
	if msgs := helper.ValidateStruct(req, req.Messages()); len(msgs) > 0 {
		return nil, &helper.ValidationError{Messages: msgs}
	}

	physio, err := GetPhysio(db, id)
	if err != nil {
		return nil, err
	}
	req.ApplyToModel(physio, imageRef)
	if err := db.Save(physio).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, helper.NewValidationError("El número de licencia ya está en uso.")
		}
		return nil, err
	}
	return physio, nil
}

/* ==========================
   QUERIES
========================== */

func GetPhysio(db *gorm.DB, id uuid.UUID) (*model.PhysioModel, error) {
	var physio model.PhysioModel
	err := db.First(&physio, "physio_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NewNotFoundError("Fisio no encontrado.")
	}
	if err != nil {
		return nil, err
	}
	return &physio, nil
}

func ListPhysios(db *gorm.DB) ([]model.PhysioModel, error) {
	var physios []model.PhysioModel
	if err := db.Order("physio_surname, physio_name").Find(&physios).Error; err != nil {
		return nil, err
	}
	return physios, nil
}

// SearchBySpecialty: substring case-insensitive pada specialty.
// Filter kosong → semua; nol hasil → ErrNoMatches.
func SearchBySpecialty(db *gorm.DB, specialty string) ([]model.PhysioModel, error) {
	specialty = strings.TrimSpace(specialty)
	if specialty == "" {
		return ListPhysios(db)
	}

	var physios []model.PhysioModel
	err := db.
		Where("LOWER(physio_specialty) LIKE ?", "%"+strings.ToLower(specialty)+"%").
		Order("physio_surname, physio_name").
		Find(&physios).Error
	if err != nil {
		return nil, err
	}
	if len(physios) == 0 {
		return nil, ErrNoMatches
	}
	return physios, nil
}

// DeletePhysio menghapus profil saja; appointment lama yang masih
// menunjuk physio ini dibiarkan (dangling ref ditoleransi saat baca).
func DeletePhysio(db *gorm.DB, id uuid.UUID) error {
	res := db.Delete(&model.PhysioModel{}, "physio_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return helper.NewNotFoundError("Physio no encontrado.")
	}
	return nil
}
