package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pModel "physiocare_backend/internals/features/clinic/patients/model"
	phModel "physiocare_backend/internals/features/clinic/physios/model"
	"physiocare_backend/internals/features/clinic/records/dto"
	"physiocare_backend/internals/features/clinic/records/model"
	helper "physiocare_backend/internals/helpers"
)

var ErrNoMatches = errors.New("no se encontraron coincidencias")

/* ==========================
   VIEW PROJECTIONS
========================== */

// PhysioSummary adalah proyeksi {id, name, specialty} untuk appointment.
type PhysioSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
}

// AppointmentView = appointment + summary physio-nya. Physio nil kalau
// physio sudah dihapus (dangling ref ditoleransi, bukan error).
type AppointmentView struct {
	model.Appointment
	Physio *PhysioSummary `json:"physio,omitempty"`
}

type RecordWithPatient struct {
	Record  model.RecordModel   `json:"record"`
	Patient pModel.PatientModel `json:"patient"`
}

type RecordDetail struct {
	Record       model.RecordModel    `json:"record"`
	Patient      *pModel.PatientModel `json:"patient,omitempty"`
	Appointments []AppointmentView    `json:"appointments"`
}

/* ==========================
   CREATE RECORD
========================== */

// CreateRecord membuat expediente untuk pasien yang belum punya.
// Cita awal (kalau ada) divalidasi seperti append biasa: physio harus ada.
func CreateRecord(db *gorm.DB, req *dto.CreateRecordRequest) (*model.RecordModel, error) {
	if msgs := helper.ValidateStruct(req, req.Messages()); len(msgs) > 0 {
		return nil, &helper.ValidationError{Messages: msgs}
	}
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, helper.NewValidationError("El paciente no es válido.")
	}

	var patient pModel.PatientModel
	if err := db.First(&patient, "patient_id = ?", patientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NewValidationError("Paciente no encontrado")
		}
		return nil, err
	}

	var count int64
	if err := db.Model(&model.RecordModel{}).
		Where("record_patient_id = ?", patientID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, helper.NewValidationError("El paciente ya tiene un expediente médico.")
	}

	appointments := make([]model.Appointment, 0, len(req.Appointments))
	for i := range req.Appointments {
		appt, err := buildAppointment(db, &req.Appointments[i])
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, *appt)
	}

	record := &model.RecordModel{
		RecordID:           uuid.New(),
		RecordPatientID:    patientID,
		RecordNotes:        req.Notes,
		RecordAppointments: appointments,
	}
	if err := db.Create(record).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			// race di unique record_patient_id: store tetap satu record per pasien
			return nil, helper.NewValidationError("El paciente ya tiene un expediente médico.")
		}
		return nil, err
	}
	return record, nil
}

/* ==========================
   APPOINTMENT APPEND
========================== */

// AppendAppointment menambahkan cita di ekor list (urutan insert).
// Physio harus ada SAAT insert; record tidak berubah kalau gagal.
func AppendAppointment(db *gorm.DB, recordID uuid.UUID, req *dto.CreateAppointmentRequest) (*model.RecordModel, error) {
	if msgs := helper.ValidateStruct(req, req.Messages()); len(msgs) > 0 {
		return nil, &helper.ValidationError{Messages: msgs}
	}

	var record model.RecordModel
	err := db.First(&record, "record_id = ?", recordID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NewNotFoundError("Expediente no encontrado.")
	}
	if err != nil {
		return nil, err
	}

	appt, err := buildAppointment(db, req)
	if err != nil {
		return nil, err
	}

	record.RecordAppointments = append(record.RecordAppointments, *appt)
	if err := db.Save(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func buildAppointment(db *gorm.DB, req *dto.CreateAppointmentRequest) (*model.Appointment, error) {
	date, ok := req.ParseDate()
	if !ok {
		return nil, helper.NewValidationError("La fecha de la cita no es válida.")
	}
	physioID, err := uuid.Parse(req.PhysioID)
	if err != nil {
		return nil, helper.NewValidationError("El fisioterapeuta no es válido.")
	}

	var physio phModel.PhysioModel
	err = db.First(&physio, "physio_id = ?", physioID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NewNotFoundError("Fisio no encontrado.")
	}
	if err != nil {
		return nil, err
	}

	return &model.Appointment{
		AppointmentDate:         date,
		AppointmentPhysioID:     physio.PhysioID,
		AppointmentDiagnosis:    req.Diagnosis,
		AppointmentTreatment:    req.Treatment,
		AppointmentObservations: req.Observations,
	}, nil
}

/* ==========================
   QUERY COMPOSER
========================== */

// JoinRecordsWithPatients melekatkan profil pasien ke tiap record dan
// MEMBUANG record yang pasiennya sudah tidak ada. Filter read-time,
// dihitung ulang tiap listing, tidak pernah di-cache.
func JoinRecordsWithPatients(records []model.RecordModel, patients []pModel.PatientModel) []RecordWithPatient {
	byID := make(map[uuid.UUID]pModel.PatientModel, len(patients))
	for _, p := range patients {
		byID[p.PatientID] = p
	}

	out := make([]RecordWithPatient, 0, len(records))
	for _, r := range records {
		patient, ok := byID[r.RecordPatientID]
		if !ok {
			continue // orphan: pasien dihapus, record disembunyikan
		}
		out = append(out, RecordWithPatient{Record: r, Patient: patient})
	}
	return out
}

// SurnameMatches: substring match case-insensitive ("garc" kena "García").
func SurnameMatches(surname, filter string) bool {
	return strings.Contains(strings.ToLower(surname), strings.ToLower(filter))
}

func ListRecordsWithPatients(db *gorm.DB) ([]RecordWithPatient, error) {
	var records []model.RecordModel
	if err := db.Order("record_created_at").Find(&records).Error; err != nil {
		return nil, err
	}
	var patients []pModel.PatientModel
	if err := db.Find(&patients).Error; err != nil {
		return nil, err
	}
	return JoinRecordsWithPatients(records, patients), nil
}

// SearchByPatientSurname: join dulu (buang orphan), baru filter substring
// pada apellido pasien. Kosong → semua; nol hasil → ErrNoMatches.
func SearchByPatientSurname(db *gorm.DB, surname string) ([]RecordWithPatient, error) {
	joined, err := ListRecordsWithPatients(db)
	if err != nil {
		return nil, err
	}
	surname = strings.TrimSpace(surname)
	if surname == "" {
		return joined, nil
	}

	out := make([]RecordWithPatient, 0, len(joined))
	for _, rw := range joined {
		if SurnameMatches(rw.Patient.PatientSurname, surname) {
			out = append(out, rw)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoMatches
	}
	return out, nil
}

// GetRecordByPatientID: detail expediente (key = patientId) dengan
// appointment yang physio-nya di-expand ke summary {id, name, specialty}.
func GetRecordByPatientID(db *gorm.DB, patientID uuid.UUID) (*RecordDetail, error) {
	var record model.RecordModel
	err := db.First(&record, "record_patient_id = ?", patientID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NewNotFoundError("Expediente no encontrado.")
	}
	if err != nil {
		return nil, err
	}
	return expandRecord(db, &record)
}

// GetRecordByID: lookup by record_id (dipakai form tambah cita).
func GetRecordByID(db *gorm.DB, recordID uuid.UUID) (*RecordDetail, error) {
	var record model.RecordModel
	err := db.First(&record, "record_id = ?", recordID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NewNotFoundError("Expediente no encontrado.")
	}
	if err != nil {
		return nil, err
	}
	return expandRecord(db, &record)
}

func expandRecord(db *gorm.DB, record *model.RecordModel) (*RecordDetail, error) {
	detail := &RecordDetail{Record: *record}

	var patient pModel.PatientModel
	err := db.First(&patient, "patient_id = ?", record.RecordPatientID).Error
	if err == nil {
		detail.Patient = &patient
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(record.RecordAppointments))
	for _, a := range record.RecordAppointments {
		ids = append(ids, a.AppointmentPhysioID)
	}
	summaries := make(map[uuid.UUID]PhysioSummary, len(ids))
	if len(ids) > 0 {
		var physios []phModel.PhysioModel
		if err := db.Find(&physios, "physio_id IN ?", ids).Error; err != nil {
			return nil, err
		}
		for _, ph := range physios {
			summaries[ph.PhysioID] = PhysioSummary{
				ID:        ph.PhysioID,
				Name:      ph.PhysioName + " " + ph.PhysioSurname,
				Specialty: ph.PhysioSpecialty,
			}
		}
	}

	detail.Appointments = make([]AppointmentView, 0, len(record.RecordAppointments))
	for _, a := range record.RecordAppointments {
		view := AppointmentView{Appointment: a}
		if s, ok := summaries[a.AppointmentPhysioID]; ok {
			s := s
			view.Physio = &s
		}
		detail.Appointments = append(detail.Appointments, view)
	}
	return detail, nil
}

/* ==========================
   PATIENTS WITHOUT RECORD
========================== */

// FilterPatientsWithoutRecord: set-difference murni, dipakai dropdown
// form create record supaya pasien yang sudah punya expediente tidak muncul.
func FilterPatientsWithoutRecord(patients []pModel.PatientModel, records []model.RecordModel) []pModel.PatientModel {
	withRecord := make(map[uuid.UUID]struct{}, len(records))
	for _, r := range records {
		withRecord[r.RecordPatientID] = struct{}{}
	}
	out := make([]pModel.PatientModel, 0, len(patients))
	for _, p := range patients {
		if _, ok := withRecord[p.PatientID]; !ok {
			out = append(out, p)
		}
	}
	return out
}

func PatientsWithoutRecord(db *gorm.DB) ([]pModel.PatientModel, error) {
	var patients []pModel.PatientModel
	if err := db.Order("patient_surname, patient_name").Find(&patients).Error; err != nil {
		return nil, err
	}
	var records []model.RecordModel
	if err := db.Find(&records).Error; err != nil {
		return nil, err
	}
	return FilterPatientsWithoutRecord(patients, records), nil
}
