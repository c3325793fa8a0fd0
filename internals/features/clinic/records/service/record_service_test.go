package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	pModel "physiocare_backend/internals/features/clinic/patients/model"
	phModel "physiocare_backend/internals/features/clinic/physios/model"
	"physiocare_backend/internals/features/clinic/records/dto"
	"physiocare_backend/internals/features/clinic/records/model"
	helper "physiocare_backend/internals/helpers"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&pModel.PatientModel{}, &phModel.PhysioModel{}, &model.RecordModel{},
	))
	return db
}

func seedPatient(t *testing.T, db *gorm.DB, surname string) *pModel.PatientModel {
	t.Helper()
	p := &pModel.PatientModel{
		PatientID:              uuid.New(),
		PatientName:            "Paciente",
		PatientSurname:         surname,
		PatientBirthDate:       time.Date(1985, 3, 12, 0, 0, 0, 0, time.UTC),
		PatientInsuranceNumber: "ZZ0000001",
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedPhysio(t *testing.T, db *gorm.DB, license string) *phModel.PhysioModel {
	t.Helper()
	ph := &phModel.PhysioModel{
		PhysioID:            uuid.New(),
		PhysioName:          "Andrés",
		PhysioSurname:       "Santos",
		PhysioSpecialty:     "Sports",
		PhysioLicenseNumber: license,
	}
	require.NoError(t, db.Create(ph).Error)
	return ph
}

func appointmentReq(physioID uuid.UUID, diagnosis string) *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		Date:      "2026-02-10T10:30",
		PhysioID:  physioID.String(),
		Diagnosis: diagnosis,
		Treatment: "Ejercicios de movilidad",
	}
}

/* ==========================
   CREATE
========================== */

func TestCreateRecordOncePerPatient(t *testing.T) {
	db := openTestDB(t)
	patient := seedPatient(t, db, "García")

	req := &dto.CreateRecordRequest{PatientID: patient.PatientID.String(), Notes: "Dolor lumbar"}
	record, err := CreateRecord(db, req)
	require.NoError(t, err)
	assert.Equal(t, patient.PatientID, record.RecordPatientID)
	assert.Empty(t, record.RecordAppointments)

	_, err = CreateRecord(db, req)
	ve, ok := helper.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Messages, "El paciente ya tiene un expediente médico.")
}

func TestCreateRecordUnknownPatient(t *testing.T) {
	db := openTestDB(t)

	req := &dto.CreateRecordRequest{PatientID: uuid.NewString()}
	_, err := CreateRecord(db, req)
	_, ok := helper.AsValidationError(err)
	assert.True(t, ok)
}

/* ==========================
   APPEND APPOINTMENT
========================== */

func TestAppendAppointmentKeepsOrder(t *testing.T) {
	db := openTestDB(t)
	patient := seedPatient(t, db, "García")
	physio := seedPhysio(t, db, "LIC12345")

	record, err := CreateRecord(db, &dto.CreateRecordRequest{PatientID: patient.PatientID.String()})
	require.NoError(t, err)

	_, err = AppendAppointment(db, record.RecordID, appointmentReq(physio.PhysioID, "Cervicalgia"))
	require.NoError(t, err)
	updated, err := AppendAppointment(db, record.RecordID, appointmentReq(physio.PhysioID, "Lumbalgia"))
	require.NoError(t, err)

	require.Len(t, updated.RecordAppointments, 2)
	assert.Equal(t, "Cervicalgia", updated.RecordAppointments[0].AppointmentDiagnosis)
	assert.Equal(t, "Lumbalgia", updated.RecordAppointments[1].AppointmentDiagnosis)
	assert.Equal(t, physio.PhysioID, updated.RecordAppointments[0].AppointmentPhysioID)
}

func TestAppendAppointmentMissingPhysio(t *testing.T) {
	db := openTestDB(t)
	patient := seedPatient(t, db, "García")

	record, err := CreateRecord(db, &dto.CreateRecordRequest{PatientID: patient.PatientID.String()})
	require.NoError(t, err)

	_, err = AppendAppointment(db, record.RecordID, appointmentReq(uuid.New(), "Cervicalgia"))
	assert.True(t, helper.IsNotFound(err))

	// record tidak berubah kalau append gagal
	var stored model.RecordModel
	require.NoError(t, db.First(&stored, "record_id = ?", record.RecordID).Error)
	assert.Empty(t, stored.RecordAppointments)
}

func TestAppendAppointmentMissingRecord(t *testing.T) {
	db := openTestDB(t)
	physio := seedPhysio(t, db, "LIC12345")

	_, err := AppendAppointment(db, uuid.New(), appointmentReq(physio.PhysioID, "Cervicalgia"))
	assert.True(t, helper.IsNotFound(err))
}

/* ==========================
   QUERY COMPOSER
========================== */

func TestJoinRecordsWithPatientsDropsOrphans(t *testing.T) {
	p1 := pModel.PatientModel{PatientID: uuid.New(), PatientSurname: "García"}
	records := []model.RecordModel{
		{RecordID: uuid.New(), RecordPatientID: p1.PatientID},
		{RecordID: uuid.New(), RecordPatientID: uuid.New()}, // pasien sudah dihapus
	}

	joined := JoinRecordsWithPatients(records, []pModel.PatientModel{p1})
	require.Len(t, joined, 1)
	assert.Equal(t, p1.PatientID, joined[0].Patient.PatientID)
}

func TestListRecordsWithPatientsHidesOrphans(t *testing.T) {
	db := openTestDB(t)
	patient := seedPatient(t, db, "García")
	orphan := seedPatient(t, db, "López")

	_, err := CreateRecord(db, &dto.CreateRecordRequest{PatientID: patient.PatientID.String()})
	require.NoError(t, err)
	_, err = CreateRecord(db, &dto.CreateRecordRequest{PatientID: orphan.PatientID.String()})
	require.NoError(t, err)

	require.NoError(t, db.Delete(&pModel.PatientModel{}, "patient_id = ?", orphan.PatientID).Error)

	listed, err := ListRecordsWithPatients(db)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, patient.PatientID, listed[0].Patient.PatientID)
}

func TestSearchByPatientSurname(t *testing.T) {
	db := openTestDB(t)
	garcia := seedPatient(t, db, "García")
	lopez := seedPatient(t, db, "López")

	_, err := CreateRecord(db, &dto.CreateRecordRequest{PatientID: garcia.PatientID.String()})
	require.NoError(t, err)
	_, err = CreateRecord(db, &dto.CreateRecordRequest{PatientID: lopez.PatientID.String()})
	require.NoError(t, err)

	found, err := SearchByPatientSurname(db, "garc")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "García", found[0].Patient.PatientSurname)

	all, err := SearchByPatientSurname(db, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = SearchByPatientSurname(db, "zzz")
	assert.ErrorIs(t, err, ErrNoMatches)
}

func TestSurnameMatches(t *testing.T) {
	assert.True(t, SurnameMatches("García", "garc"))
	assert.True(t, SurnameMatches("García", "GARC"))
	assert.True(t, SurnameMatches("López-García", "garcía"))
	assert.False(t, SurnameMatches("López", "garc"))
}

/* ==========================
   DETAIL EXPANSION
========================== */

func TestGetRecordByPatientID(t *testing.T) {
	db := openTestDB(t)
	patient := seedPatient(t, db, "García")
	physio := seedPhysio(t, db, "LIC12345")

	record, err := CreateRecord(db, &dto.CreateRecordRequest{PatientID: patient.PatientID.String()})
	require.NoError(t, err)
	_, err = AppendAppointment(db, record.RecordID, appointmentReq(physio.PhysioID, "Cervicalgia"))
	require.NoError(t, err)

	detail, err := GetRecordByPatientID(db, patient.PatientID)
	require.NoError(t, err)
	require.NotNil(t, detail.Patient)
	require.Len(t, detail.Appointments, 1)
	require.NotNil(t, detail.Appointments[0].Physio)
	assert.Equal(t, "Andrés Santos", detail.Appointments[0].Physio.Name)
	assert.Equal(t, "Sports", detail.Appointments[0].Physio.Specialty)

	_, err = GetRecordByPatientID(db, uuid.New())
	assert.True(t, helper.IsNotFound(err))
}

func TestGetRecordTolerantOfDeletedPhysio(t *testing.T) {
	db := openTestDB(t)
	patient := seedPatient(t, db, "García")
	physio := seedPhysio(t, db, "LIC12345")

	record, err := CreateRecord(db, &dto.CreateRecordRequest{PatientID: patient.PatientID.String()})
	require.NoError(t, err)
	_, err = AppendAppointment(db, record.RecordID, appointmentReq(physio.PhysioID, "Cervicalgia"))
	require.NoError(t, err)

	require.NoError(t, db.Delete(&phModel.PhysioModel{}, "physio_id = ?", physio.PhysioID).Error)

	detail, err := GetRecordByPatientID(db, patient.PatientID)
	require.NoError(t, err)
	require.Len(t, detail.Appointments, 1)
	assert.Nil(t, detail.Appointments[0].Physio)
}

/* ==========================
   PATIENTS WITHOUT RECORD
========================== */

func TestFilterPatientsWithoutRecord(t *testing.T) {
	withRecord := pModel.PatientModel{PatientID: uuid.New()}
	without := pModel.PatientModel{PatientID: uuid.New()}
	records := []model.RecordModel{{RecordID: uuid.New(), RecordPatientID: withRecord.PatientID}}

	out := FilterPatientsWithoutRecord([]pModel.PatientModel{withRecord, without}, records)
	require.Len(t, out, 1)
	assert.Equal(t, without.PatientID, out[0].PatientID)
}

func TestPatientsWithoutRecord(t *testing.T) {
	db := openTestDB(t)
	taken := seedPatient(t, db, "García")
	free := seedPatient(t, db, "López")

	_, err := CreateRecord(db, &dto.CreateRecordRequest{PatientID: taken.PatientID.String()})
	require.NoError(t, err)

	out, err := PatientsWithoutRecord(db)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, free.PatientID, out[0].PatientID)
}
