package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"vaccinehub.app/database/seeders"
	"vaccinehub.app/database/testdb"
	"vaccinehub.app/models"
	"vaccinehub.app/pkg/queryparams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var fixedClock = func() time.Time { return time.UnixMilli(1760000000000) }

func seedVaccine(t *testing.T, db *gorm.DB, code string) *models.Vaccine {
	t.Helper()
	v := &models.Vaccine{Code: code, Name: code + " vaccine", DosesRequired: 1, StockQuantity: 10, IsEnabled: true}
	require.NoError(t, db.Create(v).Error)
	return v
}

func validRequest(vaccineID, nationalID string) CreateAppointmentRequest {
	return CreateAppointmentRequest{
		Name:            "Mohammad Kabir",
		DOB:             "1965-08-14",
		Gender:          "female",
		FathersName:     "Shakib Rahman",
		MothersName:     "Ayesha Kabir",
		Email:           "mohammad.kabir@example.com",
		Phone:           "+88001300001375",
		AddressLine1:    "House 126, Road 26",
		AddressLine2:    "Gulshan",
		City:            "Barisal",
		State:           "Mymensingh",
		Zip:             "2425",
		Country:         "Bangladesh",
		VaccinationType: vaccineID,
		NationalID:      nationalID,
	}
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestCreateAppointment_NationalID(t *testing.T) {
	db := testdb.Open(t)
	vaccine := seedVaccine(t, db, models.VaccineCodeCovid19)
	svc := NewAppointmentServiceWithDB(db).WithClock(fixedClock)

	appointment, err := svc.CreateAppointment(context.Background(), validRequest(vaccine.ID, "1234567890"))
	require.NoError(t, err)

	assert.Equal(t, "REG-1760000000000", appointment.RegNo)
	assert.Equal(t, models.AppointmentStatusPending, appointment.Status)
	assert.NotEmpty(t, appointment.ID)
	assert.NotEqual(t, appointment.ID, appointment.PatientID)

	var patient models.Patient
	require.NoError(t, db.First(&patient, "id = ?", appointment.PatientID).Error)
	require.NotNil(t, patient.NationalID)
	assert.Equal(t, "1234567890", *patient.NationalID)
	assert.Nil(t, patient.BirthCertificateID)
	assert.Equal(t, "1965-08-14", patient.DOB.Format("2006-01-02"))
}

func TestCreateAppointment_NationalIDCountsCharacters(t *testing.T) {
	db := testdb.Open(t)
	vaccine := seedVaccine(t, db, models.VaccineCodeCovid19)
	svc := NewAppointmentServiceWithDB(db).WithClock(fixedClock)

	// Bengalce rakamlar: 10 karakter, 30 bayt.
	id := "১২৩৪৫৬৭৮৯০"
	appointment, err := svc.CreateAppointment(context.Background(), validRequest(vaccine.ID, id))
	require.NoError(t, err)

	var patient models.Patient
	require.NoError(t, db.First(&patient, "id = ?", appointment.PatientID).Error)
	require.NotNil(t, patient.NationalID)
	assert.Equal(t, id, *patient.NationalID)
	assert.Nil(t, patient.BirthCertificateID)
}

func TestCreateAppointment_BirthCertificate(t *testing.T) {
	db := testdb.Open(t)
	vaccine := seedVaccine(t, db, models.VaccineCodePolio)
	svc := NewAppointmentServiceWithDB(db).WithClock(fixedClock)

	for _, id := range []string{"1234567890123", "12345678901234567", "123456789", "১২৩৪৫৬৭৮৯", "BC-2024-000000000000000123"} {
		appointment, err := svc.CreateAppointment(context.Background(), validRequest(vaccine.ID, id))
		require.NoError(t, err)

		var patient models.Patient
		require.NoError(t, db.First(&patient, "id = ?", appointment.PatientID).Error)
		assert.Nil(t, patient.NationalID)
		require.NotNil(t, patient.BirthCertificateID)
		assert.Equal(t, id, *patient.BirthCertificateID)
	}
}

func TestPatientIdentifierColumnsAreUnbounded(t *testing.T) {
	db := testdb.Open(t)

	columns, err := db.Migrator().ColumnTypes(&models.Patient{})
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, col := range columns {
		switch col.Name() {
		case "national_id", "birth_certificate_id":
			seen[col.Name()] = true
			assert.Equal(t, "text", strings.ToLower(col.DatabaseTypeName()), col.Name())
		}
	}
	assert.Len(t, seen, 2)
}

func TestCreateAppointment_UnknownVaccineLeavesNoPatient(t *testing.T) {
	db := testdb.Open(t)
	svc := NewAppointmentServiceWithDB(db)

	_, err := svc.CreateAppointment(context.Background(), validRequest(models.NewID(), "1234567890"))
	require.ErrorIs(t, err, ErrAppointmentCreationFailed)
	assert.Equal(t, "Failed to create appointment", err.Error())

	assert.Zero(t, countRows(t, db, &models.Patient{}))
	assert.Zero(t, countRows(t, db, &models.Appointment{}))
}

func TestCreateAppointment_DeliveryAddressIndependentOfPatient(t *testing.T) {
	db := testdb.Open(t)
	vaccine := seedVaccine(t, db, models.VaccineCodeMeasles)
	svc := NewAppointmentServiceWithDB(db)

	appointment, err := svc.CreateAppointment(context.Background(), validRequest(vaccine.ID, "1234567890"))
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Patient{}).Where("id = ?", appointment.PatientID).Update("city", "Dhaka").Error)

	stored, err := svc.GetAppointmentByID(context.Background(), appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, "Barisal", stored.City)
	require.NotNil(t, stored.Patient)
	assert.Equal(t, "Dhaka", stored.Patient.City)
	require.NotNil(t, stored.Vaccine)
	assert.Equal(t, vaccine.Code, stored.Vaccine.Code)
}

func TestValidateCreateAppointmentRequest(t *testing.T) {
	base := validRequest("vaccine-id", "1234567890")

	tests := []struct {
		name    string
		mutate  func(r *CreateAppointmentRequest)
		wantErr bool
	}{
		{"valid", func(r *CreateAppointmentRequest) {}, false},
		{"address line 2 optional", func(r *CreateAppointmentRequest) { r.AddressLine2 = "" }, false},
		{"missing name", func(r *CreateAppointmentRequest) { r.Name = "" }, true},
		{"blank city", func(r *CreateAppointmentRequest) { r.City = "   " }, true},
		{"missing vaccination type", func(r *CreateAppointmentRequest) { r.VaccinationType = "" }, true},
		{"missing national id", func(r *CreateAppointmentRequest) { r.NationalID = "" }, true},
		{"email without domain dot", func(r *CreateAppointmentRequest) { r.Email = "user@example" }, true},
		{"email with space", func(r *CreateAppointmentRequest) { r.Email = "us er@example.com" }, true},
		{"phone with letters", func(r *CreateAppointmentRequest) { r.Phone = "017-abc" }, true},
		{"phone with punctuation", func(r *CreateAppointmentRequest) { r.Phone = "+880 (17) 1234-5678" }, false},
		{"dob wrong layout", func(r *CreateAppointmentRequest) { r.DOB = "14/08/1965" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)
			err := ValidateCreateAppointmentRequest(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrAppInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateAppointment_InvalidInputDoesNotTouchDB(t *testing.T) {
	db := testdb.Open(t)
	svc := NewAppointmentServiceWithDB(db)

	req := validRequest("whatever", "1234567890")
	req.Email = "not-an-email"
	_, err := svc.CreateAppointment(context.Background(), req)
	require.ErrorIs(t, err, ErrAppInvalidInput)
	assert.Zero(t, countRows(t, db, &models.Patient{}))
}

func TestAppointmentStatusAndDelete(t *testing.T) {
	db := testdb.Open(t)
	vaccine := seedVaccine(t, db, models.VaccineCodeCovid19)
	svc := NewAppointmentServiceWithDB(db)
	ctx := context.Background()

	appointment, err := svc.CreateAppointment(ctx, validRequest(vaccine.ID, "1234567890"))
	require.NoError(t, err)

	require.ErrorIs(t, svc.UpdateAppointmentStatus(ctx, appointment.ID, "done"), ErrAppInvalidStatus)
	require.ErrorIs(t, svc.UpdateAppointmentStatus(ctx, models.NewID(), models.AppointmentStatusConfirmed), ErrAppointmentNotFound)
	require.NoError(t, svc.UpdateAppointmentStatus(ctx, appointment.ID, models.AppointmentStatusConfirmed))

	stored, err := svc.GetAppointmentByRegNo(ctx, appointment.RegNo)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusConfirmed, stored.Status)

	require.NoError(t, svc.DeleteAppointment(ctx, appointment.ID))
	_, err = svc.GetAppointmentByID(ctx, appointment.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.ErrorIs(t, svc.DeleteAppointment(ctx, appointment.ID), ErrAppointmentNotFound)
}

func TestGetAllAppointmentsPaginated(t *testing.T) {
	db := testdb.Open(t)
	vaccine := seedVaccine(t, db, models.VaccineCodeCovid19)
	ctx := context.Background()

	millis := int64(1760000000000)
	svc := NewAppointmentServiceWithDB(db).WithClock(func() time.Time {
		millis++
		return time.UnixMilli(millis)
	})

	for i := 0; i < 3; i++ {
		_, err := svc.CreateAppointment(ctx, validRequest(vaccine.ID, "1234567890"))
		require.NoError(t, err)
	}
	other := validRequest(vaccine.ID, "1234567890123")
	other.Name = "Fatima Hossain"
	created, err := svc.CreateAppointment(ctx, other)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateAppointmentStatus(ctx, created.ID, models.AppointmentStatusCompleted))

	result, err := svc.GetAllAppointmentsPaginated(ctx, queryparams.ListParams{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, result.Data, 2)
	assert.Equal(t, int64(4), result.Meta.TotalItems)
	assert.Equal(t, 2, result.Meta.TotalPages)

	result, err = svc.GetAllAppointmentsPaginated(ctx, queryparams.ListParams{Name: "fatima"})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, created.ID, result.Data.([]models.Appointment)[0].ID)

	result, err = svc.GetAllAppointmentsPaginated(ctx, queryparams.ListParams{Name: created.RegNo})
	require.NoError(t, err)
	assert.Len(t, result.Data, 1)

	result, err = svc.GetAllAppointmentsPaginated(ctx, queryparams.ListParams{Status: string(models.AppointmentStatusPending)})
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Meta.TotalItems)

	counts, err := svc.GetDashboardCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), counts.Appointments)
	assert.Equal(t, int64(3), counts.PendingAppointments)
	assert.Equal(t, int64(1), counts.Vaccines)
	assert.Equal(t, int64(0), counts.Staff)
}

func TestSeededVaccinesAreBookable(t *testing.T) {
	db := testdb.Open(t)
	require.NoError(t, seeders.SeedVaccines(db))

	vaccines, err := NewVaccineServiceWithDB(db).ListEnabledVaccines(context.Background())
	require.NoError(t, err)
	require.Len(t, vaccines, len(seeders.DefaultVaccines))

	_, err = NewAppointmentServiceWithDB(db).CreateAppointment(context.Background(), validRequest(vaccines[0].ID, "1234567890"))
	assert.NoError(t, err)
}
