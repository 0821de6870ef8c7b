package services

import (
	"context"
	"testing"
	"time"

	"vaccinehub.app/database/testdb"
	"vaccinehub.app/models"
	"vaccinehub.app/pkg/queryparams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyVaccine(t *testing.T) {
	db := testdb.Open(t)
	vaccine := seedVaccine(t, db, models.VaccineCodeInfluenza)
	svc := NewVaccineServiceWithDB(db)
	ctx := context.Background()

	found, err := svc.VerifyVaccine(ctx, "INFLUENZA")
	require.NoError(t, err)
	assert.Equal(t, vaccine.ID, found.ID)

	_, err = svc.VerifyVaccine(ctx, "UNKNOWN")
	assert.ErrorIs(t, err, ErrVaccineNotFound)
	assert.Equal(t, "Vaccine not found", err.Error())

	_, err = svc.VerifyVaccine(ctx, "")
	assert.ErrorIs(t, err, ErrVaccineCodeRequired)

	// Kod birebir eşleşir, boşluklar kırpılmaz.
	_, err = svc.VerifyVaccine(ctx, " INFLUENZA ")
	assert.ErrorIs(t, err, ErrVaccineNotFound)

	_, err = svc.VerifyVaccine(ctx, "  ")
	assert.ErrorIs(t, err, ErrVaccineNotFound)
}

func TestVerifyVaccine_DuplicateCodeReturnsOldest(t *testing.T) {
	db := testdb.Open(t)
	first := seedVaccine(t, db, "DUP")
	second := seedVaccine(t, db, "DUP")
	require.NoError(t, db.Model(second).Update("created_at", first.CreatedAt.Add(time.Second)).Error)

	found, err := NewVaccineServiceWithDB(db).VerifyVaccine(context.Background(), "DUP")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
}

func TestVaccineCRUD(t *testing.T) {
	db := testdb.Open(t)
	svc := NewVaccineServiceWithDB(db)
	ctx := context.Background()

	_, err := svc.CreateVaccine(ctx, VaccineInput{Name: "No code", DosesRequired: 1})
	require.ErrorIs(t, err, ErrVaccineCodeRequired)
	_, err = svc.CreateVaccine(ctx, VaccineInput{Code: "X", Name: "X", DosesRequired: 0})
	require.ErrorIs(t, err, ErrVaccineInvalidInput)

	created, err := svc.CreateVaccine(ctx, VaccineInput{
		Code: " HEPB ", Name: "Hepatitis B", Manufacturer: "GSK", DosesRequired: 3, StockQuantity: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, "HEPB", created.Code)
	assert.False(t, created.IsEnabled)

	enabled, err := svc.ListEnabledVaccines(ctx)
	require.NoError(t, err)
	assert.Empty(t, enabled)

	require.NoError(t, svc.UpdateVaccine(ctx, created.ID, VaccineInput{
		Code: "HEPB", Name: "Hepatitis B", Manufacturer: "GSK", DosesRequired: 3, StockQuantity: 40, IsEnabled: true,
	}))
	updated, err := svc.GetVaccineByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsEnabled)
	assert.Equal(t, 40, updated.StockQuantity)

	assert.ErrorIs(t, svc.UpdateVaccine(ctx, models.NewID(), VaccineInput{Code: "A", Name: "A", DosesRequired: 1}), ErrVaccineNotFound)

	page, err := svc.GetAllVaccinesPaginated(ctx, queryparams.ListParams{Name: "hepat"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Meta.TotalItems)

	require.NoError(t, svc.DeleteVaccine(ctx, created.ID))
	_, err = svc.GetVaccineByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrVaccineNotFound)
	assert.ErrorIs(t, svc.DeleteVaccine(ctx, created.ID), ErrVaccineNotFound)
}

func TestDeleteVaccine_RefusedWhileReferenced(t *testing.T) {
	db := testdb.Open(t)
	vaccine := seedVaccine(t, db, models.VaccineCodeCovid19)
	ctx := context.Background()

	_, err := NewAppointmentServiceWithDB(db).CreateAppointment(ctx, validRequest(vaccine.ID, "1234567890"))
	require.NoError(t, err)

	svc := NewVaccineServiceWithDB(db)
	assert.ErrorIs(t, svc.DeleteVaccine(ctx, vaccine.ID), ErrVaccineInUse)

	_, err = svc.GetVaccineByID(ctx, vaccine.ID)
	assert.NoError(t, err)
}
