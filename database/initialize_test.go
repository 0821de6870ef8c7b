package database_test

import (
	"testing"

	"vaccinehub.app/database"
	"vaccinehub.app/database/seeders"
	"vaccinehub.app/database/testdb"
	"vaccinehub.app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestInitialize_NothingToDo(t *testing.T) {
	db := testdb.Open(t)
	assert.ErrorIs(t, database.Initialize(db, false, false), database.ErrNothingToDo)
}

func TestInitialize_MigrateAndSeedIsIdempotent(t *testing.T) {
	db := testdb.Open(t)
	t.Setenv("SEED_ADMIN_PASSWORD", "changeme")
	t.Setenv("SEED_ADMIN_EMAIL", "")

	require.NoError(t, database.Initialize(db, true, true))
	require.NoError(t, database.Initialize(db, true, true))

	var vaccines int64
	require.NoError(t, db.Model(&models.Vaccine{}).Count(&vaccines).Error)
	assert.Equal(t, int64(len(seeders.DefaultVaccines)), vaccines)

	var admin models.Staff
	require.NoError(t, db.Where("email = ?", "admin@vaccinehub.local").First(&admin).Error)
	assert.Equal(t, models.StaffRoleAdmin, admin.Role)
	assert.True(t, admin.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("changeme")))
}

func TestInitialize_SeedWithoutAdminPassword(t *testing.T) {
	db := testdb.Open(t)
	t.Setenv("SEED_ADMIN_PASSWORD", "")

	require.NoError(t, database.Initialize(db, false, true))

	var staff int64
	require.NoError(t, db.Model(&models.Staff{}).Count(&staff).Error)
	assert.Zero(t, staff)
}
