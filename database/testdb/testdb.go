// Package testdb testler için foreign key'leri açık, migrasyonları uygulanmış
// bellek içi bir SQLite veritabanı sağlar.
package testdb

import (
	"testing"

	"vaccinehub.app/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open her çağrıda boş bir veritabanı açar ve test bitince kapatır.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Bellek içi veritabanı bağlantıya özeldir; tek bağlantı herkesin aynı şemayı görmesini sağlar
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.RunMigrationsInOrder(db))
	return db
}
