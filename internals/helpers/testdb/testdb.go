// Package testdb menyiapkan *gorm.DB di atas sqlmock untuk test repository.
package testdb

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New membuat GORM postgres dialector dengan koneksi sqlmock.
// Default transaction dimatikan supaya expectation cukup query-nya saja.
func New(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	return open(t, false)
}

// NewWithPings sama dengan New, tapi Ping juga harus di-expect (health check).
func NewWithPings(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	return open(t, true)
}

func open(t *testing.T, monitorPings bool) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(monitorPings))
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}
