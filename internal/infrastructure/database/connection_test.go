package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demandsurvey/internal/shared/config"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, ":memory:?_foreign_keys=on&_busy_timeout=5000", sqliteDSN(""))
	assert.Equal(t, "survey.db?_foreign_keys=on&_busy_timeout=5000", sqliteDSN("survey.db"))
	assert.Equal(t, "survey.db?cache=shared&_foreign_keys=on&_busy_timeout=5000", sqliteDSN("survey.db?cache=shared"))
}

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:     DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "survey.db"),
	}

	gdb, err := Open(cfg)
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)

	var fk int
	require.NoError(t, gdb.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestInitAndClose(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:     DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "survey.db"),
	}

	require.NoError(t, Init(cfg))
	require.NotNil(t, Get())

	require.NoError(t, Close())
	assert.Nil(t, Get())
	assert.NoError(t, Close(), "closing twice is a no-op")
}
