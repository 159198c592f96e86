package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"litreview/internal/shared/config"
)

func TestOpen_SQLite(t *testing.T) {
	for _, driver := range []string{"sqlite", "sqlite3", "SQLite"} {
		t.Run(driver, func(t *testing.T) {
			cfg := &config.DatabaseConfig{
				Driver: driver,
				Path:   filepath.Join(t.TempDir(), "litreview.db"),
			}

			db, err := Open(cfg)
			require.NoError(t, err)
			t.Cleanup(func() {
				sqlDB, _ := db.DB()
				_ = sqlDB.Close()
			})

			require.NoError(t, db.Exec("CREATE TABLE marker (id INTEGER PRIMARY KEY)").Error)
			_, err = os.Stat(cfg.Path)
			assert.NoError(t, err, "database file should live at the configured path")

			var fk int
			require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
			assert.Equal(t, 1, fk)
		})
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestInitGetClose(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "litreview.db"),
	}

	require.NoError(t, Init(cfg))
	assert.NotNil(t, Get())
	assert.NoError(t, Close())
}
