package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"litreview/internal/infrastructure/persistence/models"
	"litreview/internal/infrastructure/persistence/testutil"
	"litreview/internal/shared/config"
	"litreview/internal/shared/logger"
)

func migrated(t *testing.T) (*gorm.DB, *GooseStrategy) {
	t.Helper()
	db := testutil.OpenSQLite(t)
	strategy, err := NewGooseStrategy("sqlite", logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, NewManager(strategy, logger.NewNopLogger()).Migrate(db))
	return db, strategy
}

func count(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

func TestGooseStrategy_MigrateCreatesSchema(t *testing.T) {
	db, strategy := migrated(t)

	for _, table := range []string{"users", "user_sessions", "tickets", "reviews", "user_follows"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	version, err := strategy.GetVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	// Running again is a no-op.
	require.NoError(t, strategy.Migrate(db))
}

func TestGooseStrategy_DeletingUserCascades(t *testing.T) {
	db, _ := migrated(t)

	stmts := []string{
		`INSERT INTO users (id, username, password_hash, created_at, updated_at) VALUES (1, 'alice', 'h', 1, 1), (2, 'bob', 'h', 1, 1)`,
		`INSERT INTO user_sessions (id, user_id, expires_at, created_at) VALUES ('s1', 1, 10, 1)`,
		`INSERT INTO tickets (id, title, user_id, created_at, updated_at) VALUES (1, 'alice asks', 1, 1, 1), (2, 'bob asks', 2, 1, 1)`,
		`INSERT INTO reviews (ticket_id, user_id, rating, headline, created_at, updated_at) VALUES (1, 2, 4, 'bob answers', 1, 1), (2, 1, 5, 'alice answers', 1, 1)`,
		`INSERT INTO user_follows (user_id, followed_user_id, created_at) VALUES (1, 2, 1), (2, 1, 1)`,
	}
	for _, stmt := range stmts {
		require.NoError(t, db.Exec(stmt).Error)
	}

	require.NoError(t, db.Exec(`DELETE FROM users WHERE id = 1`).Error)

	assert.Equal(t, int64(0), count(t, db, "user_sessions"))
	assert.Equal(t, int64(1), count(t, db, "tickets"))
	// Both reviews go: one answered alice's ticket, the other was alice's.
	assert.Equal(t, int64(0), count(t, db, "reviews"))
	assert.Equal(t, int64(0), count(t, db, "user_follows"))
}

func TestGooseStrategy_EnforcesConstraints(t *testing.T) {
	db, _ := migrated(t)

	require.NoError(t, db.Exec(`INSERT INTO users (id, username, password_hash, created_at, updated_at) VALUES (1, 'alice', 'h', 1, 1)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO tickets (id, title, user_id, created_at, updated_at) VALUES (1, 't', 1, 1, 1)`).Error)

	assert.Error(t, db.Exec(`INSERT INTO users (username, password_hash, created_at, updated_at) VALUES ('alice', 'h', 1, 1)`).Error)
	assert.Error(t, db.Exec(`INSERT INTO reviews (ticket_id, user_id, rating, headline, created_at, updated_at) VALUES (1, 1, 6, 'x', 1, 1)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO reviews (ticket_id, user_id, rating, headline, created_at, updated_at) VALUES (1, 1, 5, 'x', 1, 1)`).Error)
	assert.Error(t, db.Exec(`INSERT INTO reviews (ticket_id, user_id, rating, headline, created_at, updated_at) VALUES (1, 1, 3, 'y', 1, 1)`).Error)
}

func TestGooseStrategy_MigrateDown(t *testing.T) {
	db, strategy := migrated(t)

	require.NoError(t, strategy.MigrateDown(db, 1))

	assert.False(t, db.Migrator().HasTable("users"))
	version, err := strategy.GetVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)
}

func TestGormAutoMigrateStrategy(t *testing.T) {
	db := testutil.OpenSQLite(t)

	require.NoError(t, NewManager(NewGormAutoMigrateStrategy(models.All(), logger.NewNopLogger()), logger.NewNopLogger()).Migrate(db))

	assert.True(t, db.Migrator().HasTable(&models.ReviewModel{}))
}

func TestNewGooseStrategy_UnknownDriver(t *testing.T) {
	_, err := NewGooseStrategy("postgres", logger.NewNopLogger())
	assert.Error(t, err)
}

func TestNewGooseStrategy_SQLiteAliases(t *testing.T) {
	for _, driver := range []string{"sqlite", "sqlite3", "SQLITE3"} {
		strategy, err := NewGooseStrategy(driver, logger.NewNopLogger())
		require.NoError(t, err, driver)
		assert.Equal(t, "sqlite3", strategy.dialect)
	}
}

func TestNewStrategy(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.DatabaseConfig
		wantName string
		wantErr  bool
	}{
		{name: "default is goose", cfg: config.DatabaseConfig{Driver: "sqlite"}, wantName: "goose"},
		{name: "explicit goose", cfg: config.DatabaseConfig{Driver: "mysql", MigrationStrategy: "goose"}, wantName: "goose"},
		{name: "gorm", cfg: config.DatabaseConfig{Driver: "sqlite", MigrationStrategy: "gorm"}, wantName: "gorm_auto_migrate"},
		{name: "unknown strategy", cfg: config.DatabaseConfig{Driver: "sqlite", MigrationStrategy: "flyway"}, wantErr: true},
		{name: "goose on unknown driver", cfg: config.DatabaseConfig{Driver: "postgres"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy, err := NewStrategy(&tt.cfg, logger.NewNopLogger())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, strategy.GetName())

			manager := NewManager(strategy, logger.NewNopLogger())
			assert.Same(t, strategy, manager.GetStrategy())
		})
	}
}
