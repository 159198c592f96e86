// Package migration manages the database schema.
package migration

import (
	"embed"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"litreview/internal/infrastructure/persistence/models"
	"litreview/internal/shared/config"
	"litreview/internal/shared/logger"
)

const scriptsRoot = "scripts"

//go:embed scripts
var embeddedScripts embed.FS

// Manager runs the configured migration strategy
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

func NewManager(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}

// NewStrategy picks the strategy named by cfg.MigrationStrategy, defaulting
// to goose.
func NewStrategy(cfg *config.DatabaseConfig, log logger.Interface) (Strategy, error) {
	switch strings.ToLower(cfg.MigrationStrategy) {
	case "", "goose":
		return NewGooseStrategy(cfg.Driver, log)
	case "gorm", "automigrate":
		return NewGormAutoMigrateStrategy(models.All(), log), nil
	default:
		return nil, fmt.Errorf("unknown migration strategy: %s", cfg.MigrationStrategy)
	}
}
