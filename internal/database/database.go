package database

import (
	"fmt"

	"inspoboard/internal/config"
	"inspoboard/internal/model"

	sqlite "github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to the configured datastore and brings the schema up to date.
func Open(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.PostgresDSN())
	case config.DriverSQLite:
		dialector = sqlite.Open(SQLiteDSN(cfg.DBPath))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	if cfg.DBDriver == config.DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	logger.Info("✅ Connected to database", zap.String("driver", cfg.DBDriver))
	return db, nil
}

// SQLiteDSN enables foreign keys on the given sqlite path.
func SQLiteDSN(path string) string {
	return path + "?_pragma=foreign_keys(1)"
}

// Migrate creates or updates the boards and cards tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Board{}, &model.Card{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
