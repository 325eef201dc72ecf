package database

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Razzak118348/University-job-portal-server/internal/config"
	"github.com/Razzak118348/University-job-portal-server/internal/models"
)

// Connect opens the PostgreSQL connection pool and, when configured,
// creates the documents table.
func Connect(ctx context.Context, cfg config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.ConnString()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if cfg.AutoMigrate {
		if err := db.WithContext(ctx).AutoMigrate(&models.DocumentRecord{}); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("migrate documents: %w", err)
		}
	}
	return db, nil
}

// Open builds the store selected by driver.
func Open(ctx context.Context, driver string, cfg config.DBConfig, log *slog.Logger) (Store, error) {
	switch driver {
	case config.DriverMemory:
		log.Warn("using in-memory document store; data is lost on restart")
		return NewMemoryStore(), nil
	case config.DriverPostgres:
		db, err := Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.Info("database connection established", "host", cfg.Host, "database", cfg.Name)
		return NewGormStore(db), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
