// Package repository implements the persistent store ports on postgres via
// gorm. The store is append-only: airports and flights are created once and
// never updated.
package repository

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/daytrip/day-trip-flight-finder/internal/config"
	"github.com/daytrip/day-trip-flight-finder/internal/domain"
)

// Open connects to postgres and migrates the schema. TranslateError is
// required: duplicate-key detection relies on gorm.ErrDuplicatedKey.
func Open(cfg config.DatabaseConfig, log zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(&domain.Airport{}, &domain.Flight{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	log.Info().Str("host", cfg.Host).Str("database", cfg.Name).Msg("Database connected")
	return db, nil
}

// mapStoreError converts gorm sentinels to domain sentinels so callers can
// classify failures without importing gorm.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", domain.ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", domain.ErrDuplicateKey, err)
	default:
		return err
	}
}
