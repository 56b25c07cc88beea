// Package database opens the gorm connection to postgres.
package database

import (
	"context"
	"fmt"
	"time"

	"invoice-dashboard-backend/internal/config"
	"invoice-dashboard-backend/internal/logger"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const pingTimeout = 10 * time.Second

// New opens the pool described by cfg.Database and checks it answers.
func New(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	gl := logger.NewGormLogger(log, cfg.Logging.SlowQueryThreshold)
	var gormLog gormlogger.Interface = gl
	if cfg.Logging.Level == "debug" {
		gormLog = gl.LogMode(gormlogger.Info)
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger:                 gormLog,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("database: open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database: pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	log.Info().
		Str("host", cfg.Database.Host).
		Str("name", cfg.Database.Name).
		Int("max_open_conns", cfg.Database.MaxOpenConns).
		Msg("connected to database")
	return db, nil
}

// Close releases the pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
