package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"orderflow/internal/adapters/out/postgres/migrations"

	// database/sql driver for "postgres".
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDatabase opens the connection pool with lib/pq and hands it to GORM.
// The caller owns the returned *sql.DB and must close it.
func OpenDatabase(ctx context.Context, cfg Config) (*sql.DB, *gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("open gorm: %w", err)
	}

	return sqlDB, gormDB, nil
}

// Migrate applies pending schema migrations and returns the resulting version.
func Migrate(ctx context.Context, db *sql.DB) (int64, error) {
	if err := migrations.Up(ctx, db); err != nil {
		return 0, err
	}

	return migrations.Version(ctx, db)
}
