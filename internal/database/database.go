package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/forkful/backend/config"
)

// New opens the application database.
func New(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.DatabaseDSN()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		// Surface unique violations as gorm.ErrDuplicatedKey so services
		// can map them onto the domain taxonomy.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// WaitForDatabase pings the database over a plain connection until it
// accepts connections or the context expires. Used by the migration runner
// so it can start before Postgres is ready.
func WaitForDatabase(ctx context.Context, dsn string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}
	defer db.Close()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		if err := db.PingContext(ctx); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("database not reachable: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}
