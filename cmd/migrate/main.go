package main

import (
	"context"
	"log"
	"time"

	"github.com/forkful/backend/config"
	"github.com/forkful/backend/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Postgres may still be starting when this runs in a compose stack.
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	if err := database.WaitForDatabase(ctx, cfg.DatabaseDSN()); err != nil {
		log.Fatalf("database not ready: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	log.Println("migrations applied successfully")
}
