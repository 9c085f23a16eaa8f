package main

import (
	"context"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/ftorres/marketplace-insights/internal/infrastructure/config"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := run(cfg.Postgres.DSN); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	log.Println("✅ All migrations applied")
}

func run(dsn string) error {
	ctx := context.Background()

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	entries, err := os.ReadDir("migrations")
	if err != nil {
		return err
	}

	// Apply in name order: 001, 002, ...
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}

		log.Println("Running migration:", name)

		content, err := os.ReadFile("migrations/" + name)
		if err != nil {
			return err
		}

		if _, err := conn.Exec(ctx, string(content)); err != nil {
			return err
		}
	}

	return nil
}
