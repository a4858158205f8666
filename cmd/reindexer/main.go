package main

import (
	"context"
	"fmt"
	"os"

	"codeberg.org/resumatch/server/internal/config"
	"codeberg.org/resumatch/server/internal/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: reindexer <command> [options]")
		fmt.Println("Commands:")
		fmt.Println("  run    - regenerate embeddings for stored documents")
		fmt.Println("  stats  - show document and embedding counts")
		fmt.Println("\nOptions:")
		fmt.Println("  --owner <id>   - limit to a single owner")
		fmt.Println("  --all          - process every owner")
		fmt.Println("  --clear-cache  - clear the embedding cache first")
		os.Exit(1)
	}

	command := os.Args[1]

	// load environment variables
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	// connect to database
	ctx := context.Background()
	db, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to create database pool", "error", err)
	}

	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		logger.Fatal("failed to ping database", "error", err)
	}

	logger.Info("connected to database")

	switch command {
	case "run":
		flags := config.ParseRunFlags()
		if err := RunReindex(ctx, cfg, db, flags); err != nil {
			logger.Fatal("failed to reindex", "error", err)
		}

	case "stats":
		flags := config.ParseStatsFlags()
		if err := ShowStats(ctx, db, flags); err != nil {
			logger.Fatal("failed to read stats", "error", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}
