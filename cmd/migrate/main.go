// Command migrate applies goose SQL migrations to the configured
// database. It is a thin wrapper so deployments do not need the goose
// binary installed.
//
// Usage:
//
//	migrate [--dir migrations] up|down|status
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/alarino/alarino-backend/internal/config"
)

func main() {
	dirFlag := flag.String("dir", "migrations", "directory with migration files")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		log.Fatal("usage: migrate [--dir migrations] up|down|status")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(*dirFlag))
	if err != nil {
		log.Fatalf("goose provider: %v", err)
	}

	if err := run(ctx, provider, command); err != nil {
		log.Fatalf("migrate %s: %v", command, err)
	}
}

func run(ctx context.Context, provider *goose.Provider, command string) error {
	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return err
		}
		for _, r := range results {
			fmt.Printf("applied %s\n", r.Source.Path)
		}
	case "down":
		result, err := provider.Down(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("rolled back %s\n", result.Source.Path)
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			applied := "pending"
			if s.State == goose.StateApplied {
				applied = "applied"
			}
			fmt.Printf("%-8s %s\n", applied, s.Source.Path)
		}
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}
