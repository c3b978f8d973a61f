// Command seed applies the schema migrations and inserts the default audio
// samples. It is a one-shot setup tool; running it again is harmless because
// existing languages are left untouched.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/voicelab/voicelab/internal/server/config"
	"github.com/voicelab/voicelab/internal/server/repositories/repomanager"
	"github.com/voicelab/voicelab/internal/server/services"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

func run() error {

	ctx := context.Background()
	cfg := config.LoadConfig()

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db connect error: %w", err)
	}
	fmt.Println("Connected to database")

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	fmt.Println("Migrations applied")

	audioService := services.NewAudioService(db, m, cfg)

	inserted, err := audioService.Seed(ctx)
	if err != nil {
		return fmt.Errorf("seed error: %w", err)
	}
	for _, lang := range inserted {
		fmt.Printf("Inserted audio URL for language: %s\n", lang)
	}
	if len(inserted) == 0 {
		fmt.Println("Audio URLs already present, nothing to insert")
	}

	audioURLs, profiles, users, err := audioService.Counts(ctx)
	if err != nil {
		return fmt.Errorf("count error: %w", err)
	}

	fmt.Println("Database setup complete:")
	fmt.Printf("  audio_urls: %d\n", audioURLs)
	fmt.Printf("  onboarding_profiles: %d\n", profiles)
	fmt.Printf("  users: %d\n", users)

	return nil
}
