package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/voicelab/voicelab/internal/dbx"
	"github.com/voicelab/voicelab/internal/server/migrations"
	"github.com/voicelab/voicelab/internal/server/repositories/audio"
	"github.com/voicelab/voicelab/internal/server/repositories/onboarding"
	"github.com/voicelab/voicelab/internal/server/repositories/users"
)

type PostgresRepositoryManager struct {
}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Audio(db dbx.DBTX) audio.Repository {
	return audio.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Onboarding(db dbx.DBTX) onboarding.Repository {
	return onboarding.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return err
	}

	return nil
}
