// Package repomanager wires repositories to a database handle and owns
// schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/voicelab/voicelab/internal/dbx"
	"github.com/voicelab/voicelab/internal/server/repositories/audio"
	"github.com/voicelab/voicelab/internal/server/repositories/onboarding"
	"github.com/voicelab/voicelab/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Audio(db dbx.DBTX) audio.Repository
	Onboarding(db dbx.DBTX) onboarding.Repository
}
