package audio

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/voicelab/voicelab/internal/common"
	"github.com/voicelab/voicelab/internal/dbx"
	"github.com/voicelab/voicelab/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByLanguage(ctx context.Context, language string) (*models.AudioURL, error) {
	query :=
		`SELECT id, language, url, description, created_at, updated_at FROM audio_urls
		 WHERE language = $1
		 `

	sample := &models.AudioURL{}
	err := r.db.QueryRowContext(ctx, query, language).
		Scan(&sample.ID, &sample.Language, &sample.URL, &sample.Description, &sample.CreatedAt, &sample.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return sample, nil
}

func (r *PostgresRepository) CreateIfMissing(ctx context.Context, sample *models.AudioURL) (bool, error) {
	query :=
		`INSERT INTO audio_urls (language, url, description)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (language) DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, query, sample.Language, sample.URL, sample.Description)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return n > 0, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM audio_urls`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
