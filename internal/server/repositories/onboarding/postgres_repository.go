package onboarding

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/voicelab/voicelab/internal/common"
	"github.com/voicelab/voicelab/internal/dbx"
	"github.com/voicelab/voicelab/internal/server/models"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, profile *models.OnboardingProfile) (*models.OnboardingProfile, error) {

	query :=
		`INSERT INTO onboarding_profiles (theme, personal_name, personal_age, personal_email, referral_source, persona, pricing_plan)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		profile.Theme,
		profile.PersonalDetails.Name,
		profile.PersonalDetails.Age,
		profile.PersonalDetails.Email,
		profile.ReferralSource,
		profile.Persona,
		profile.PricingPlan,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return profile, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.OnboardingProfile, error) {
	query :=
		`SELECT id, theme, personal_name, personal_age, personal_email, referral_source, persona, pricing_plan, created_at, updated_at
		 FROM onboarding_profiles
		 WHERE id = $1
		 `

	profile := &models.OnboardingProfile{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&profile.ID,
		&profile.Theme,
		&profile.PersonalDetails.Name,
		&profile.PersonalDetails.Age,
		&profile.PersonalDetails.Email,
		&profile.ReferralSource,
		&profile.Persona,
		&profile.PricingPlan,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return profile, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM onboarding_profiles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
