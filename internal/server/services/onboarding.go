package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/voicelab/voicelab/internal/common"
	"github.com/voicelab/voicelab/internal/server/models"
	"github.com/voicelab/voicelab/internal/server/repositories/repomanager"
)

type OnboardingService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewOnboardingService(db *sql.DB, m repomanager.RepositoryManager) *OnboardingService {
	return &OnboardingService{
		db:          db,
		repomanager: m,
	}
}

func validateProfile(p *models.OnboardingProfile) error {
	switch {
	case p.Theme == "":
		return fmt.Errorf("%w: theme is required", common.ErrorValidation)
	case p.PersonalDetails.Name == "":
		return fmt.Errorf("%w: personal name is required", common.ErrorValidation)
	case p.PersonalDetails.Age <= 0:
		return fmt.Errorf("%w: age must be positive", common.ErrorValidation)
	case !validEmail(normalizeEmail(p.PersonalDetails.Email)):
		return fmt.Errorf("%w: invalid personal email", common.ErrorValidation)
	case p.ReferralSource == "":
		return fmt.Errorf("%w: referral source is required", common.ErrorValidation)
	case p.Persona == "":
		return fmt.Errorf("%w: persona is required", common.ErrorValidation)
	case p.PricingPlan == "":
		return fmt.Errorf("%w: pricing plan is required", common.ErrorValidation)
	}
	return nil
}

// Create validates and persists an onboarding profile. The personal email is
// normalized and must be unique across profiles.
func (s *OnboardingService) Create(ctx context.Context, profile *models.OnboardingProfile) (*models.OnboardingProfile, error) {

	profile.PersonalDetails.Email = normalizeEmail(profile.PersonalDetails.Email)
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	profile, err := s.repomanager.Onboarding(s.db).Create(ctx, profile)
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// GetByID resolves a profile by ID. A syntactically invalid ID behaves like
// an absent record.
func (s *OnboardingService) GetByID(ctx context.Context, id string) (*models.OnboardingProfile, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}

	return s.repomanager.Onboarding(s.db).GetByID(ctx, id)
}
