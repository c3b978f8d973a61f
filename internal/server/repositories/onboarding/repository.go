// Package onboarding persists onboarding profiles.
package onboarding

import (
	"context"

	"github.com/voicelab/voicelab/internal/server/models"
)

type Repository interface {
	// Create inserts the profile and returns it with the store-assigned ID
	// and timestamps. A duplicate personal email yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, profile *models.OnboardingProfile) (*models.OnboardingProfile, error)

	// GetByID returns common.ErrorNotFound if no profile has the ID.
	GetByID(ctx context.Context, id string) (*models.OnboardingProfile, error)

	// Count reports the number of stored profiles.
	Count(ctx context.Context) (int64, error)
}
