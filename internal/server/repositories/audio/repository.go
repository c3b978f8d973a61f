// Package audio persists localized audio sample URLs.
package audio

import (
	"context"

	"github.com/voicelab/voicelab/internal/server/models"
)

type Repository interface {
	// GetByLanguage returns common.ErrorNotFound if no sample exists for the
	// language. Lookups are exact; callers normalize case beforehand.
	GetByLanguage(ctx context.Context, language string) (*models.AudioURL, error)

	// CreateIfMissing inserts the sample unless one already exists for its
	// language. It reports whether a row was inserted.
	CreateIfMissing(ctx context.Context, sample *models.AudioURL) (bool, error)

	// Count reports the number of stored samples.
	Count(ctx context.Context) (int64, error)
}
