// Package users persists identity records.
package users

import (
	"context"

	"github.com/voicelab/voicelab/internal/server/models"
)

type Repository interface {
	// Create inserts the user and returns it with the store-assigned ID and
	// creation time. A duplicate email yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetUserByEmail returns common.ErrorNotFound if no user has the email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns common.ErrorNotFound if no user has the ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Count reports the number of stored users.
	Count(ctx context.Context) (int64, error)
}
