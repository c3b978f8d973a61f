// Package services contains the business logic of the server. Services
// validate input, call repositories, and translate repository sentinels into
// outcome errors for the transport layer.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/voicelab/voicelab/internal/common"
	"github.com/voicelab/voicelab/internal/server/auth"
	"github.com/voicelab/voicelab/internal/server/config"
	"github.com/voicelab/voicelab/internal/server/models"
	"github.com/voicelab/voicelab/internal/server/repositories/repomanager"
)

// LoginResult is what a successful login hands back to the transport layer:
// a signed access token and the public fields of the user. The password
// digest never leaves the service.
type LoginResult struct {
	AccessToken string
	User        *models.User
}

type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

// Register creates a new user. No token is issued at signup; callers log in
// separately. A taken email yields common.ErrorAlreadyExists whether it is
// caught by the pre-check or by the store's unique index.
func (s *UserService) Register(ctx context.Context, email, name, password string) (*models.User, error) {

	email = normalizeEmail(email)
	if !validEmail(email) {
		return nil, fmt.Errorf("%w: invalid email", common.ErrorValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", common.ErrorValidation)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrorValidation)
	}

	repo := s.repomanager.Users(s.db)

	_, err := repo.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	digest, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrorValidation, err)
	}

	user := &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: digest,
	}

	// The pre-check above races with concurrent signups; the unique index
	// on email is what actually guarantees a single winner.
	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

// Login verifies the credentials and mints an access token. Unknown emails
// and wrong passwords both yield common.ErrorUnauthorized so a caller cannot
// tell whether the email exists.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &LoginResult{AccessToken: token, User: user}, nil
}

// GetByID resolves a user by ID. A syntactically invalid ID behaves like an
// absent record.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}

	return s.repomanager.Users(s.db).GetUserByID(ctx, id)
}

// Authenticate resolves a bearer token to a live user record. Every failure
// (expired, bad signature, malformed, user gone) collapses to
// common.ErrorUnauthorized for the transport layer.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	user, err := s.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}
