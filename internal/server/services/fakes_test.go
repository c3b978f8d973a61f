package services

import (
	"context"
	"database/sql"

	"github.com/voicelab/voicelab/internal/dbx"
	"github.com/voicelab/voicelab/internal/server/models"
	audiorepo "github.com/voicelab/voicelab/internal/server/repositories/audio"
	onboardingrepo "github.com/voicelab/voicelab/internal/server/repositories/onboarding"
	usersrepo "github.com/voicelab/voicelab/internal/server/repositories/users"
)

type fakeUsersRepo struct {
	createdWith *models.User
	createOut   *models.User
	createErr   error

	byEmailOut *models.User
	byEmailErr error

	byIDOut *models.User
	byIDErr error

	countOut int64
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.createdWith = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return u, nil
}

func (f *fakeUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

func (f *fakeUsersRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeUsersRepo) Count(ctx context.Context) (int64, error) {
	return f.countOut, nil
}

type fakeAudioRepo struct {
	byLangOut *models.AudioURL
	byLangErr error

	inserted    []string
	insertedOut bool
	insertErr   error

	countOut int64
}

func (f *fakeAudioRepo) GetByLanguage(ctx context.Context, language string) (*models.AudioURL, error) {
	if f.byLangErr != nil {
		return nil, f.byLangErr
	}
	return f.byLangOut, nil
}

func (f *fakeAudioRepo) CreateIfMissing(ctx context.Context, sample *models.AudioURL) (bool, error) {
	if f.insertErr != nil {
		return false, f.insertErr
	}
	if f.insertedOut {
		f.inserted = append(f.inserted, sample.Language)
	}
	return f.insertedOut, nil
}

func (f *fakeAudioRepo) Count(ctx context.Context) (int64, error) {
	return f.countOut, nil
}

type fakeOnboardingRepo struct {
	createdWith *models.OnboardingProfile
	createOut   *models.OnboardingProfile
	createErr   error

	byIDOut *models.OnboardingProfile
	byIDErr error

	countOut int64
}

func (f *fakeOnboardingRepo) Create(ctx context.Context, p *models.OnboardingProfile) (*models.OnboardingProfile, error) {
	f.createdWith = p
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return p, nil
}

func (f *fakeOnboardingRepo) GetByID(ctx context.Context, id string) (*models.OnboardingProfile, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeOnboardingRepo) Count(ctx context.Context) (int64, error) {
	return f.countOut, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	a *fakeAudioRepo
	o *fakeOnboardingRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository { return m.u }
func (m *fakeRepoManager) Audio(db dbx.DBTX) audiorepo.Repository { return m.a }
func (m *fakeRepoManager) Onboarding(db dbx.DBTX) onboardingrepo.Repository { return m.o }
