package httpapi

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicelab/voicelab/internal/common"
	"github.com/voicelab/voicelab/internal/dbx"
	"github.com/voicelab/voicelab/internal/server/config"
	"github.com/voicelab/voicelab/internal/server/models"
	"github.com/voicelab/voicelab/internal/server/repositories/audio"
	"github.com/voicelab/voicelab/internal/server/repositories/onboarding"
	"github.com/voicelab/voicelab/internal/server/repositories/users"
	"github.com/voicelab/voicelab/internal/server/services"
)

// memUsersRepo keeps users in memory and enforces the unique email the way
// the database index does, so full signup/login round trips can run without
// a database.
type memUsersRepo struct {
	mu      sync.Mutex
	byEmail map[string]*models.User
}

func newMemUsersRepo() *memUsersRepo {
	return &memUsersRepo{byEmail: make(map[string]*models.User)}
}

func (r *memUsersRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[user.Email]; taken {
		return nil, common.ErrorAlreadyExists
	}

	stored := *user
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now().UTC()
	r.byEmail[stored.Email] = &stored

	out := stored
	return &out, nil
}

func (r *memUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *user
	return &out, nil
}

func (r *memUsersRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.byEmail {
		if user.ID == id {
			out := *user
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *memUsersRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.byEmail)), nil
}

type memRepoManager struct {
	users *memUsersRepo
}

func (m *memRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (m *memRepoManager) Users(db dbx.DBTX) users.Repository { return m.users }
func (m *memRepoManager) Audio(db dbx.DBTX) audio.Repository { return nil }
func (m *memRepoManager) Onboarding(db dbx.DBTX) onboarding.Repository { return nil }

func newJourneyServer(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		SecretKey:                   "journey-test-secret",
		AccessTokenValidityDuration: 30 * time.Minute,
	}
	m := &memRepoManager{users: newMemUsersRepo()}
	userService := services.NewUserService(nil, m, cfg)

	srv := NewHTTPServer("127.0.0.1:0", nopLogger{}, userService, &fakeAudioService{}, &fakeOnboardingService{}, []string{"*"})
	return srv.Routes()
}

func TestSignupLoginMeJourney(t *testing.T) {
	h := newJourneyServer(t)

	rec := doRequest(t, h, http.MethodPost, "/api/auth/signup",
		`{"email":"Alice@Example.com","password":"hunter2","name":"Alice"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	userID, _ := decodeBody(t, rec)["userId"].(string)
	require.NotEmpty(t, userID)

	// Email comparison is case-insensitive because signup normalized it.
	rec = doRequest(t, h, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"hunter2"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "bearer", body["token_type"])
	assert.Equal(t, userID, body["user_id"])
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	rec = doRequest(t, h, http.MethodGet, "/api/auth/me", "", header)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decodeBody(t, rec)
	assert.Equal(t, userID, me["id"])
	assert.Equal(t, "alice@example.com", me["email"])
}

func TestLoginWrongPasswordJourney(t *testing.T) {
	h := newJourneyServer(t)

	rec := doRequest(t, h, http.MethodPost, "/api/auth/signup",
		`{"email":"bob@example.com","password":"correct horse","name":"Bob"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/api/auth/login",
		`{"email":"bob@example.com","password":"battery staple"}`, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", decodeBody(t, rec)["detail"])

	// Unknown email must be indistinguishable from a wrong password.
	rec = doRequest(t, h, http.MethodPost, "/api/auth/login",
		`{"email":"nobody@example.com","password":"battery staple"}`, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", decodeBody(t, rec)["detail"])
}

func TestConcurrentSignupSingleWinner(t *testing.T) {
	h := newJourneyServer(t)

	const attempts = 8
	codes := make(chan int, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			body := fmt.Sprintf(`{"email":"carol@example.com","password":"pw%d","name":"Carol"}`, n)
			rec := doRequest(t, h, http.MethodPost, "/api/auth/signup", body, nil)
			codes <- rec.Code
		}(i)
	}
	wg.Wait()
	close(codes)

	var created, rejected int
	for code := range codes {
		switch code {
		case http.StatusOK:
			created++
		case http.StatusBadRequest:
			rejected++
		default:
			t.Fatalf("unexpected status %d", code)
		}
	}

	assert.Equal(t, 1, created)
	assert.Equal(t, attempts-1, rejected)
}
