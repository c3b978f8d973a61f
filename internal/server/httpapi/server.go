// Package httpapi exposes the public HTTP surface of the server: audio
// lookups, onboarding profiles, signup/login and the health probe.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/voicelab/voicelab/internal/logging"
	"github.com/voicelab/voicelab/internal/server/models"
	"github.com/voicelab/voicelab/internal/server/services"
)

// UserService is the slice of the user service the HTTP layer needs.
type UserService interface {
	Register(ctx context.Context, email, name, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// AudioService resolves localized audio samples.
type AudioService interface {
	GetByLanguage(ctx context.Context, language string) (*models.AudioURL, error)
}

// OnboardingService manages onboarding profiles.
type OnboardingService interface {
	Create(ctx context.Context, profile *models.OnboardingProfile) (*models.OnboardingProfile, error)
	GetByID(ctx context.Context, id string) (*models.OnboardingProfile, error)
}

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address     string
	logger      logging.Logger
	users       UserService
	audio       AudioService
	onboarding  OnboardingService
	corsOrigins []string
}

func NewHTTPServer(address string, l logging.Logger, us UserService, as AudioService, os OnboardingService, corsOrigins []string) *HTTPServer {
	return &HTTPServer{
		address:     address,
		logger:      l.With("module", "http_server"),
		users:       us,
		audio:       as,
		onboarding:  os,
		corsOrigins: corsOrigins,
	}
}

// Routes assembles the router. Exposed for tests.
func (s *HTTPServer) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	r.Use(s.logRequests)

	r.Get("/", s.root)
	r.Get("/health", s.health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/audio", s.getAudioURL)

		r.Post("/onboarding", s.createOnboardingProfile)
		r.Get("/onboarding/{id}", s.getOnboardingProfile)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", s.signup)
			r.Post("/login", s.login)

			r.Group(func(r chi.Router) {
				r.Use(s.requireAuth)
				r.Get("/me", s.me)
			})
		})
	})

	return r
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
