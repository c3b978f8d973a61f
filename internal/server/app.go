// Package server initializes and runs the application: it opens the database,
// applies migrations, wires the services and serves the HTTP API until the
// process is asked to stop.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/voicelab/voicelab/internal/logging"
	"github.com/voicelab/voicelab/internal/server/config"
	"github.com/voicelab/voicelab/internal/server/httpapi"
	"github.com/voicelab/voicelab/internal/server/repositories/repomanager"
	"github.com/voicelab/voicelab/internal/server/services"
)

type App struct {
	config            *config.Config
	logger            logging.Logger
	db                *sql.DB
	userService       *services.UserService
	audioService      *services.AudioService
	onboardingService *services.OnboardingService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	us := services.NewUserService(db, m, cfg)
	as := services.NewAudioService(db, m, cfg)
	obs := services.NewOnboardingService(db, m)

	return &App{
		config:            cfg,
		logger:            logger,
		db:                db,
		userService:       us,
		audioService:      as,
		onboardingService: obs,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewHTTPServer(
		app.config.EndpointAddrHTTP,
		app.logger,
		app.userService,
		app.audioService,
		app.onboardingService,
		app.config.CORSOrigins,
	)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
