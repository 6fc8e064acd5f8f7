package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/blogem/linkedin-agent/authenticator"
	"github.com/blogem/linkedin-agent/config"
	"github.com/blogem/linkedin-agent/controllers"
	"github.com/blogem/linkedin-agent/correlator"
	"github.com/blogem/linkedin-agent/database"
	"github.com/blogem/linkedin-agent/generator"
	appmiddleware "github.com/blogem/linkedin-agent/middleware"
	"github.com/blogem/linkedin-agent/publisher"
	"github.com/blogem/linkedin-agent/repositories"
	"github.com/blogem/linkedin-agent/services"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := config.NewLogger(cfg.Log, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.InitializeDatabase(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	repos := repositories.NewRepositories(db)

	// Initialize LinkedIn provider
	linkedin, err := authenticator.NewLinkedInProvider(authenticator.Config{
		ClientID:     cfg.LinkedIn.ClientID,
		ClientSecret: cfg.LinkedIn.ClientSecret,
		RedirectURL:  cfg.LinkedIn.RedirectURI,
		Scopes:       cfg.LinkedIn.ScopeList(),
		AuthURL:      cfg.LinkedIn.AuthURL,
		TokenURL:     cfg.LinkedIn.TokenURL,
		UserInfoURL:  cfg.LinkedIn.UserInfoURL,
		Issuer:       cfg.LinkedIn.Issuer,
		JWKSURL:      cfg.LinkedIn.JWKSURL,
		Timeout:      cfg.LinkedIn.HTTPTimeout,
	})
	if err != nil {
		return fmt.Errorf("initialize LinkedIn provider: %w", err)
	}

	store, err := newStateStore(ctx, cfg.State)
	if err != nil {
		return fmt.Errorf("initialize state store: %w", err)
	}

	gen, err := generator.NewAnthropicGenerator(generator.Config{
		APIKey:    cfg.Generation.APIKey,
		Model:     cfg.Generation.Model,
		MaxTokens: cfg.Generation.MaxTokens,
		Timeout:   cfg.Generation.Timeout,
		BaseURL:   cfg.Generation.BaseURL,
	})
	if err != nil {
		return fmt.Errorf("initialize generator: %w", err)
	}

	// Initialize services
	srvs := services.NewServices(services.Dependencies{
		Repos:           repos,
		Providers:       authenticator.NewRegistry(linkedin),
		Correlator:      correlator.New(store, cfg.State.TTL),
		Generator:       gen,
		Publisher:       publisher.NewLinkedInPublisher(cfg.LinkedIn.PostsURL, cfg.LinkedIn.HTTPTimeout, nil),
		FrontendURL:     cfg.Frontend.URL,
		PersistIdentity: cfg.LinkedIn.PersistIdentity,
		Logger:          logger,
	})

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs, cfg)

	r, err := setupRouter(ctrl, cfg, logger)
	if err != nil {
		return fmt.Errorf("setup router: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.RequestTimeout + 5*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			"port", cfg.Server.Port,
			"database", cfg.Database.Path,
			"state_store", cfg.State.Store,
			"persist_identity", cfg.LinkedIn.PersistIdentity,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newStateStore(ctx context.Context, cfg config.StateConfig) (correlator.Store, error) {
	switch cfg.Store {
	case "redis":
		client, err := correlator.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return correlator.NewRedisStore(client), nil
	default:
		return correlator.NewMemoryStore(), nil
	}
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, cfg *config.Config, logger *slog.Logger) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appmiddleware.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	r.Use(appmiddleware.CORS(cfg.Frontend.URL))

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "linkedin_agent_session",
		Secure:         cfg.Server.UseHTTPS,
		Gclifetime:     int64(cfg.State.TTL.Seconds()) * 2,
		Maxlifetime:    int64(cfg.State.TTL.Seconds()) * 2,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}

	r.Get("/", ctrl.System.Index)
	r.Get("/test", ctrl.System.Endpoints)
	r.Get("/health", ctrl.System.Health)
	r.Get("/debug/config", ctrl.System.DebugConfig)
	r.Get("/users", ctrl.Users.Index)
	r.Post("/posts", ctrl.Posts.Create)

	// Login routes need the browser session that binds a pending attempt
	r.Group(func(r chi.Router) {
		r.Use(sessionHandler)
		r.Use(appmiddleware.BindSession)

		r.Get("/login/{provider}", ctrl.Auth.Login)
		r.Get("/auth/callback", ctrl.Auth.Callback)
	})

	return r, nil
}
