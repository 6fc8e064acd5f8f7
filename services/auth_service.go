package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/blogem/linkedin-agent/authenticator"
	"github.com/blogem/linkedin-agent/correlator"
	"github.com/blogem/linkedin-agent/models"
	"github.com/blogem/linkedin-agent/repositories"
)

// AuthService sequences the authorization-code login
type AuthService interface {
	// BeginLogin starts an attempt for the browser session and returns
	// the provider authorization URL to redirect to
	BeginLogin(ctx context.Context, binding, provider string) (string, error)

	// HandleCallback finishes the attempt bound to the browser session.
	// Failures are *models.LoginFailure wrapping one of the models error kinds.
	HandleCallback(ctx context.Context, binding string, params models.CallbackParams) (*models.LoginResult, error)
}

// AuthOptions configures NewAuthService
type AuthOptions struct {
	Providers       *authenticator.Registry
	Correlator      *correlator.Correlator
	Users           repositories.UserRepository
	FrontendURL     string
	PersistIdentity bool
	Logger          *slog.Logger
}

type authService struct {
	providers       *authenticator.Registry
	correlator      *correlator.Correlator
	users           repositories.UserRepository
	frontendURL     string
	persistIdentity bool
	logger          *slog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(opts AuthOptions) AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &authService{
		providers:       opts.Providers,
		correlator:      opts.Correlator,
		users:           opts.Users,
		frontendURL:     opts.FrontendURL,
		persistIdentity: opts.PersistIdentity,
		logger:          logger.With("component", "auth"),
	}
}

// attempt tracks the phase of one login and logs every move
type attempt struct {
	phase  models.Phase
	logger *slog.Logger
}

func (a *attempt) advance(next models.Phase) {
	if !a.phase.CanTransition(next) {
		panic(fmt.Sprintf("login: illegal transition %s -> %s", a.phase, next))
	}
	a.logger.Debug("login phase", "from", a.phase, "to", next)
	a.phase = next
}

func (a *attempt) fail(err error) error {
	from := a.phase
	a.advance(models.PhaseFailed)
	a.logger.Warn("login failed", "phase", from, "error", err)
	return &models.LoginFailure{From: from, Err: err}
}

// BeginLogin issues a state bound to the session and builds the authorization URL
func (s *authService) BeginLogin(ctx context.Context, binding, provider string) (string, error) {
	p, err := s.providers.Get(provider)
	if err != nil {
		return "", err
	}

	pending, err := s.correlator.Begin(ctx, binding, p.Name())
	if err != nil {
		return "", err
	}

	s.logger.Info("login started", "provider", p.Name(), "phase", models.PhaseAwaitingCallback, "expires_at", pending.ExpiresAt)
	return p.AuthCodeURL(pending.State), nil
}

// HandleCallback validates the callback, exchanges the code and reconciles the identity
func (s *authService) HandleCallback(ctx context.Context, binding string, params models.CallbackParams) (*models.LoginResult, error) {
	a := &attempt{phase: models.PhaseAwaitingCallback, logger: s.logger}

	if params.Error != "" {
		s.abandon(ctx, binding)
		return nil, a.fail(&models.DeniedError{Code: params.Error, Description: params.ErrorDescription})
	}
	if params.Code == "" {
		s.abandon(ctx, binding)
		return nil, a.fail(models.ErrMissingCode)
	}

	pending, err := s.correlator.Complete(ctx, binding, params.State)
	if err != nil {
		return nil, a.fail(err)
	}

	provider, err := s.providers.Get(pending.Provider)
	if err != nil {
		return nil, a.fail(errors.Join(models.ErrTokenExchange, err))
	}

	// The code is single-use: once exchange starts the request may go away
	// but the attempt still runs to completion under the provider timeouts.
	ctx = context.WithoutCancel(ctx)

	a.advance(models.PhaseExchanging)
	token, err := provider.ExchangeCode(ctx, params.Code)
	if err != nil {
		return nil, a.fail(err)
	}

	profile, err := provider.FetchProfile(ctx, token.AccessToken)
	if err != nil {
		return nil, a.fail(err)
	}

	if token.IDToken != "" {
		subject, err := provider.VerifyIDToken(ctx, token.IDToken)
		if err != nil {
			return nil, a.fail(err)
		}
		if subject != profile.ExternalID {
			return nil, a.fail(fmt.Errorf("%w: id_token subject does not match userinfo subject", models.ErrProfileFetch))
		}
	}

	a.advance(models.PhaseReconciling)
	result := &models.LoginResult{
		ExternalID:  profile.ExternalID,
		DisplayName: profile.DisplayName,
	}
	if s.persistIdentity {
		user, err := s.users.Upsert(ctx, profile.ExternalID, profile.Email, profile.DisplayName, token.AccessToken)
		if err != nil {
			return nil, a.fail(fmt.Errorf("store identity: %w", err))
		}
		result.UserID = user.ID
		result.DisplayName = user.DisplayName
	}

	redirect, err := s.frontendRedirect(result)
	if err != nil {
		return nil, a.fail(err)
	}
	result.RedirectURL = redirect

	a.advance(models.PhaseComplete)
	s.logger.Info("login complete", "provider", provider.Name(), "external_id", result.ExternalID, "user_id", result.UserID)
	return result, nil
}

func (s *authService) abandon(ctx context.Context, binding string) {
	if err := s.correlator.Abandon(ctx, binding); err != nil {
		s.logger.Warn("failed to drop pending login", "error", err)
	}
}

func (s *authService) frontendRedirect(result *models.LoginResult) (string, error) {
	u, err := url.Parse(s.frontendURL)
	if err != nil {
		return "", fmt.Errorf("parse frontend url: %w", err)
	}

	q := u.Query()
	if result.UserID > 0 {
		q.Set("user_id", strconv.FormatInt(result.UserID, 10))
	} else {
		q.Set("external_id", result.ExternalID)
	}
	q.Set("name", result.DisplayName)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
