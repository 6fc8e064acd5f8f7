package authenticator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/blogem/linkedin-agent/models"
)

const (
	// LinkedInProviderName is the identifier for the LinkedIn provider
	LinkedInProviderName = "linkedin"

	linkedInAuthURL     = "https://www.linkedin.com/oauth/v2/authorization"
	linkedInTokenURL    = "https://www.linkedin.com/oauth/v2/accessToken"
	linkedInUserInfoURL = "https://api.linkedin.com/v2/userinfo"
	linkedInIssuer      = "https://www.linkedin.com/oauth"
	linkedInJWKSURL     = "https://www.linkedin.com/oauth/openid/jwks"

	defaultTimeout  = 30 * time.Second
	maxErrorBodyLen = 64 << 10
)

// LinkedInDefaultScopes returns the scopes needed to sign in and post
func LinkedInDefaultScopes() []string {
	return []string{oidc.ScopeOpenID, "profile", "email", "w_member_social"}
}

// LinkedInProvider implements the Provider interface for LinkedIn
type LinkedInProvider struct {
	config      oauth2.Config
	userInfoURL string
	verifier    *oidc.IDTokenVerifier
	httpClient  *http.Client
	timeout     time.Duration
}

// NewLinkedInProvider creates a new LinkedIn provider with the given configuration
func NewLinkedInProvider(cfg Config) (*LinkedInProvider, error) {
	// Validate required configuration
	if cfg.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if cfg.ClientSecret == "" {
		return nil, errors.New("client secret is required")
	}
	if cfg.RedirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = LinkedInDefaultScopes()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	keySetCtx := oidc.ClientContext(context.Background(), httpClient)
	keySet := oidc.NewRemoteKeySet(keySetCtx, orDefault(cfg.JWKSURL, linkedInJWKSURL))
	verifier := oidc.NewVerifier(orDefault(cfg.Issuer, linkedInIssuer), keySet, &oidc.Config{
		ClientID: cfg.ClientID,
	})

	return &LinkedInProvider{
		config: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   orDefault(cfg.AuthURL, linkedInAuthURL),
				TokenURL:  orDefault(cfg.TokenURL, linkedInTokenURL),
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		userInfoURL: orDefault(cfg.UserInfoURL, linkedInUserInfoURL),
		verifier:    verifier,
		httpClient:  httpClient,
		timeout:     timeout,
	}, nil
}

// Name returns the provider identifier
func (p *LinkedInProvider) Name() string {
	return LinkedInProviderName
}

// AuthCodeURL returns the authorization URL for LinkedIn
func (p *LinkedInProvider) AuthCodeURL(state string) string {
	return BuildAuthorizationURL(p.config.Endpoint.AuthURL, p.config.ClientID, p.config.RedirectURL, p.config.Scopes, state)
}

// ExchangeCode exchanges an authorization code for tokens.
// Client credentials travel in the form body, as LinkedIn requires.
func (p *LinkedInProvider) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	oauth2Token, err := p.config.Exchange(context.WithValue(ctx, oauth2.HTTPClient, p.httpClient), code)
	if err != nil {
		return nil, exchangeError(err)
	}

	// Convert oauth2.Token to our Token type
	token := &Token{
		AccessToken: oauth2Token.AccessToken,
		TokenType:   oauth2Token.TokenType,
	}
	if !oauth2Token.Expiry.IsZero() {
		token.ExpiresIn = int64(time.Until(oauth2Token.Expiry).Round(time.Second).Seconds())
	}

	// Extract ID token if present
	if idToken, ok := oauth2Token.Extra("id_token").(string); ok {
		token.IDToken = idToken
	}

	return token, nil
}

func exchangeError(err error) error {
	if isTimeout(err) {
		return errors.Join(models.ErrTokenExchange, models.ErrTimeout, err)
	}

	var rErr *oauth2.RetrieveError
	if errors.As(err, &rErr) && rErr.Response != nil {
		return models.Upstream(models.ErrTokenExchange, rErr.Response.StatusCode, string(rErr.Body))
	}

	return errors.Join(models.ErrTokenExchange, err)
}

// FetchProfile retrieves the member's OpenID userinfo
func (p *LinkedInProvider) FetchProfile(ctx context.Context, accessToken string) (*Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, errors.Join(models.ErrProfileFetch, fmt.Errorf("build userinfo request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	client := p.config.Client(context.WithValue(ctx, oauth2.HTTPClient, p.httpClient), &oauth2.Token{AccessToken: accessToken})
	resp, err := client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, errors.Join(models.ErrProfileFetch, models.ErrTimeout, err)
		}
		return nil, errors.Join(models.ErrProfileFetch, fmt.Errorf("fetch userinfo: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		return nil, models.Upstream(models.ErrProfileFetch, resp.StatusCode, string(body))
	}

	var info linkedInUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, errors.Join(models.ErrProfileFetch, fmt.Errorf("decode userinfo: %w", err))
	}
	if info.Sub == "" {
		return nil, errors.Join(models.ErrProfileFetch, errors.New("userinfo response missing sub"))
	}

	return &Profile{
		ExternalID:  info.Sub,
		Email:       info.Email,
		DisplayName: info.displayName(),
	}, nil
}

// VerifyIDToken checks the id_token signature, issuer, audience and expiry
func (p *LinkedInProvider) VerifyIDToken(ctx context.Context, rawIDToken string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	idToken, err := p.verifier.Verify(oidc.ClientContext(ctx, p.httpClient), rawIDToken)
	if err != nil {
		if isTimeout(err) {
			return "", errors.Join(models.ErrProfileFetch, models.ErrTimeout, err)
		}
		return "", errors.Join(models.ErrProfileFetch, fmt.Errorf("verify id_token: %w", err))
	}
	return idToken.Subject, nil
}

// linkedInUserInfo represents the response from LinkedIn's userinfo endpoint
type linkedInUserInfo struct {
	Sub        string `json:"sub"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Email      string `json:"email"`
}

// displayName falls back to given/family name, then email, then sub
func (u linkedInUserInfo) displayName() string {
	if u.Name != "" {
		return u.Name
	}
	if full := strings.TrimSpace(u.GivenName + " " + u.FamilyName); full != "" {
		return full
	}
	if u.Email != "" {
		return u.Email
	}
	return u.Sub
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
