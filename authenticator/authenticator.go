package authenticator

import (
	"context"
	"net/http"
	"time"
)

// Config holds OAuth provider configuration
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string

	// Endpoint overrides. Empty values fall back to the provider defaults.
	AuthURL     string
	TokenURL    string
	UserInfoURL string
	Issuer      string
	JWKSURL     string

	// Timeout bounds each outbound call to the provider
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Token is the result of a code exchange
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
	IDToken     string
}

// Profile is the identity returned by the provider's userinfo endpoint.
// Email may be empty when the granted scopes do not cover it.
type Profile struct {
	ExternalID  string
	Email       string
	DisplayName string
}

// Provider interface abstracts OAuth provider operations
type Provider interface {
	// Name returns the provider identifier used in login routes
	Name() string

	// AuthCodeURL returns the authorization URL carrying state
	AuthCodeURL(state string) string

	// ExchangeCode trades a single-use authorization code for an access token
	ExchangeCode(ctx context.Context, code string) (*Token, error)

	// FetchProfile retrieves the user's identity with the access token
	FetchProfile(ctx context.Context, accessToken string) (*Profile, error)

	// VerifyIDToken validates an id_token and returns its subject
	VerifyIDToken(ctx context.Context, rawIDToken string) (string, error)
}
