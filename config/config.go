package config

import (
	"strings"
	"time"
)

// Config is the root application configuration. It is built once at
// process start and handed to component constructors.
type Config struct {
	Server     ServerConfig
	LinkedIn   LinkedInConfig
	Generation GenerationConfig
	Frontend   FrontendConfig
	Database   DatabaseConfig
	State      StateConfig
	Log        LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `env:"PORT"             env-default:"8080"`
	UseHTTPS        bool          `env:"USE_HTTPS"        env-default:"false"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT"  env-default:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LinkedInConfig holds the OAuth client registration and API endpoints.
// RedirectURI must match the value registered with LinkedIn byte for byte.
type LinkedInConfig struct {
	ClientID        string        `env:"LINKEDIN_CLIENT_ID"     env-required:"true"`
	ClientSecret    string        `env:"LINKEDIN_CLIENT_SECRET" env-required:"true"`
	RedirectURI     string        `env:"LINKEDIN_REDIRECT_URI"  env-required:"true"`
	Scopes          string        `env:"LINKEDIN_SCOPES"        env-default:"openid profile email w_member_social"`
	AuthURL         string        `env:"LINKEDIN_AUTH_URL"      env-default:"https://www.linkedin.com/oauth/v2/authorization"`
	TokenURL        string        `env:"LINKEDIN_TOKEN_URL"     env-default:"https://www.linkedin.com/oauth/v2/accessToken"`
	UserInfoURL     string        `env:"LINKEDIN_USERINFO_URL"  env-default:"https://api.linkedin.com/v2/userinfo"`
	PostsURL        string        `env:"LINKEDIN_POSTS_URL"     env-default:"https://api.linkedin.com/v2/ugcPosts"`
	Issuer          string        `env:"LINKEDIN_OIDC_ISSUER"   env-default:"https://www.linkedin.com/oauth"`
	JWKSURL         string        `env:"LINKEDIN_JWKS_URL"      env-default:"https://www.linkedin.com/oauth/openid/jwks"`
	HTTPTimeout     time.Duration `env:"HTTP_TIMEOUT"           env-default:"30s"`
	PersistIdentity bool          `env:"PERSIST_IDENTITY"       env-default:"true"`
}

// ScopeList returns the configured scopes split on whitespace.
func (c LinkedInConfig) ScopeList() []string {
	return strings.Fields(c.Scopes)
}

// GenerationConfig holds settings for the post drafting model.
type GenerationConfig struct {
	APIKey    string        `env:"ANTHROPIC_API_KEY"     env-required:"true"`
	Model     string        `env:"ANTHROPIC_MODEL"       env-default:"claude-3-5-haiku-latest"`
	BaseURL   string        `env:"ANTHROPIC_BASE_URL"`
	MaxTokens int64         `env:"GENERATION_MAX_TOKENS" env-default:"1024"`
	Timeout   time.Duration `env:"GENERATION_TIMEOUT"    env-default:"60s"`
}

// FrontendConfig holds the origin that receives post-login redirects.
type FrontendConfig struct {
	URL string `env:"FRONTEND_URL" env-required:"true"`
}

// DatabaseConfig holds the sqlite location.
type DatabaseConfig struct {
	Path string `env:"DATABASE_PATH" env-default:"linkedin_agent.db"`
}

// StateConfig selects where pending login attempts are kept.
type StateConfig struct {
	Store    string        `env:"STATE_STORE" env-default:"memory"`
	RedisURL string        `env:"REDIS_URL"`
	TTL      time.Duration `env:"STATE_TTL"   env-default:"10m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"text"`
}
