package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
)

var stateStores = []string{"memory", "redis"}

// Validate checks cross-field constraints that struct tags cannot express.
func (c *Config) Validate() error {
	var errs []error

	if err := validateAbsoluteURL("LINKEDIN_REDIRECT_URI", c.LinkedIn.RedirectURI); err != nil {
		errs = append(errs, err)
	}
	if err := validateAbsoluteURL("FRONTEND_URL", c.Frontend.URL); err != nil {
		errs = append(errs, err)
	}
	if len(c.LinkedIn.ScopeList()) == 0 {
		errs = append(errs, errors.New("LINKEDIN_SCOPES must list at least one scope"))
	}
	if c.LinkedIn.HTTPTimeout <= 0 {
		errs = append(errs, errors.New("HTTP_TIMEOUT must be positive"))
	}
	if c.Generation.Timeout <= 0 {
		errs = append(errs, errors.New("GENERATION_TIMEOUT must be positive"))
	}
	if c.Generation.MaxTokens <= 0 {
		errs = append(errs, errors.New("GENERATION_MAX_TOKENS must be positive"))
	}
	if err := c.validateRequestBudget(); err != nil {
		errs = append(errs, err)
	}
	if c.State.TTL <= 0 {
		errs = append(errs, errors.New("STATE_TTL must be positive"))
	}
	if !slices.Contains(stateStores, c.State.Store) {
		errs = append(errs, fmt.Errorf("STATE_STORE must be one of %v, got %q", stateStores, c.State.Store))
	}
	if c.State.Store == "redis" && c.State.RedisURL == "" {
		errs = append(errs, errors.New("REDIS_URL is required when STATE_STORE=redis"))
	}

	return errors.Join(errs...)
}

// validateRequestBudget requires the request deadline to outlast the
// outbound calls a single request makes back to back: token exchange,
// userinfo and JWKS on the callback, generation then publish on POST /posts.
func (c *Config) validateRequestBudget() error {
	if c.Server.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT must be positive")
	}
	if c.LinkedIn.HTTPTimeout <= 0 || c.Generation.Timeout <= 0 {
		return nil
	}

	callback := 3 * c.LinkedIn.HTTPTimeout
	post := c.Generation.Timeout + c.LinkedIn.HTTPTimeout
	if c.Server.RequestTimeout <= callback {
		return fmt.Errorf("REQUEST_TIMEOUT (%s) must exceed 3 x HTTP_TIMEOUT (%s)", c.Server.RequestTimeout, callback)
	}
	if c.Server.RequestTimeout <= post {
		return fmt.Errorf("REQUEST_TIMEOUT (%s) must exceed GENERATION_TIMEOUT + HTTP_TIMEOUT (%s)", c.Server.RequestTimeout, post)
	}
	return nil
}

func validateAbsoluteURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", name, raw)
	}
	return nil
}
