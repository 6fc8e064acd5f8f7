package correlator

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/blogem/linkedin-agent/models"
)

// stateBytes yields 256 bits of entropy, 43 URL-safe characters once encoded.
const stateBytes = 32

// Pending is an authorization request awaiting its callback
type Pending struct {
	State     string    `json:"state"`
	Provider  string    `json:"provider"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the attempt outlived its window
func (p *Pending) Expired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}

// Store keeps pending attempts keyed by browser session.
// Take must be atomic: a given attempt is returned at most once.
type Store interface {
	Save(ctx context.Context, binding string, p Pending) error
	// Take removes and returns the attempt for binding.
	// Returns nil, nil when nothing is pending or the attempt expired.
	Take(ctx context.Context, binding string) (*Pending, error)
}

// Issue returns a fresh unguessable URL-safe state token
func Issue() (string, error) {
	b := make([]byte, stateBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Verify reports whether received matches issued exactly.
// Empty values never match.
func Verify(received, issued string) bool {
	if received == "" || issued == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(received), []byte(issued)) == 1
}

// Correlator binds authorization requests to their callbacks
type Correlator struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
}

// New creates a Correlator whose attempts expire after ttl
func New(store Store, ttl time.Duration) *Correlator {
	return &Correlator{store: store, ttl: ttl, now: time.Now}
}

// Begin issues a state for provider and remembers it against binding.
// A second Begin for the same binding replaces the earlier attempt.
func (c *Correlator) Begin(ctx context.Context, binding, provider string) (*Pending, error) {
	if binding == "" {
		return nil, models.ErrMissingBinding
	}

	state, err := Issue()
	if err != nil {
		return nil, err
	}

	now := c.now()
	p := Pending{
		State:     state,
		Provider:  provider,
		IssuedAt:  now,
		ExpiresAt: now.Add(c.ttl),
	}
	if err := c.store.Save(ctx, binding, p); err != nil {
		return nil, fmt.Errorf("save pending login: %w", err)
	}
	return &p, nil
}

// Complete consumes the attempt bound to binding and checks received
// against it. Any missing, expired or different state is ErrStateMismatch.
func (c *Correlator) Complete(ctx context.Context, binding, received string) (*Pending, error) {
	if binding == "" {
		return nil, fmt.Errorf("%w: no browser session", models.ErrStateMismatch)
	}

	p, err := c.store.Take(ctx, binding)
	if err != nil {
		return nil, fmt.Errorf("take pending login: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: no pending login for this session", models.ErrStateMismatch)
	}
	if p.Expired(c.now()) {
		return nil, fmt.Errorf("%w: login attempt expired", models.ErrStateMismatch)
	}
	if !Verify(received, p.State) {
		return nil, models.ErrStateMismatch
	}
	return p, nil
}

// Abandon drops whatever attempt is bound to binding
func (c *Correlator) Abandon(ctx context.Context, binding string) error {
	if binding == "" {
		return nil
	}
	_, err := c.store.Take(ctx, binding)
	return err
}
