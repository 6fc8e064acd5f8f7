package models

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the login and publishing flows.
// Callers match them with errors.Is; collaborator details travel
// alongside as *UpstreamError.
var (
	ErrOAuthDenied    = errors.New("oauth denied")
	ErrMissingCode    = errors.New("authorization code not provided")
	ErrStateMismatch  = errors.New("state mismatch")
	ErrTokenExchange  = errors.New("token exchange failed")
	ErrProfileFetch   = errors.New("profile fetch failed")
	ErrUserNotFound   = errors.New("user not found")
	ErrMissingToken   = errors.New("user has no access token")
	ErrGeneration     = errors.New("generation failed")
	ErrPublish        = errors.New("publish failed")
	ErrTimeout        = errors.New("upstream timeout")
	ErrMissingBinding = errors.New("browser session not found")
)

// UpstreamError carries the status and body returned by an external
// collaborator so the failure can be debugged without re-issuing the call.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream responded with status=%d body=%s", e.Status, e.Body)
}

// Upstream joins an error kind with the collaborator's status and body.
func Upstream(kind error, status int, body string) error {
	return errors.Join(kind, &UpstreamError{Status: status, Body: body})
}

// DeniedError describes a provider-side refusal reported on the callback.
type DeniedError struct {
	Code        string
	Description string
}

func (e *DeniedError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("oauth error: %s", e.Code)
	}
	return fmt.Sprintf("oauth error: %s: %s", e.Code, e.Description)
}

func (e *DeniedError) Unwrap() error { return ErrOAuthDenied }
