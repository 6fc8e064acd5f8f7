package models

import "slices"

// Phase is a step of a single login attempt
type Phase string

const (
	PhaseIdle             Phase = "IDLE"
	PhaseAwaitingCallback Phase = "AWAITING_CALLBACK"
	PhaseExchanging       Phase = "EXCHANGING"
	PhaseReconciling      Phase = "RECONCILING"
	PhaseComplete         Phase = "COMPLETE"
	PhaseFailed           Phase = "FAILED"
)

var phaseTransitions = map[Phase][]Phase{
	PhaseIdle:             {PhaseAwaitingCallback},
	PhaseAwaitingCallback: {PhaseExchanging, PhaseFailed},
	PhaseExchanging:       {PhaseReconciling, PhaseFailed},
	PhaseReconciling:      {PhaseComplete, PhaseFailed},
}

// CanTransition reports whether a login attempt may move from p to next.
// COMPLETE and FAILED are terminal.
func (p Phase) CanTransition(next Phase) bool {
	return slices.Contains(phaseTransitions[p], next)
}

// IsTerminal reports whether no further transitions are possible
func (p Phase) IsTerminal() bool {
	return p == PhaseComplete || p == PhaseFailed
}

// CallbackParams are the query parameters the provider appends to the redirect URI
type CallbackParams struct {
	Code             string
	State            string
	Error            string
	ErrorDescription string
}

// LoginResult is the outcome of a completed callback
type LoginResult struct {
	UserID      int64 // zero when the identity is not persisted
	ExternalID  string
	DisplayName string
	RedirectURL string
}

// LoginFailure records the phase a login attempt was in when it failed
type LoginFailure struct {
	From Phase
	Err  error
}

func (e *LoginFailure) Error() string {
	return e.Err.Error()
}

func (e *LoginFailure) Unwrap() error {
	return e.Err
}
