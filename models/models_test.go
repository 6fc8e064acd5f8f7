package models

import (
	"errors"
	"strings"
	"testing"
)

// Test PostForm validation
func TestPostFormValidation(t *testing.T) {
	// Test valid form
	validForm := PostForm{UserID: 7, Prompt: "announce our launch"}
	if errs := validForm.Validate(); errs.HasErrors() {
		t.Errorf("Expected no errors for valid form, got: %v", errs.GetMessages())
	}

	// Test invalid form
	invalidForm := PostForm{UserID: 0, Prompt: "   "}
	errs := invalidForm.Validate()
	if len(errs) != 2 {
		t.Errorf("Expected 2 errors for invalid form, got: %v", errs.GetMessages())
	}

	// Test oversized prompt
	longForm := PostForm{UserID: 1, Prompt: strings.Repeat("a", maxPromptLength+1)}
	errs = longForm.Validate()
	if len(errs) != 1 || errs[0].Field != "prompt" {
		t.Errorf("Expected a single prompt error, got: %v", errs)
	}

	// Test multi-byte prompt at the limit counts characters, not bytes
	accentedForm := PostForm{UserID: 1, Prompt: strings.Repeat("é", maxPromptLength)}
	if errs := accentedForm.Validate(); errs.HasErrors() {
		t.Errorf("Expected no errors for %d-character prompt, got: %v", maxPromptLength, errs.GetMessages())
	}
}

// Test login phase transitions
func TestPhaseTransitions(t *testing.T) {
	allowed := []struct{ from, to Phase }{
		{PhaseIdle, PhaseAwaitingCallback},
		{PhaseAwaitingCallback, PhaseExchanging},
		{PhaseAwaitingCallback, PhaseFailed},
		{PhaseExchanging, PhaseReconciling},
		{PhaseExchanging, PhaseFailed},
		{PhaseReconciling, PhaseComplete},
		{PhaseReconciling, PhaseFailed},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransition(tc.to) {
			t.Errorf("Expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	rejected := []struct{ from, to Phase }{
		{PhaseIdle, PhaseFailed},
		{PhaseIdle, PhaseExchanging},
		{PhaseAwaitingCallback, PhaseComplete},
		{PhaseComplete, PhaseFailed},
		{PhaseFailed, PhaseAwaitingCallback},
	}
	for _, tc := range rejected {
		if tc.from.CanTransition(tc.to) {
			t.Errorf("Expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}

	if !PhaseComplete.IsTerminal() || !PhaseFailed.IsTerminal() || PhaseExchanging.IsTerminal() {
		t.Error("Unexpected terminal phase classification")
	}
}

// Test error kinds survive wrapping
func TestErrorKinds(t *testing.T) {
	err := Upstream(ErrPublish, 422, `{"message":"duplicate"}`)
	if !errors.Is(err, ErrPublish) {
		t.Error("Expected upstream error to match ErrPublish")
	}

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatal("Expected upstream details to be extractable")
	}
	if upstream.Status != 422 || upstream.Body != `{"message":"duplicate"}` {
		t.Errorf("Unexpected upstream details: %+v", upstream)
	}

	denied := &LoginFailure{From: PhaseAwaitingCallback, Err: &DeniedError{Code: "user_cancelled_login"}}
	if !errors.Is(denied, ErrOAuthDenied) {
		t.Error("Expected denied error to match ErrOAuthDenied")
	}
	if denied.Error() != "oauth error: user_cancelled_login" {
		t.Errorf("Unexpected message: %s", denied.Error())
	}
}
