package userctx

import (
	"context"
	"testing"
)

func TestSessionID(t *testing.T) {
	if got := GetSessionID(context.Background()); got != "" {
		t.Errorf("Expected empty session ID, got %q", got)
	}

	ctx := SetSessionID(context.Background(), "abc")
	if got := GetSessionID(ctx); got != "abc" {
		t.Errorf("Expected session ID 'abc', got %q", got)
	}
}
