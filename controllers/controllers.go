package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/blogem/linkedin-agent/authenticator"
	"github.com/blogem/linkedin-agent/config"
	"github.com/blogem/linkedin-agent/models"
	"github.com/blogem/linkedin-agent/services"
)

// errorResponse is the JSON body of every failed request
type errorResponse struct {
	Error          string                   `json:"error"`
	Detail         string                   `json:"detail"`
	UpstreamStatus int                      `json:"upstreamStatus,omitempty"`
	UpstreamBody   string                   `json:"upstreamBody,omitempty"`
	Fields         []models.ValidationError `json:"fields,omitempty"`
}

// errorKinds is ordered: a timeout is reported as such whatever operation timed out
var errorKinds = []struct {
	err    error
	name   string
	status int
}{
	{models.ErrTimeout, "TimeoutError", http.StatusGatewayTimeout},
	{models.ErrOAuthDenied, "OAuthDeniedError", http.StatusBadRequest},
	{models.ErrMissingCode, "MissingCodeError", http.StatusBadRequest},
	{models.ErrStateMismatch, "StateMismatchError", http.StatusBadRequest},
	{models.ErrMissingBinding, "MissingSessionError", http.StatusBadRequest},
	{models.ErrMissingToken, "MissingTokenError", http.StatusBadRequest},
	{models.ErrUserNotFound, "UserNotFoundError", http.StatusNotFound},
	{authenticator.ErrUnknownProvider, "UnknownProviderError", http.StatusNotFound},
	{models.ErrTokenExchange, "TokenExchangeError", http.StatusBadGateway},
	{models.ErrProfileFetch, "ProfileFetchError", http.StatusBadGateway},
	{models.ErrGeneration, "GenerationError", http.StatusBadGateway},
	{models.ErrPublish, "PublishError", http.StatusBadGateway},
}

// classify maps an error to its response status and body
func classify(err error) (int, errorResponse) {
	var verrs models.ValidationErrors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest, errorResponse{Error: "ValidationError", Detail: verrs.Error(), Fields: verrs}
	}

	for _, kind := range errorKinds {
		if !errors.Is(err, kind.err) {
			continue
		}

		status := kind.status
		body := errorResponse{Error: kind.name, Detail: err.Error()}

		var upstream *models.UpstreamError
		if errors.As(err, &upstream) {
			body.UpstreamStatus = upstream.Status
			body.UpstreamBody = upstream.Body
			if kind.err == models.ErrPublish && upstream.Status >= 400 && upstream.Status <= 599 {
				status = upstream.Status
			}
		}
		return status, body
	}

	return http.StatusInternalServerError, errorResponse{Error: "InternalError", Detail: "internal server error"}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := classify(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "status", status, "error", err)
	}
	writeJSON(w, status, body)
}

// Controllers holds all controller instances
type Controllers struct {
	Auth   *AuthController
	Posts  *PostController
	Users  *UserController
	System *SystemController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, cfg *config.Config) *Controllers {
	return &Controllers{
		Auth:   NewAuthController(services),
		Posts:  NewPostController(services),
		Users:  NewUserController(services),
		System: NewSystemController(cfg),
	}
}
