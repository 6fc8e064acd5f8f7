package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blogem/linkedin-agent/authenticator"
	"github.com/blogem/linkedin-agent/config"
	"github.com/blogem/linkedin-agent/models"
	"github.com/blogem/linkedin-agent/services"
	"github.com/blogem/linkedin-agent/services/mocks"
	"github.com/blogem/linkedin-agent/userctx"
)

type fixture struct {
	auth   *mocks.MockAuthService
	posts  *mocks.MockPostService
	users  *mocks.MockUserService
	router chi.Router
}

func testConfig() *config.Config {
	return &config.Config{
		LinkedIn: config.LinkedInConfig{
			ClientID:     "abc123",
			ClientSecret: "super-secret-value",
			RedirectURI:  "https://host/auth/callback",
			Scopes:       "openid profile email w_member_social",
		},
		Generation: config.GenerationConfig{APIKey: "sk-ant-secret"},
		Frontend:   config.FrontendConfig{URL: "https://app.example.com"},
		State:      config.StateConfig{Store: "memory"},
	}
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		auth:  mocks.NewMockAuthService(t),
		posts: mocks.NewMockPostService(t),
		users: mocks.NewMockUserService(t),
	}
	ctrl := NewControllers(&services.Services{Auth: f.auth, Posts: f.posts, Users: f.users}, testConfig())

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(userctx.SetSessionID(r.Context(), "sess-1")))
		})
	})
	r.Get("/login/{provider}", ctrl.Auth.Login)
	r.Get("/auth/callback", ctrl.Auth.Callback)
	r.Post("/posts", ctrl.Posts.Create)
	r.Get("/users", ctrl.Users.Index)
	r.Get("/", ctrl.System.Index)
	r.Get("/test", ctrl.System.Endpoints)
	r.Get("/health", ctrl.System.Health)
	r.Get("/debug/config", ctrl.System.DebugConfig)
	f.router = r
	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestLogin_RedirectsToProvider(t *testing.T) {
	f := newFixture(t)
	f.auth.EXPECT().BeginLogin(mock.Anything, "sess-1", "linkedin").
		Return("https://www.linkedin.com/oauth/v2/authorization?response_type=code&state=xyz", nil).Once()

	rec := f.do(http.MethodGet, "/login/linkedin", "")

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "https://www.linkedin.com/oauth/v2/authorization?response_type=code&state=xyz", rec.Header().Get("Location"))
}

func TestLogin_UnknownProvider(t *testing.T) {
	f := newFixture(t)
	f.auth.EXPECT().BeginLogin(mock.Anything, "sess-1", "myspace").
		Return("", fmt.Errorf("%w: %q", authenticator.ErrUnknownProvider, "myspace")).Once()

	rec := f.do(http.MethodGet, "/login/myspace", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "UnknownProviderError", decodeError(t, rec).Error)
}

func TestCallback_PassesQueryAndRedirects(t *testing.T) {
	f := newFixture(t)
	f.auth.EXPECT().HandleCallback(mock.Anything, "sess-1", models.CallbackParams{Code: "c0de", State: "st4te"}).
		Return(&models.LoginResult{UserID: 7, RedirectURL: "https://app.example.com?name=Ada&user_id=7"}, nil).Once()

	rec := f.do(http.MethodGet, "/auth/callback?code=c0de&state=st4te", "")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "https://app.example.com?name=Ada&user_id=7", rec.Header().Get("Location"))
}

func TestCallback_ProviderError(t *testing.T) {
	f := newFixture(t)
	params := models.CallbackParams{State: "s", Error: "user_cancelled_authorize", ErrorDescription: "The user cancelled"}
	f.auth.EXPECT().HandleCallback(mock.Anything, "sess-1", params).
		Return(nil, &models.LoginFailure{From: models.PhaseAwaitingCallback, Err: &models.DeniedError{Code: params.Error, Description: params.ErrorDescription}}).Once()

	rec := f.do(http.MethodGet, "/auth/callback?state=s&error=user_cancelled_authorize&error_description=The+user+cancelled", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "OAuthDeniedError", body.Error)
	assert.Contains(t, body.Detail, "user_cancelled_authorize")
}

func TestCallback_TokenExchangeFailure(t *testing.T) {
	f := newFixture(t)
	f.auth.EXPECT().HandleCallback(mock.Anything, "sess-1", mock.Anything).
		Return(nil, &models.LoginFailure{From: models.PhaseExchanging, Err: models.Upstream(models.ErrTokenExchange, 400, `{"error":"invalid_grant"}`)}).Once()

	rec := f.do(http.MethodGet, "/auth/callback?code=c&state=s", "")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "TokenExchangeError", body.Error)
	assert.Equal(t, 400, body.UpstreamStatus)
	assert.Equal(t, `{"error":"invalid_grant"}`, body.UpstreamBody)
}

func TestCreatePost_Success(t *testing.T) {
	f := newFixture(t)
	f.posts.EXPECT().CreatePost(mock.Anything, &models.PostForm{UserID: 7, Prompt: "announce our launch"}).
		Return(&models.PublishedPost{ID: "urn:li:share:1", Text: "We launched #launch"}, nil).Once()

	rec := f.do(http.MethodPost, "/posts", `{"localKey":7,"prompt":"announce our launch"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"status":"success","publishedPostId":"urn:li:share:1","text":"We launched #launch"}`, rec.Body.String())
}

func TestCreatePost_MalformedBody(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/posts", `{"localKey":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ValidationError", decodeError(t, rec).Error)
}

func TestCreatePost_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{"missing token", fmt.Errorf("user identity 7: %w", models.ErrMissingToken), http.StatusBadRequest, "MissingTokenError"},
		{"unknown user", models.ErrUserNotFound, http.StatusNotFound, "UserNotFoundError"},
		{"generation", models.Upstream(models.ErrGeneration, 500, "boom"), http.StatusBadGateway, "GenerationError"},
		{"generation timeout", errors.Join(models.ErrGeneration, models.ErrTimeout), http.StatusGatewayTimeout, "TimeoutError"},
		{"publish passthrough", models.Upstream(models.ErrPublish, http.StatusForbidden, "denied"), http.StatusForbidden, "PublishError"},
		{"publish odd status", models.Upstream(models.ErrPublish, http.StatusOK, "no id"), http.StatusBadGateway, "PublishError"},
		{"validation", models.ValidationErrors{{Field: "prompt", Message: "prompt is required"}}, http.StatusBadRequest, "ValidationError"},
		{"unexpected", errors.New("disk full"), http.StatusInternalServerError, "InternalError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.posts.EXPECT().CreatePost(mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			rec := f.do(http.MethodPost, "/posts", `{"localKey":7,"prompt":"hello"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantKind, decodeError(t, rec).Error)
		})
	}
}

func TestUsers_OmitsAccessToken(t *testing.T) {
	f := newFixture(t)
	f.users.EXPECT().List(mock.Anything).Return([]models.UserIdentity{
		{ID: 1, ExternalID: "sub-1", DisplayName: "Ada", AccessToken: "member-token"},
	}, nil).Once()

	rec := f.do(http.MethodGet, "/users", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sub-1")
	assert.NotContains(t, rec.Body.String(), "member-token")
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, true, body["providerConfigured"])
}

func TestIndex(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"linkedin-agent backend is running."}`, rec.Body.String())
}

func TestEndpoints_ListsRoutes(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/test", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Status      string     `json:"status"`
		ClientID    string     `json:"clientId"`
		RedirectURI string     `json:"redirectUri"`
		Endpoints   []endpoint `json:"endpoints"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "abc123", body.ClientID)
	assert.Equal(t, "https://host/auth/callback", body.RedirectURI)
	assert.Contains(t, body.Endpoints, endpoint{http.MethodGet, "/auth/callback", "OAuth callback"})
	assert.Contains(t, body.Endpoints, endpoint{http.MethodPost, "/posts", "Generate and publish a post"})
	assert.NotContains(t, rec.Body.String(), "super-secret")
}

func TestDebugConfig_HidesSecrets(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/debug/config", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()
	assert.Contains(t, out, `"hasClientSecret":true`)
	assert.Contains(t, out, "abc123")
	assert.NotContains(t, out, "super-secret")
	assert.NotContains(t, out, "sk-ant")
}

func TestClassify_StateMismatch(t *testing.T) {
	err := &models.LoginFailure{From: models.PhaseAwaitingCallback, Err: fmt.Errorf("%w: login attempt expired", models.ErrStateMismatch)}

	status, body := classify(err)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "StateMismatchError", body.Error)
}

func TestClassify_MissingSession(t *testing.T) {
	status, body := classify(models.ErrMissingBinding)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "MissingSessionError", body.Error)
}
