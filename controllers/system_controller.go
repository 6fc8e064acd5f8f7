package controllers

import (
	"net/http"

	"github.com/blogem/linkedin-agent/config"
)

const serviceName = "linkedin-agent"

// SystemController serves health and configuration introspection
type SystemController struct {
	cfg *config.Config
}

// NewSystemController creates a new system controller
func NewSystemController(cfg *config.Config) *SystemController {
	return &SystemController{cfg: cfg}
}

type endpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

var endpoints = []endpoint{
	{http.MethodGet, "/", "Service banner"},
	{http.MethodGet, "/test", "Endpoint listing"},
	{http.MethodGet, "/health", "Health check"},
	{http.MethodGet, "/debug/config", "Non-secret configuration"},
	{http.MethodGet, "/login/{provider}", "Start OAuth login"},
	{http.MethodGet, "/auth/callback", "OAuth callback"},
	{http.MethodGet, "/users", "List stored identities"},
	{http.MethodPost, "/posts", "Generate and publish a post"},
}

// Index handles GET /
func (c *SystemController) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": serviceName + " backend is running."})
}

// Endpoints handles GET /test
func (c *SystemController) Endpoints(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "API is working",
		"clientId":    c.cfg.LinkedIn.ClientID,
		"redirectUri": c.cfg.LinkedIn.RedirectURI,
		"endpoints":   endpoints,
	})
}

// Health handles GET /health
func (c *SystemController) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":               "ok",
		"service":              serviceName,
		"providerConfigured":   c.cfg.LinkedIn.ClientID != "" && c.cfg.LinkedIn.ClientSecret != "",
		"generationConfigured": c.cfg.Generation.APIKey != "",
		"persistIdentity":      c.cfg.LinkedIn.PersistIdentity,
	})
}

// DebugConfig handles GET /debug/config. Secrets are reported only as present or absent.
func (c *SystemController) DebugConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"clientId":        c.cfg.LinkedIn.ClientID,
		"redirectUri":     c.cfg.LinkedIn.RedirectURI,
		"scopes":          c.cfg.LinkedIn.ScopeList(),
		"hasClientSecret": c.cfg.LinkedIn.ClientSecret != "",
		"hasApiKey":       c.cfg.Generation.APIKey != "",
		"frontendUrl":     c.cfg.Frontend.URL,
		"stateStore":      c.cfg.State.Store,
	})
}
