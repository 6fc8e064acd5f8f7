package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/linkedin-agent/models"
	"github.com/blogem/linkedin-agent/services"
	"github.com/blogem/linkedin-agent/userctx"
)

// AuthController handles the OAuth login round trip
type AuthController struct {
	services *services.Services
}

// NewAuthController creates a new auth controller
func NewAuthController(services *services.Services) *AuthController {
	return &AuthController{services: services}
}

// Login handles GET /login/{provider}
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	provider := chi.URLParam(r, "provider")

	redirect, err := c.services.Auth.BeginLogin(r.Context(), userctx.GetSessionID(r.Context()), provider)
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.Redirect(w, r, redirect, http.StatusTemporaryRedirect)
}

// Callback handles GET /auth/callback
func (c *AuthController) Callback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := models.CallbackParams{
		Code:             query.Get("code"),
		State:            query.Get("state"),
		Error:            query.Get("error"),
		ErrorDescription: query.Get("error_description"),
	}

	result, err := c.services.Auth.HandleCallback(r.Context(), userctx.GetSessionID(r.Context()), params)
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.Redirect(w, r, result.RedirectURL, http.StatusSeeOther)
}
