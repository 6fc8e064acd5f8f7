package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/linkedin-agent/userctx"
)

// BindSession copies the browser session ID into the request context so
// pending logins can be correlated with their callback.
// Must run after the session.Sessioner middleware.
func BindSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess := session.GetSession(r); sess != nil {
			r = r.WithContext(userctx.SetSessionID(r.Context(), sess.ID()))
		}
		next.ServeHTTP(w, r)
	})
}
