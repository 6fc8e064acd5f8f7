package authenticator

import (
	"net/url"
	"strings"
)

// BuildAuthorizationURL renders the authorization request with parameters in
// a fixed order: response_type, client_id, redirect_uri, scope, state.
// Scopes are joined by spaces and encoded as %20.
func BuildAuthorizationURL(authURL, clientID, redirectURI string, scopes []string, state string) string {
	var b strings.Builder
	b.WriteString(authURL)
	if strings.Contains(authURL, "?") {
		b.WriteByte('&')
	} else {
		b.WriteByte('?')
	}

	params := [][2]string{
		{"response_type", "code"},
		{"client_id", clientID},
		{"redirect_uri", redirectURI},
		{"scope", strings.Join(scopes, " ")},
		{"state", state},
	}
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p[0])
		b.WriteByte('=')
		b.WriteString(escape(p[1]))
	}
	return b.String()
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
