package auth

import (
	"net/http"
	"strings"
)

// ExtractAccessToken pulls the bearer token out of the Authorization header.
// Returns "" when the header is absent or malformed.
func ExtractAccessToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
