package middleware

import (
	"net/http"

	"vyeya-be/internal/auth"
	"vyeya-be/internal/metrics"
	"vyeya-be/internal/user"
	"vyeya-be/internal/utils"
)

// RequireAuth guards protected routes. A request passes only when it carries
// a well-formed bearer token that verifies and resolves to an existing user;
// the identity is then attached to the request context.
//
//	missing/malformed header -> 401
//	bad signature or expired -> 403
//	subject no longer exists -> 401
func RequireAuth(tokens *auth.TokenService, users user.Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := auth.ExtractAccessToken(r)
			if tokenStr == "" {
				metrics.AuthFailures.Inc()
				utils.WriteJSONError(w, "Access token required", http.StatusUnauthorized)
				return
			}

			userID, err := tokens.Verify(tokenStr)
			if err != nil {
				metrics.AuthFailures.Inc()
				utils.WriteJSONError(w, "Invalid or expired token", http.StatusForbidden)
				return
			}

			u, err := users.FindByID(r.Context(), userID)
			if err != nil {
				metrics.AuthFailures.Inc()
				utils.WriteJSONError(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := utils.SetUserContext(r.Context(), u.ID, u.Email, u.Name, string(u.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
