package auth

import (
	"context"
	"net/http"
	"time"
)

type contextKey string

const UserIDKey contextKey = "user_id"

// SessionMiddleware resolves the auth_token cookie into the request context
// and renews the token once it is past half of its lifetime. Requests without
// a valid token pass through unauthenticated; operations that need a user
// reject them through Authorize.
func (h *AuthHandler) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := h.parseToken(cookie.Value)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		// Sliding session: refresh token if it's more than halfway through its duration
		if !claims.expiresAt.IsZero() && time.Until(claims.expiresAt) < TokenDuration/2 {
			if newToken, err := h.GenerateToken(claims.userID); err == nil {
				renewed := sessionCookie(newToken)
				http.SetCookie(w, &renewed)
			}
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
