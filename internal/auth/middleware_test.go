package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gdg-garage/campus-events-api/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

func TestSessionMiddleware_SlidingSession(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	handler := NewAuthHandler(cfg, nil)

	sign := func(expiresIn time.Duration) string {
		claims := jwt.MapClaims{
			"user_id": uint(1),
			"exp":     time.Now().Add(expiresIn).Unix(),
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		tokenString, _ := token.SignedString([]byte(cfg.JWTSecret))
		return tokenString
	}

	serve := func(cookie *http.Cookie) (*httptest.ResponseRecorder, uint) {
		req, _ := http.NewRequest("GET", "/", nil)
		if cookie != nil {
			req.AddCookie(cookie)
		}
		rr := httptest.NewRecorder()

		var seen uint
		nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(UserIDKey).(uint)
			w.WriteHeader(http.StatusOK)
		})

		handler.SessionMiddleware(nextHandler).ServeHTTP(rr, req)
		return rr, seen
	}

	t.Run("TokenRenewed", func(t *testing.T) {
		// Expires in 11 hours, less than TokenDuration/2 = 12 hours
		tokenString := sign(11 * time.Hour)
		rr, seen := serve(&http.Cookie{Name: CookieName, Value: tokenString})

		if rr.Code != http.StatusOK {
			t.Errorf("expected status OK, got %v", rr.Code)
		}
		if seen != 1 {
			t.Errorf("expected user 1 in context, got %d", seen)
		}

		found := false
		for _, c := range rr.Result().Cookies() {
			if c.Name == CookieName {
				found = true
				if c.Value == tokenString {
					t.Errorf("expected new token value, but got the old one")
				}
				break
			}
		}
		if !found {
			t.Errorf("expected new auth_token cookie to be set")
		}
	})

	t.Run("TokenNotRenewed", func(t *testing.T) {
		// Expires in 13 hours, more than TokenDuration/2 = 12 hours
		rr, seen := serve(&http.Cookie{Name: CookieName, Value: sign(13 * time.Hour)})

		if seen != 1 {
			t.Errorf("expected user 1 in context, got %d", seen)
		}
		for _, c := range rr.Result().Cookies() {
			if c.Name == CookieName {
				t.Errorf("did not expect a new auth_token cookie to be set")
			}
		}
	})

	t.Run("NoCookiePassesThrough", func(t *testing.T) {
		rr, seen := serve(nil)
		if rr.Code != http.StatusOK {
			t.Errorf("expected status OK, got %v", rr.Code)
		}
		if seen != 0 {
			t.Errorf("expected no user in context, got %d", seen)
		}
	})

	t.Run("ExpiredTokenIgnored", func(t *testing.T) {
		_, seen := serve(&http.Cookie{Name: CookieName, Value: sign(-time.Hour)})
		if seen != 0 {
			t.Errorf("expected no user for expired token, got %d", seen)
		}
	})
}
