package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"dietSurvivalWeb/client"
	"dietSurvivalWeb/internal/types/user"
	"dietSurvivalWeb/services"
)

type contextKey string

const SessionKey contextKey = "session"

// AuthCookie carries the bearer token for browser requests.
const AuthCookie = "authToken"

type SessionResolver interface {
	Lookup(ctx context.Context, token string) (*services.Session, error)
}

// SessionMiddleware resolves the request's token, from the authToken cookie
// or an Authorization header, to a session. Requests without a valid
// session pass through anonymously.
func SessionMiddleware(auth SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := auth.Lookup(r.Context(), token)
			if err != nil {
				if err != services.ErrSessionNotFound {
					log.Printf("Session lookup failed: %v", err)
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, sess)
			ctx = client.ContextWithToken(ctx, sess.Token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin sends everyone but admins to the login page.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := GetSessionUser(r.Context())
		if !ok || !u.IsAdmin() {
			if WantsJSON(r) {
				respondWithError(w, http.StatusForbidden, "admin only")
				return
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// TokenFromRequest prefers the auth cookie over a Bearer header.
func TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(AuthCookie); err == nil && c.Value != "" {
		return c.Value
	}
	authHeader := r.Header.Get("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}
	return strings.TrimSpace(token)
}

// WantsJSON reports whether the caller asked for a JSON view model.
func WantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func GetSession(ctx context.Context) (*services.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(*services.Session)
	return sess, ok && sess != nil
}

func GetSessionUser(ctx context.Context) (*user.SessionUser, bool) {
	sess, ok := GetSession(ctx)
	if !ok {
		return nil, false
	}
	return &sess.User, true
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
