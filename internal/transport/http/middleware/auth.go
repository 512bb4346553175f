package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/apurva4122/barcoding-sub001/internal/auth"
)

type ctxKey string

const ctxKeySession ctxKey = "session"

type Session struct {
	Role string
}

// Auth parses a Bearer token into the request context when present. Handlers
// decide whether a session is required; the middleware itself never rejects.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeySession, Session{Role: claims.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSession(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(ctxKeySession).(Session)
	return session, ok
}
