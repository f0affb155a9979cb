package middleware

import (
	"net/http"
	"strings"

	"github.com/promptmixer/promptmixer-backend/pkg/ctxutil"
)

type tokenReader interface {
	Read(token string) (int64, error)
}

// Auth resolves the bearer token into a user id in the request context.
// Requests without an Authorization header pass through anonymously;
// a present but invalid token is rejected with 401.
func Auth(reader tokenReader) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			userID, err := reader.Read(token)
			if err != nil {
				w.Header().Set("WWW-Authenticate", "Bearer")
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
