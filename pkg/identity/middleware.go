package identity

import (
	"log/slog"
	"net/http"
)

// Middleware resolves the caller with auth and stores it in the request
// context. Requests with invalid credentials are rejected with 401;
// requests without credentials continue as anonymous.
func Middleware(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, err := auth.Authenticate(r)
			if err != nil {
				slog.Warn("rejected identity",
					"method", r.Method,
					"url", r.URL.Path,
					"error", err,
				)
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error": "invalid identity token"}`))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}
