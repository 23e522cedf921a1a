package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nutrifyhq/nutrify/internal/ctxkeys"
	"github.com/nutrifyhq/nutrify/internal/service"
)

// Identity checks for a Bearer session token from the external identity
// provider and adds the verified caller identity to the context. Requests
// without a valid token continue unauthenticated; RequireAuth decides
// whether that matters.
func Identity(identityService *service.IdentityService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := identityService.VerifySessionToken(token)
			if err != nil {
				// Invalid token, continue without auth
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxkeys.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth ensures the caller presented a valid session token
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := ctxkeys.CallerIdentity(r.Context())
		if identity == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
			return
		}

		next.ServeHTTP(w, r)
	}
}
