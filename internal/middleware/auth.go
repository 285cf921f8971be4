package middleware

import (
	"net/http"

	"storefront-be/internal/auth"
	"storefront-be/internal/utils"
)

// AuthMiddleware reads the session cookie and, when valid, puts the user id
// into the request context. Invalid or missing tokens leave the request
// anonymous; resolvers decide whether that is an error.
func AuthMiddleware(sessions *auth.Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := auth.ExtractToken(r)
			if tokenStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, ok := sessions.Read(tokenStr)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
