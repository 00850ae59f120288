package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/tempohq/tempo-backend-go/internal/handler/http/response"
)

// AdminOnly guards HR console routes. The role claim is issued by the
// identity provider; this service only verifies it.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, "Invalid or missing token")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != "admin" {
			response.Forbidden(w, "Admin privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
