package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/livehost-agency/agency-backend-go/internal/domain/user"
	"github.com/livehost-agency/agency-backend-go/internal/handler/http/response"
)

// RequireAdmin requires agency staff role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleAdmin) {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireSeller requires live seller role
func RequireSeller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrSellerAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleLiveSeller) {
			response.HandleError(w, user.ErrSellerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
