package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/user"
	"github.com/planilla-cr/planilla-backend-go/internal/handler/http/response"
)

// RequireSupervisor gates the operations that change money-bearing
// state: filing and deleting payroll runs and editing rates.
func RequireSupervisor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrSupervisorAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleSupervisor) {
			response.HandleError(w, user.ErrSupervisorAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
