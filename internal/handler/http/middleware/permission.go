package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/sawithr/sawit-hr-backend-go/internal/domain/user"
	"github.com/sawithr/sawit-hr-backend-go/internal/handler/http/response"
)

// RequirePermission checks the role claim against the permission table for
// one module/action pair.
func RequirePermission(module string, action user.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s:%s'", module, action))
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s:%s'", module, action))
				return
			}

			role := user.Role(roleStr)
			if !user.HasPermission(role, module, action) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s:%s', but user role is '%s'", module, action, role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
