package middleware

import (
	"net/http"

	"go-clinic-scheduling/internal/domain/entity"
	"go-clinic-scheduling/pkg/response"
)

// RequireRole checks that the authenticated user holds one of the allowed
// roles. Role comes from context, set by AuthMiddleware from JWT claims.
func RequireRole(allowedRoles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for administrator-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequirePatient is a convenience middleware for patient-only endpoints
func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(entity.RolePatient)(next)
}

// RequirePractitioner is a convenience middleware for practitioner-only endpoints
func RequirePractitioner(next http.Handler) http.Handler {
	return RequireRole(entity.RolePractitioner)(next)
}
