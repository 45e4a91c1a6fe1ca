package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/clinicore/clinic-system/internal/core/domain"
)

// RequireRole gates a route group to the given roles. Fine-grained checks
// (ownership, assignment) stay in the service layer; this only rejects callers
// whose role can never reach the resource.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextRole).(domain.Role)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if _, ok := allowed[role]; !ok {
				return domain.ErrRoleMismatch
			}
			return next(c)
		}
	}
}
