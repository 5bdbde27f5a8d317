package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/label-system/internal/core/domain"
)

// RBAC enforces role-based access control. A rejected request fails with
// domain.ErrForbidden.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return fmt.Errorf("%w: role %q", domain.ErrForbidden, role)
			}
			return next(c)
		}
	}
}
