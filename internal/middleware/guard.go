package middleware

import (
	"github.com/labstack/echo/v4"

	"gtshop/internal/service"
	"gtshop/pkg/errs"
	"gtshop/pkg/response"
)

// RequireSession rejects requests when no user is signed in and stashes
// the session on the echo context for handlers downstream.
func RequireSession(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, found, err := authService.CurrentSession(c.Request().Context())
			if err != nil {
				return response.WriteErrorResponse(c, err, nil)
			}
			if !found {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}
			c.Set("session", session)
			return next(c)
		}
	}
}

// RequireAdmin gates the admin surface. Access is granted by either the
// admin-panel session or a signed-in account whose role is admin.
func RequireAdmin(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			granted, err := authService.AdminSession(ctx)
			if err != nil {
				return response.WriteErrorResponse(c, err, nil)
			}
			if !granted {
				granted, err = authService.IsAdmin(ctx)
				if err != nil {
					return response.WriteErrorResponse(c, err, nil)
				}
			}
			if !granted {
				return response.WriteErrorResponse(c, errs.ErrUnauthorized, nil)
			}
			return next(c)
		}
	}
}
