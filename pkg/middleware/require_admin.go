package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// AdminHeader carries the shared admin password on admin API calls
const AdminHeader = "X-Admin-Password"

// RequireAdmin gates the admin surface behind the shared password. A bcrypt
// hash takes precedence over the plaintext password when both are set; an
// empty config disables the admin surface entirely.
func RequireAdmin(password, passwordHash string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if password == "" && passwordHash == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "unauthorized",
					"message": "Admin access is not configured",
				})
			}

			provided := c.Request().Header.Get(AdminHeader)
			if provided == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "unauthorized",
					"message": "Admin password required",
				})
			}

			if !adminPasswordMatches(provided, password, passwordHash) {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "unauthorized",
					"message": "Invalid admin password",
				})
			}

			return next(c)
		}
	}
}

func adminPasswordMatches(provided, password, passwordHash string) bool {
	if passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(provided)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(password)) == 1
}
