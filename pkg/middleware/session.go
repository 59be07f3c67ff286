package middleware

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

// RequireSession rejects requests without a valid login session and exposes
// the signed-in identity on the echo context.
func RequireSession(store sessions.Store, sessionName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := store.Get(c.Request(), sessionName)
			if err != nil || sess.IsNew {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
			}
			name, _ := sess.Values["user_name"].(string)
			email, _ := sess.Values["user_email"].(string)
			if email == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
			}
			role, _ := sess.Values["user_role"].(string)
			c.Set("user_name", name)
			c.Set("user_email", email)
			c.Set("user_role", role)
			return next(c)
		}
	}
}
