package middleware

import (
	"net/http"
	"strings"

	"todo-backend/internal/api"
	"todo-backend/internal/database"
	"todo-backend/internal/model"
	"todo-backend/internal/service"
	"todo-backend/internal/store"

	"github.com/labstack/echo/v4"
)

// ContextUserKey is where RequireAuth stores the authenticated *model.User.
const ContextUserKey = "user"

var (
	verifyToken = service.VerifyToken
	getUserByID = store.GetUserByID
)

func extractToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// RequireAuth extracts the bearer token, verifies it, loads the referenced
// user and demands that the presented token equal the one stored on the row,
// so issuing a new token revokes every earlier one. Every failure is the same
// opaque 401; callers cannot tell a malformed header from a superseded token.
func RequireAuth(db database.DB, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := extractToken(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Unauthorized"})
			}

			claims, err := verifyToken(secret, token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Unauthorized"})
			}

			user, err := getUserByID(c.Request().Context(), db, claims.UserID)
			if err != nil || user.Token == nil || *user.Token != token {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Unauthorized"})
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user RequireAuth attached, or nil.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(ContextUserKey).(*model.User)
	return user
}
