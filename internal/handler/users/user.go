package users

import (
	"errors"
	"net/http"
	"strings"

	"todo-backend/internal/api"
	"todo-backend/internal/database"
	"todo-backend/internal/middleware"
	"todo-backend/internal/model"
	"todo-backend/internal/service"
	"todo-backend/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword      = service.HashPassword
	comparePassword   = service.ComparePassword
	issueToken        = service.IssueToken
	createUser        = store.CreateUser
	getUserByID       = store.GetUserByID
	getUserByUsername = store.GetUserByUsername
	getUserByEmail    = store.GetUserByEmail
	updateUserToken   = store.UpdateUserToken
	deleteUser        = store.DeleteUser
)

// @Summary     Register a new user
// @Description Creates an account (username and email are lower-cased) and returns its first bearer token
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "Registration payload"
// @Success     201 {object} api.RegisterResponse
// @Failure     400 {object} api.ValidationErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/register [post]
func RegisterHandler(db database.DB, secret string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.BodyValidationError("invalid request body"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.BodyValidationError(err.Error()))
		}

		req.Username = strings.ToLower(req.Username)
		req.Email = strings.ToLower(req.Email)

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error registering user"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Username: req.Username,
			Email:    req.Email,
			Password: hash,
		})
		if err != nil {
			var conflict *store.ConflictError
			if errors.As(err, &conflict) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: conflict.Error()})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error registering user"})
		}

		token, err := issueToken(secret, user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error registering user"})
		}
		if err := updateUserToken(c.Request().Context(), db, user.ID, token); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error registering user"})
		}

		return c.JSON(http.StatusCreated, api.RegisterResponse{
			Token:    token,
			Username: user.Username,
			Email:    user.Email,
		})
	}
}

// @Summary     Log in
// @Description Authenticates by username or email plus password and returns a fresh bearer token
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "Login payload (username XOR email)"
// @Success     200 {object} api.TokenResponse
// @Failure     400 {object} api.ValidationErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/login [post]
func LoginHandler(db database.DB, secret string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.BodyValidationError("invalid request body"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.BodyValidationError(err.Error()))
		}

		var (
			user *model.User
			err  error
		)
		if req.Username != "" {
			user, err = getUserByUsername(c.Request().Context(), db, strings.ToLower(req.Username))
		} else {
			user, err = getUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		}
		if err != nil {
			var notFound *store.NotFoundError
			if errors.As(err, &notFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: notFound.Error()})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error logging in user"})
		}

		if err := comparePassword(user.Password, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid password"})
		}

		// Rotate the stored token: the session created here becomes the only
		// live one.
		token, err := issueToken(secret, user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error logging in user"})
		}
		if err := updateUserToken(c.Request().Context(), db, user.ID, token); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error logging in user"})
		}

		return c.JSON(http.StatusOK, api.TokenResponse{Token: token})
	}
}

// @Summary     Get own profile
// @Description Returns the caller's username and email, looked up fresh by id
// @Tags        users
// @Produce     json
// @Success     200 {object} api.ProfileResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/profile [get]
func ProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		if caller == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Unauthorized"})
		}

		// Fresh lookup: the row may have been deleted since the auth check.
		user, err := getUserByID(c.Request().Context(), db, caller.ID)
		if err != nil {
			var notFound *store.NotFoundError
			if errors.As(err, &notFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: notFound.Error()})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error getting user profile"})
		}

		return c.JSON(http.StatusOK, api.ProfileResponse{
			Username: user.Username,
			Email:    user.Email,
		})
	}
}

// @Summary     Delete own account
// @Description Removes the caller's row; deleting an already-gone row still succeeds
// @Tags        users
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/delete [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		if caller == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Unauthorized"})
		}

		if err := deleteUser(c.Request().Context(), db, caller.ID); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error deleting user"})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "User deleted successfully"})
	}
}
