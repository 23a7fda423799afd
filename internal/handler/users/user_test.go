package users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"todo-backend/internal/database"
	"todo-backend/internal/middleware"
	"todo-backend/internal/model"
	"todo-backend/internal/service"
	"todo-backend/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func newJSONCtx(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newAuthedCtx(e *echo.Echo, user *model.User) (echo.Context, *httptest.ResponseRecorder) {
	ctx, rec := newJSONCtx(e, http.MethodGet, "")
	ctx.Set(middleware.ContextUserKey, user)
	return ctx, rec
}

func restore() {
	hashPassword = service.HashPassword
	comparePassword = service.ComparePassword
	issueToken = service.IssueToken
	createUser = store.CreateUser
	getUserByID = store.GetUserByID
	getUserByUsername = store.GetUserByUsername
	getUserByEmail = store.GetUserByEmail
	updateUserToken = store.UpdateUserToken
	deleteUser = store.DeleteUser
}

func TestRegisterHandler(t *testing.T) {
	e := echo.New()

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, http.MethodPost, "{")
		require.NoError(t, RegisterHandler(nil, "s")(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Validation Failed")
	})

	t.Run("validate error names the field", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("Field validation for 'Email' failed on the 'email' tag")}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"username":"a","email":"bad","password":"p"}`)
		require.NoError(t, RegisterHandler(nil, "s")(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Validation Failed")
		require.Contains(t, rec.Body.String(), "Email")
		require.Contains(t, rec.Body.String(), "\"body\"")
	})

	t.Run("conflict", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			return nil, &store.ConflictError{Entity: store.EntityUser}
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"username":"a","email":"a@b.com","password":"p"}`)
		require.NoError(t, RegisterHandler(nil, "s")(ctx))
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Contains(t, rec.Body.String(), "User already exists")
	})

	t.Run("hash error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		hashPassword = func(string) (string, error) { return "", errors.New("hash") }
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"username":"a","email":"a@b.com","password":"p"}`)
		require.NoError(t, RegisterHandler(nil, "s")(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success lower-cases and persists the token", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		hashPassword = func(p string) (string, error) { require.Equal(t, "p", p); return "h", nil }
		var created *model.User
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			created = u
			u.ID = 1
			u.CreatedAt = time.Now().UTC()
			return u, nil
		}
		issueToken = func(secret string, userID int) (string, error) {
			require.Equal(t, "s", secret)
			require.Equal(t, 1, userID)
			return "tok", nil
		}
		var storedToken string
		updateUserToken = func(_ context.Context, _ database.DB, userID int, token string) error {
			require.Equal(t, 1, userID)
			storedToken = token
			return nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"username":"Alice","email":"Alice@EXAMPLE.com","password":"p"}`)
		require.NoError(t, RegisterHandler(nil, "s")(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, "alice", created.Username)
		require.Equal(t, "alice@example.com", created.Email)
		require.Equal(t, "h", created.Password)
		require.Equal(t, "tok", storedToken)
		require.Contains(t, rec.Body.String(), "\"token\":\"tok\"")
		require.Contains(t, rec.Body.String(), "\"username\":\"alice\"")
	})

	t.Run("token persist error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			u.ID = 1
			return u, nil
		}
		issueToken = func(string, int) (string, error) { return "tok", nil }
		updateUserToken = func(context.Context, database.DB, int, string) error { return errors.New("db") }
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"username":"a","email":"a@b.com","password":"p"}`)
		require.NoError(t, RegisterHandler(nil, "s")(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	e := echo.New()

	t.Run("unknown username", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByUsername = func(_ context.Context, _ database.DB, username string) (*model.User, error) {
			require.Equal(t, "bob", username)
			return nil, &store.NotFoundError{Entity: store.EntityUser, Field: "username", Value: username}
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"username":"Bob","password":"p"}`)
		require.NoError(t, LoginHandler(nil, "s")(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "User with username bob does not exist")
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(_ context.Context, _ database.DB, email string) (*model.User, error) {
			return nil, &store.NotFoundError{Entity: store.EntityUser, Field: "email", Value: email}
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"email":"bob@example.com","password":"p"}`)
		require.NoError(t, LoginHandler(nil, "s")(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "User with email bob@example.com does not exist")
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: 1, Password: "h"}, nil
		}
		comparePassword = func(string, string) error { return errors.New("mismatch") }
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"username":"alice","password":"wrong"}`)
		require.NoError(t, LoginHandler(nil, "s")(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid password")
	})

	t.Run("success rotates the stored token", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: 1, Password: "h"}, nil
		}
		comparePassword = func(hash, password string) error {
			require.Equal(t, "h", hash)
			require.Equal(t, "p", password)
			return nil
		}
		issueToken = func(string, int) (string, error) { return "fresh", nil }
		rotated := false
		updateUserToken = func(_ context.Context, _ database.DB, userID int, token string) error {
			require.Equal(t, 1, userID)
			require.Equal(t, "fresh", token)
			rotated = true
			return nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"username":"alice","password":"p"}`)
		require.NoError(t, LoginHandler(nil, "s")(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, rotated)
		require.Contains(t, rec.Body.String(), "\"token\":\"fresh\"")
	})

	t.Run("rotation persist error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: 1, Password: "h"}, nil
		}
		comparePassword = func(string, string) error { return nil }
		issueToken = func(string, int) (string, error) { return "fresh", nil }
		updateUserToken = func(context.Context, database.DB, int, string) error { return errors.New("db") }
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"username":"alice","password":"p"}`)
		require.NoError(t, LoginHandler(nil, "s")(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestProfileHandler(t *testing.T) {
	e := echo.New()

	t.Run("no identity", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		require.NoError(t, ProfileHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("deleted since auth", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) {
			return nil, &store.NotFoundError{Entity: store.EntityUser, Field: "id", Value: 3}
		}
		ctx, rec := newAuthedCtx(e, &model.User{ID: 3})
		require.NoError(t, ProfileHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "User with id 3 does not exist")
	})

	t.Run("success omits sensitive fields", func(t *testing.T) {
		t.Cleanup(restore)
		tok := "tok"
		getUserByID = func(_ context.Context, _ database.DB, id int) (*model.User, error) {
			require.Equal(t, 3, id)
			return &model.User{ID: 3, Username: "alice", Email: "alice@example.com", Password: "h", Token: &tok}, nil
		}
		ctx, rec := newAuthedCtx(e, &model.User{ID: 3})
		require.NoError(t, ProfileHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "\"username\":\"alice\"")
		require.Contains(t, rec.Body.String(), "\"email\":\"alice@example.com\"")
		require.NotContains(t, rec.Body.String(), "password")
		require.NotContains(t, rec.Body.String(), "token")
	})
}

func TestDeleteUserHandler(t *testing.T) {
	e := echo.New()

	t.Run("no identity", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, http.MethodDelete, "")
		require.NoError(t, DeleteUserHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		deleteUser = func(context.Context, database.DB, int) error { return errors.New("db") }
		ctx, rec := newAuthedCtx(e, &model.User{ID: 3})
		require.NoError(t, DeleteUserHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success is idempotent", func(t *testing.T) {
		t.Cleanup(restore)
		calls := 0
		deleteUser = func(_ context.Context, _ database.DB, id int) error {
			require.Equal(t, 3, id)
			calls++
			return nil
		}
		for i := 0; i < 2; i++ {
			ctx, rec := newAuthedCtx(e, &model.User{ID: 3})
			require.NoError(t, DeleteUserHandler(nil)(ctx))
			require.Equal(t, http.StatusOK, rec.Code)
			require.Contains(t, rec.Body.String(), "User deleted successfully")
		}
		require.Equal(t, 2, calls)
	})
}
