package router

import (
	"errors"
	"net/http"
	"runtime/debug"

	"todo-backend/internal/api"
	"todo-backend/internal/cache"
	"todo-backend/internal/config"
	"todo-backend/internal/database"
	"todo-backend/internal/handler"
	"todo-backend/internal/handler/todos"
	"todo-backend/internal/handler/users"
	"todo-backend/internal/middleware"

	"github.com/labstack/echo/v4"
)

// Setup registers every route under /api/v1 and installs the error handler.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, cfg *config.Config) {
	e.HTTPErrorHandler = ErrorHandler(cfg.IsProduction())

	requireAuth := middleware.RequireAuth(db, cfg.JWT.Secret)

	v1 := e.Group("/api/v1")

	v1.GET("/health", handler.HealthHandler(db, rdb))

	u := v1.Group("/users")
	u.POST("/register", users.RegisterHandler(db, cfg.JWT.Secret))
	u.POST("/login", users.LoginHandler(db, cfg.JWT.Secret))
	u.GET("/profile", users.ProfileHandler(db), requireAuth)
	u.DELETE("/delete", users.DeleteUserHandler(db), requireAuth)

	t := v1.Group("/todos", requireAuth)
	t.POST("", todos.CreateTodoHandler(db))
	t.GET("", todos.ListTodosHandler(db))
	t.GET("/:id", todos.GetTodoHandler(db))
	t.PUT("/:id", todos.UpdateTodoHandler(db))
	t.DELETE("/:id", todos.DeleteTodoHandler(db))
}

// ErrorHandler maps uncaught errors to the wire contract: requests matching no
// route get the {"success":false} 404 body, everything else a 500 envelope
// whose stack trace is omitted in production.
func ErrorHandler(production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) &&
			(httpErr.Code == http.StatusNotFound || httpErr.Code == http.StatusMethodNotAllowed) {
			_ = c.JSON(http.StatusNotFound, api.PageNotFoundResponse{
				Success: false,
				Message: "Page not found",
			})
			return
		}

		body := api.InternalErrorResponse{Error: api.InternalError{Message: err.Error()}}
		if !production {
			body.Error.Stack = string(debug.Stack())
		}
		_ = c.JSON(http.StatusInternalServerError, body)
	}
}
