package todos

import (
	"errors"
	"net/http"
	"strconv"

	"todo-backend/internal/api"
	"todo-backend/internal/database"
	"todo-backend/internal/middleware"
	"todo-backend/internal/model"
	"todo-backend/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	createTodo      = store.CreateTodo
	listTodosByUser = store.ListTodosByUser
	getTodoByID     = store.GetTodoByID
	updateTodo      = store.UpdateTodo
	deleteTodo      = store.DeleteTodo
)

func toResponse(t *model.Todo) api.TodoResponse {
	return api.TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// @Summary     Create a todo
// @Description Inserts a todo owned by the caller
// @Tags        todos
// @Accept      json
// @Produce     json
// @Param       request body api.CreateTodoRequest true "Todo payload"
// @Success     201 {object} api.TodoResponse
// @Failure     400 {object} api.ValidationErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /todos [post]
func CreateTodoHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		if caller == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Unauthorized"})
		}

		var req api.CreateTodoRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.BodyValidationError("invalid request body"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.BodyValidationError(err.Error()))
		}

		todo, err := createTodo(c.Request().Context(), db, &model.Todo{
			UserID:      caller.ID,
			Title:       req.Title,
			Description: req.Description,
			Completed:   req.Completed,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error creating todo"})
		}

		return c.JSON(http.StatusCreated, toResponse(todo))
	}
}

// @Summary     List own todos
// @Description Returns every todo owned by the caller; an empty list is a 404
// @Tags        todos
// @Produce     json
// @Success     200 {array}  api.TodoResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /todos [get]
func ListTodosHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		if caller == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Unauthorized"})
		}

		todos, err := listTodosByUser(c.Request().Context(), db, caller.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error getting todos"})
		}
		// Empty is an error here, not a success with [].
		if len(todos) == 0 {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "No todos found"})
		}

		resp := make([]api.TodoResponse, 0, len(todos))
		for i := range todos {
			resp = append(resp, toResponse(&todos[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a todo
// @Description Fetches one of the caller's todos by id
// @Tags        todos
// @Produce     json
// @Param       id path int true "Todo id"
// @Success     200 {object} api.TodoResponse
// @Failure     400 {object} api.ValidationErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /todos/{id} [get]
func GetTodoHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		if caller == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Unauthorized"})
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ParamsValidationError("invalid todo id"))
		}

		todo, err := getTodoByID(c.Request().Context(), db, id, caller.ID)
		if err != nil {
			var notFound *store.NotFoundError
			if errors.As(err, &notFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: notFound.Error()})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error getting todo"})
		}

		return c.JSON(http.StatusOK, toResponse(todo))
	}
}

// @Summary     Update a todo
// @Description Replaces title, description and completed on one of the caller's todos
// @Tags        todos
// @Accept      json
// @Produce     json
// @Param       id path int true "Todo id"
// @Param       request body api.UpdateTodoRequest true "Replacement fields"
// @Success     200 {object} api.UpdateTodoResponse
// @Failure     400 {object} api.ValidationErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /todos/{id} [put]
func UpdateTodoHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		if caller == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Unauthorized"})
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ParamsValidationError("invalid todo id"))
		}

		var req api.UpdateTodoRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.BodyValidationError("invalid request body"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.BodyValidationError(err.Error()))
		}

		todo, err := updateTodo(c.Request().Context(), db, &model.Todo{
			ID:          id,
			UserID:      caller.ID,
			Title:       req.Title,
			Description: req.Description,
			Completed:   req.Completed,
		})
		if err != nil {
			var notFound *store.NotFoundError
			if errors.As(err, &notFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: notFound.Error()})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error updating todo"})
		}

		return c.JSON(http.StatusOK, api.UpdateTodoResponse{
			Message: "Todo updated successfully",
			Todo:    toResponse(todo),
		})
	}
}

// @Summary     Delete a todo
// @Description Removes one of the caller's todos by id
// @Tags        todos
// @Produce     json
// @Param       id path int true "Todo id"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ValidationErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /todos/{id} [delete]
func DeleteTodoHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		if caller == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Unauthorized"})
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ParamsValidationError("invalid todo id"))
		}

		if err := deleteTodo(c.Request().Context(), db, id, caller.ID); err != nil {
			var notFound *store.NotFoundError
			if errors.As(err, &notFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: notFound.Error()})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error deleting todo"})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Todo deleted successfully"})
	}
}
