package handler

import (
	"errors"
	"net/http"

	"todo-backend/internal/api"
	"todo-backend/internal/cache"
	"todo-backend/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const healthProbeKey = "health:probe"

// HealthResponse is the liveness body.
// swagger:model HealthResponse
type HealthResponse struct {
	Message string `json:"message" example:"pong"`
}

// HealthHandler reports liveness of the database and the cache connections.
// @Summary     Health check
// @Description Pings Postgres and Redis and returns pong when both answer
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /health [get]
func HealthHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		if err := rdb.Get(ctx, healthProbeKey).Err(); err != nil && !errors.Is(err, redis.Nil) {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, HealthResponse{Message: "pong"})
	}
}
