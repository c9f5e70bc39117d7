package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is a plain liveness endpoint for monitoring.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
