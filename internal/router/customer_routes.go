package router

import (
	"github.com/labstack/echo/v4"

	"github.com/batoolzehra/car-rental-system/internal/handler"
	"github.com/batoolzehra/car-rental-system/internal/middleware"
	"github.com/batoolzehra/car-rental-system/internal/model"
)

// RegisterCustomer registers the rental endpoints under /v1. All routes
// require a valid JWT; the admin passes too, since the admin can rent
// and return cars like any customer. Note: GET /v1/cars is registered
// on the public router so that guests can browse availability.
func RegisterCustomer(e *echo.Echo, h *handler.CustomerHandler, jwtSecret string, mw ...echo.MiddlewareFunc) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleCustomer, model.RoleAdmin),
	)
	g.Use(mw...)

	g.POST("/cars/:model/rent", h.Rent)
	g.POST("/cars/:model/return", h.Return)
	g.GET("/my-rentals", h.MyRentals)
	g.POST("/feedback", h.GiveFeedback)
	g.GET("/balance", h.Balance)
}
