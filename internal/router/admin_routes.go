package router

import (
	"github.com/labstack/echo/v4"

	"github.com/batoolzehra/car-rental-system/internal/handler"
	"github.com/batoolzehra/car-rental-system/internal/middleware"
	"github.com/batoolzehra/car-rental-system/internal/model"
)

// RegisterAdmin registers the ADMIN-scoped endpoints under /v1/admin.
// All routes require a valid JWT and the ADMIN role: fleet management,
// the rental and feedback reports and the admin balance update.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, jwtSecret string) {
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)

	// ---- Fleet ----
	g.POST("/cars", h.AddCar)
	g.DELETE("/cars/:model", h.RemoveCar)
	g.GET("/cars/reserved", h.ReservedCars)

	// ---- Reports ----
	g.GET("/rentals", h.AllRentals)
	g.GET("/feedback", h.AllFeedback)

	// ---- Balance ----
	g.PUT("/balance", h.SetBalance)
}
