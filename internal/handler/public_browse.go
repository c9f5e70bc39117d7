// This file defines the unauthenticated browse endpoint. Guests can list
// the cars currently available for rent before registering.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/batoolzehra/car-rental-system/internal/service"
)

// PublicHandler serves the guest-facing inventory query.
type PublicHandler struct {
	Fleet service.FleetService
}

// publicCar exposes only the fields a guest needs to pick a car.
type publicCar struct {
	Brand             string  `json:"brand"`
	Model             string  `json:"model"`
	SeatingCapacity   int     `json:"seating_capacity"`
	RentalPricePerDay float64 `json:"rental_price_per_day"`
}

// GetAvailableCars lists every available car in table order.
func (h *PublicHandler) GetAvailableCars(c echo.Context) error {
	cars, err := h.Fleet.AvailableCars(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	out := make([]publicCar, 0, len(cars))
	for _, car := range cars {
		out = append(out, publicCar{
			Brand:             car.Brand,
			Model:             car.Model,
			SeatingCapacity:   car.SeatingCapacity,
			RentalPricePerDay: car.RentalPricePerDay,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}
