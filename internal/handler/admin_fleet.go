package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/batoolzehra/car-rental-system/internal/service"
)

// AdminHandler bundles the admin-only endpoints: fleet management, the
// fleet and feedback reports and the admin balance update.
type AdminHandler struct {
	Fleet    service.FleetService
	Rentals  service.RentalService
	Feedback service.FeedbackService
	Auth     service.AuthService
}

func NewAdminHandler(fleet service.FleetService, rentals service.RentalService, feedback service.FeedbackService, auth service.AuthService) *AdminHandler {
	return &AdminHandler{Fleet: fleet, Rentals: rentals, Feedback: feedback, Auth: auth}
}

// ----- DTOs -----

type addCarReq struct {
	Brand             string  `json:"brand" validate:"required"`
	Model             string  `json:"model" validate:"required"`
	SeatingCapacity   int     `json:"seating_capacity" validate:"required,gt=0"`
	RentalPricePerDay float64 `json:"rental_price_per_day" validate:"gte=0"`
}

type setBalanceReq struct {
	Amount float64 `json:"amount" validate:"gte=0"`
}

type carPart struct {
	Brand             string  `json:"brand"`
	Model             string  `json:"model"`
	SeatingCapacity   int     `json:"seating_capacity"`
	RentalPricePerDay float64 `json:"rental_price_per_day"`
	IsAvailable       bool    `json:"is_available"`
}

// AddCar appends a new car to the fleet, available immediately.
func (h *AdminHandler) AddCar(c echo.Context) error {
	var req addCarReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "brand, model and a positive seating_capacity required"})
	}

	car, err := h.Fleet.AddCar(c.Request().Context(), req.Brand, req.Model, req.SeatingCapacity, req.RentalPricePerDay)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, carPart{
		Brand:             car.Brand,
		Model:             car.Model,
		SeatingCapacity:   car.SeatingCapacity,
		RentalPricePerDay: car.RentalPricePerDay,
		IsAvailable:       bool(car.IsAvailable),
	})
}

// RemoveCar deletes every car matching the model in the path.
func (h *AdminHandler) RemoveCar(c echo.Context) error {
	if err := h.Fleet.RemoveCar(c.Request().Context(), c.Param("model")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"removed": c.Param("model")})
}

// ReservedCars lists every car currently rented out.
func (h *AdminHandler) ReservedCars(c echo.Context) error {
	cars, err := h.Fleet.ReservedCars(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	out := make([]carPart, 0, len(cars))
	for _, car := range cars {
		out = append(out, carPart{
			Brand:             car.Brand,
			Model:             car.Model,
			SeatingCapacity:   car.SeatingCapacity,
			RentalPricePerDay: car.RentalPricePerDay,
			IsAvailable:       bool(car.IsAvailable),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// AllRentals lists every rental row, past and present.
func (h *AdminHandler) AllRentals(c echo.Context) error {
	rentals, err := h.Rentals.AllRentals(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	out := make([]rentalPart, 0, len(rentals))
	for _, r := range rentals {
		out = append(out, rentalPart{
			Username:   r.Username,
			CarModel:   r.CarModel,
			StartDate:  r.StartDate,
			EndDate:    r.EndDate,
			RentAmount: r.RentAmount,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// AllFeedback lists every feedback row.
func (h *AdminHandler) AllFeedback(c echo.Context) error {
	items, err := h.Feedback.AllFeedback(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	out := make([]echo.Map, 0, len(items))
	for _, fb := range items {
		out = append(out, echo.Map{
			"username":  fb.Username,
			"car_model": fb.CarModel,
			"text":      fb.FeedbackText,
			"timestamp": fb.Timestamp,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// SetBalance overwrites the admin's own balance with the given amount.
func (h *AdminHandler) SetBalance(c echo.Context) error {
	var req setBalanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount must not be negative"})
	}

	admin, err := h.Auth.SetAdminBalance(c.Request().Context(), req.Amount)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"username": admin.Username, "balance": admin.Balance})
}
