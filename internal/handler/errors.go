package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/batoolzehra/car-rental-system/internal/model"
	"github.com/batoolzehra/car-rental-system/internal/repository"
	"github.com/batoolzehra/car-rental-system/internal/service"
)

// fail maps a domain error onto an HTTP status and a user-facing
// message. Every operation error surfaces this way; nothing is fatal.
func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrCarNotFound),
		errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrRentalNotFound),
		errors.Is(err, service.ErrNoOngoingRental):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrReservedUsername):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, model.ErrInvalidUser),
		errors.Is(err, model.ErrInvalidCar),
		errors.Is(err, model.ErrInvalidRental),
		errors.Is(err, model.ErrInvalidFeedback),
		errors.Is(err, service.ErrInvalidDays):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInsufficientBalance),
		errors.Is(err, service.ErrInvalidPaymentMethod),
		errors.Is(err, service.ErrInvalidCardNumber),
		errors.Is(err, service.ErrInvalidCardExpiry),
		errors.Is(err, service.ErrInvalidCardCVV),
		errors.Is(err, service.ErrNeverRented):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
