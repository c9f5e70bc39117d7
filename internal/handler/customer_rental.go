package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/batoolzehra/car-rental-system/internal/middleware"
	"github.com/batoolzehra/car-rental-system/internal/service"
)

// CustomerHandler bundles the endpoints an authenticated customer uses:
// renting, returning, rental history, feedback and the balance check.
type CustomerHandler struct {
	Rentals  service.RentalService
	Feedback service.FeedbackService
	Auth     service.AuthService
}

func NewCustomerHandler(rentals service.RentalService, feedback service.FeedbackService, auth service.AuthService) *CustomerHandler {
	return &CustomerHandler{Rentals: rentals, Feedback: feedback, Auth: auth}
}

// ----- DTOs -----

type rentReq struct {
	Days          int    `json:"days" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required"`
	CardNumber    string `json:"card_number"`
	Expiry        string `json:"expiry"`
	CVV           string `json:"cvv"`
}

type feedbackReq struct {
	CarModel string `json:"car_model" validate:"required"`
	Text     string `json:"text" validate:"required"`
}

type rentalPart struct {
	Username   string  `json:"username"`
	CarModel   string  `json:"car_model"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	RentAmount float64 `json:"rent_amount"`
}

// Rent books the car named in the path for the authenticated user.
func (h *CustomerHandler) Rent(c echo.Context) error {
	var req rentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "days and payment_method required"})
	}

	receipt, err := h.Rentals.Rent(c.Request().Context(), middleware.Username(c), c.Param("model"), req.Days, service.Payment{
		Method:     req.PaymentMethod,
		CardNumber: req.CardNumber,
		Expiry:     req.Expiry,
		CVV:        req.CVV,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"ref":          receipt.Ref,
		"brand":        receipt.Brand,
		"car_model":    receipt.CarModel,
		"days":         receipt.Days,
		"total_amount": receipt.TotalAmount,
		"new_balance":  receipt.NewBalance,
		"start_date":   receipt.StartDate,
		"end_date":     receipt.EndDate,
	})
}

// Return closes the authenticated user's ongoing rental of the car named
// in the path.
func (h *CustomerHandler) Return(c echo.Context) error {
	receipt, err := h.Rentals.Return(c.Request().Context(), middleware.Username(c), c.Param("model"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"car_model":   receipt.CarModel,
		"returned_on": receipt.ReturnedOn,
		"late_fee":    receipt.LateFee,
		"new_balance": receipt.NewBalance,
	})
}

// MyRentals lists the authenticated user's rentals, past and present.
func (h *CustomerHandler) MyRentals(c echo.Context) error {
	rentals, err := h.Rentals.History(c.Request().Context(), middleware.Username(c))
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

// GiveFeedback records feedback for a car the user has rented.
func (h *CustomerHandler) GiveFeedback(c echo.Context) error {
	var req feedbackReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "car_model and text required"})
	}

	fb, err := h.Feedback.GiveFeedback(c.Request().Context(), middleware.Username(c), req.CarModel, req.Text)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"username":  fb.Username,
		"car_model": fb.CarModel,
		"text":      fb.FeedbackText,
		"timestamp": fb.Timestamp,
	})
}

// Balance returns the authenticated user's stored balance.
func (h *CustomerHandler) Balance(c echo.Context) error {
	balance, err := h.Auth.CurrentBalance(c.Request().Context(), middleware.Username(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"balance": balance})
}
