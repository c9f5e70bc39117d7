package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the serialization format of rental dates.
const DateLayout = "2006-01-02"

// EndDateOngoing is the sentinel end_date of a rental that has not been
// returned yet. A return replaces it with an actual date, once, and the
// row never changes again.
const EndDateOngoing = "Ongoing"

// Rental records one rental transaction in the `rentals` table. Rows are
// append-only except for the single end_date mutation performed by the
// return operation.
//
// Fields:
//  Username   - renter, foreign key into the users table.
//  CarModel   - rented model, matched case-insensitively on return.
//  StartDate  - rental start, YYYY-MM-DD.
//  EndDate    - agreed end date, or "Ongoing" until returned.
//  RentAmount - total charged at rent time.
type Rental struct {
	Username   string  `csv:"username"`
	CarModel   string  `csv:"car_model"`
	StartDate  string  `csv:"start_date"`
	EndDate    string  `csv:"end_date"`
	RentAmount float64 `csv:"rent_amount"`
}

// ErrInvalidRental is returned (wrapped) by NewRental on a validation
// failure.
var ErrInvalidRental = errors.New("invalid rental")

// NewRental builds a validated rental record starting at the given day.
func NewRental(username, carModel string, start time.Time, end string, amount float64) (*Rental, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(carModel) == "" {
		return nil, fmt.Errorf("%w: username and car model are required", ErrInvalidRental)
	}
	if amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrInvalidRental)
	}
	return &Rental{
		Username:   username,
		CarModel:   carModel,
		StartDate:  start.Format(DateLayout),
		EndDate:    end,
		RentAmount: amount,
	}, nil
}

// Ongoing reports whether the rental has not been returned yet.
func (r *Rental) Ongoing() bool { return r.EndDate == EndDateOngoing }

// Start parses the start date. A malformed stored value is an error; fee
// arithmetic must never run against a zero time.
func (r *Rental) Start() (time.Time, error) {
	t, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad start_date %q", ErrInvalidRental, r.StartDate)
	}
	return t, nil
}
