// Package service implements the domain operations over the table
// repositories: authentication, registration, the rent and return
// transactions, feedback submission and balance administration. Every
// failure mode is a sentinel error so handlers can map it to a specific
// user-facing message; nothing here is fatal to the process and no
// operation is retried.
package service

import "errors"

var (
	// ErrInvalidCredentials rejects a login with no matching username
	// and password pair.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUsernameTaken rejects a registration whose username collides
	// case-insensitively with an existing user.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrReservedUsername rejects a registration claiming the admin name.
	ErrReservedUsername = errors.New("this username is reserved")

	// ErrInsufficientBalance rejects a rent the user cannot pay for.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInvalidDays rejects a rent with a non-positive number of days.
	ErrInvalidDays = errors.New("rental days must be a positive number")
	// ErrInvalidPaymentMethod rejects an unknown payment method.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	// ErrInvalidCardNumber rejects a card number that is not 16 digits.
	ErrInvalidCardNumber = errors.New("invalid card number")
	// ErrInvalidCardExpiry rejects an expiry not shaped MM/YY.
	ErrInvalidCardExpiry = errors.New("invalid expiry date format")
	// ErrInvalidCardCVV rejects a CVV that is not 3 digits.
	ErrInvalidCardCVV = errors.New("invalid CVV")
	// ErrNoOngoingRental rejects a return with nothing to return.
	ErrNoOngoingRental = errors.New("no ongoing rental for this car model")

	// ErrNeverRented rejects feedback for a model the user never rented.
	ErrNeverRented = errors.New("you have not rented this car model")
)
