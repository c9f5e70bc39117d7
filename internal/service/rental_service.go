package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/batoolzehra/car-rental-system/internal/model"
	"github.com/batoolzehra/car-rental-system/internal/queue"
	"github.com/batoolzehra/car-rental-system/internal/repository"
	"github.com/batoolzehra/car-rental-system/internal/storage"
)

// expectedRentalDays is the duration a return is measured against. A
// return after more elapsed days charges (elapsed - expectedRentalDays) *
// rent_amount as a late fee.
const expectedRentalDays = 1

// Accepted payment methods, compared case-insensitively.
const (
	MethodCreditCard = "credit card"
	MethodDebitCard  = "debit card"
	MethodCash       = "cash"
)

var validate = validator.New()

// Payment carries the payment form of a rent transaction. Card fields are
// only required for the card methods.
type Payment struct {
	Method     string
	CardNumber string
	Expiry     string
	CVV        string
}

// cardDetails holds the card-method validation rules: 16-digit number,
// 5-character expiry, 3-digit CVV. The '/' separator position is checked
// separately because it has no tag equivalent.
type cardDetails struct {
	Number string `validate:"required,len=16,numeric"`
	Expiry string `validate:"required,len=5"`
	CVV    string `validate:"required,len=3,numeric"`
}

func (p Payment) validate() error {
	switch strings.ToLower(strings.TrimSpace(p.Method)) {
	case MethodCash:
		return nil
	case MethodCreditCard, MethodDebitCard:
	default:
		return ErrInvalidPaymentMethod
	}
	err := validate.Struct(cardDetails{Number: p.CardNumber, Expiry: p.Expiry, CVV: p.CVV})
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].Field() {
			case "Number":
				return ErrInvalidCardNumber
			case "Expiry":
				return ErrInvalidCardExpiry
			case "CVV":
				return ErrInvalidCardCVV
			}
		}
		return fmt.Errorf("validate payment: %w", err)
	}
	if p.Expiry[2] != '/' {
		return ErrInvalidCardExpiry
	}
	return nil
}

// RentReceipt is returned by a successful rent transaction. Ref is a
// confirmation reference carried on the response and the published event;
// it is not a table column.
type RentReceipt struct {
	Ref         string
	Brand       string
	CarModel    string
	Days        int
	TotalAmount float64
	NewBalance  float64
	StartDate   string
	EndDate     string
}

// ReturnReceipt is returned by a successful return transaction.
type ReturnReceipt struct {
	CarModel   string
	ReturnedOn string
	LateFee    float64
	NewBalance float64
}

// RentalService covers the rental transactions and rental queries.
type RentalService interface {
	Rent(ctx context.Context, username, modelName string, days int, p Payment) (*RentReceipt, error)
	Return(ctx context.Context, username, modelName string) (*ReturnReceipt, error)
	History(ctx context.Context, username string) ([]*model.Rental, error)
	AllRentals(ctx context.Context) ([]*model.Rental, error)
}

type rentalService struct {
	store   *storage.Store
	users   *repository.UserRepo
	cars    *repository.CarRepo
	rentals *repository.RentalRepo

	now     func() time.Time
	publish func(ctx context.Context, ev queue.RentalConfirmedEvent) error
}

// NewRentalService creates a RentalService over the three tables a rental
// transaction touches.
func NewRentalService(store *storage.Store, users *repository.UserRepo, cars *repository.CarRepo, rentals *repository.RentalRepo) RentalService {
	return &rentalService{
		store:   store,
		users:   users,
		cars:    cars,
		rentals: rentals,
		now:     time.Now,
		publish: queue.PublishRentalConfirmed,
	}
}

// Rent runs the rent transaction: resolve the model among available cars,
// check the balance against one day's price and then the full total,
// validate the duration and the payment details, and only then debit the
// user, flip the car and append the rental row. The three table writes
// are staged and committed together so no partial state is written while
// validation can still fail.
func (s *rentalService) Rent(ctx context.Context, username, modelName string, days int, p Payment) (*RentReceipt, error) {
	cars, err := s.cars.All()
	if err != nil {
		return nil, fmt.Errorf("rent: %w", err)
	}
	var car *model.Car
	for _, c := range cars {
		if bool(c.IsAvailable) && c.SameModel(modelName) {
			car = c
			break
		}
	}
	if car == nil {
		return nil, repository.ErrCarNotFound
	}

	users, err := s.users.All()
	if err != nil {
		return nil, fmt.Errorf("rent: %w", err)
	}
	var user *model.User
	for _, u := range users {
		if u.SameUsername(username) {
			user = u
			break
		}
	}
	if user == nil {
		return nil, repository.ErrUserNotFound
	}

	// Early sufficiency probe against a single day's price; the full
	// total is checked again below. Both must pass.
	if user.Balance < car.RentalPricePerDay {
		return nil, ErrInsufficientBalance
	}
	if days <= 0 {
		return nil, ErrInvalidDays
	}
	total := car.RentalPricePerDay * float64(days)
	if user.Balance < total {
		return nil, ErrInsufficientBalance
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	// The stored row carries the Ongoing sentinel until the return sets
	// the actual date; the agreed end date only appears on the receipt.
	start := s.now()
	agreedEnd := start.AddDate(0, 0, days).Format(model.DateLayout)
	rental, err := model.NewRental(user.Username, car.Model, start, model.EndDateOngoing, total)
	if err != nil {
		return nil, err
	}
	rentals, err := s.rentals.All()
	if err != nil {
		return nil, fmt.Errorf("rent: %w", err)
	}

	user.Balance -= total
	car.IsAvailable = false
	rentals = append(rentals, rental)

	txn := s.store.Begin()
	if err := s.cars.Stage(txn, cars); err != nil {
		return nil, err
	}
	if err := s.users.Stage(txn, users); err != nil {
		return nil, err
	}
	if err := s.rentals.Stage(txn, rentals); err != nil {
		return nil, err
	}
	if err := txn.Commit(); err != nil {
		return nil, fmt.Errorf("rent: %w", err)
	}

	receipt := &RentReceipt{
		Ref:         uuid.NewString(),
		Brand:       car.Brand,
		CarModel:    car.Model,
		Days:        days,
		TotalAmount: total,
		NewBalance:  user.Balance,
		StartDate:   rental.StartDate,
		EndDate:     agreedEnd,
	}
	// Best effort; the publisher logs its own failures.
	_ = s.publish(ctx, queue.RentalConfirmedEvent{
		Ref:         receipt.Ref,
		Username:    user.Username,
		Brand:       car.Brand,
		CarModel:    car.Model,
		Days:        days,
		StartDate:   rental.StartDate,
		EndDate:     agreedEnd,
		TotalAmount: total,
		NewBalance:  user.Balance,
		ConfirmedAt: s.now().UTC().Format(model.TimestampLayout),
	})
	return receipt, nil
}

// Return runs the return transaction: find the caller's ongoing rental of
// the model, charge a late fee for days beyond the expected duration, set
// the terminal end date and flip the car back to available. A late fee
// may drive the balance negative; the car is physically back, so the debt
// is recorded rather than the return refused.
func (s *rentalService) Return(ctx context.Context, username, modelName string) (*ReturnReceipt, error) {
	rentals, err := s.rentals.All()
	if err != nil {
		return nil, fmt.Errorf("return: %w", err)
	}
	rental, err := repository.FindOngoingIn(rentals, username, modelName)
	if err != nil {
		return nil, ErrNoOngoingRental
	}

	start, err := rental.Start()
	if err != nil {
		return nil, fmt.Errorf("return: %w", err)
	}
	now := s.now()
	elapsed := int(now.Sub(start).Hours() / 24)
	var lateFee float64
	if elapsed > expectedRentalDays {
		lateFee = float64(elapsed-expectedRentalDays) * rental.RentAmount
	}
	rental.EndDate = now.Format(model.DateLayout)

	cars, err := s.cars.All()
	if err != nil {
		return nil, fmt.Errorf("return: %w", err)
	}
	repository.SetAvailabilityIn(cars, rental.CarModel, true)

	users, err := s.users.All()
	if err != nil {
		return nil, fmt.Errorf("return: %w", err)
	}
	var user *model.User
	for _, u := range users {
		if u.SameUsername(username) {
			user = u
			break
		}
	}
	if user == nil {
		return nil, repository.ErrUserNotFound
	}
	user.Balance -= lateFee

	txn := s.store.Begin()
	if err := s.cars.Stage(txn, cars); err != nil {
		return nil, err
	}
	if err := s.users.Stage(txn, users); err != nil {
		return nil, err
	}
	if err := s.rentals.Stage(txn, rentals); err != nil {
		return nil, err
	}
	if err := txn.Commit(); err != nil {
		return nil, fmt.Errorf("return: %w", err)
	}

	return &ReturnReceipt{
		CarModel:   rental.CarModel,
		ReturnedOn: rental.EndDate,
		LateFee:    lateFee,
		NewBalance: user.Balance,
	}, nil
}

// History returns the caller's rentals, past and present.
func (s *rentalService) History(ctx context.Context, username string) ([]*model.Rental, error) {
	return s.rentals.ByUser(username)
}

// AllRentals returns every rental row, for the admin report.
func (s *rentalService) AllRentals(ctx context.Context) ([]*model.Rental, error) {
	return s.rentals.All()
}
