package model

import (
	"errors"
	"fmt"
	"strings"
)

// FileBool is a boolean serialized as the literal strings "True"/"False"
// in the delimited-text tables. Any other stored value reads as false.
type FileBool bool

// MarshalCSV implements gocsv.TypeMarshaller.
func (b FileBool) MarshalCSV() (string, error) {
	if b {
		return "True", nil
	}
	return "False", nil
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (b *FileBool) UnmarshalCSV(s string) error {
	*b = FileBool(s == "True")
	return nil
}

// Car describes one vehicle of the fleet as stored in the `cars` table.
// The model name is the lookup key for rent, return and removal but is
// not enforced unique.
//
// Fields:
//  Brand             - manufacturer name.
//  Model             - model name, matched case-insensitively on lookup.
//  SeatingCapacity   - number of seats, at least 1.
//  RentalPricePerDay - daily price, non-negative.
//  IsAvailable       - toggled false while an ongoing rental references
//                      the model.
type Car struct {
	Brand             string   `csv:"brand"`
	Model             string   `csv:"model"`
	SeatingCapacity   int      `csv:"seating_capacity"`
	RentalPricePerDay float64  `csv:"rental_price_per_day"`
	IsAvailable       FileBool `csv:"is_available"`
}

// ErrInvalidCar is returned (wrapped) by NewCar on a validation failure.
var ErrInvalidCar = errors.New("invalid car")

// NewCar builds a validated car record. Brand and model are required,
// seating capacity must be at least 1 and the daily price must not be
// negative. New cars start out available.
func NewCar(brand, model string, seats int, pricePerDay float64) (*Car, error) {
	brand = strings.TrimSpace(brand)
	model = strings.TrimSpace(model)
	if brand == "" || model == "" {
		return nil, fmt.Errorf("%w: brand and model are required", ErrInvalidCar)
	}
	if seats <= 0 {
		return nil, fmt.Errorf("%w: seating capacity must be at least 1", ErrInvalidCar)
	}
	if pricePerDay < 0 {
		return nil, fmt.Errorf("%w: rental price must not be negative", ErrInvalidCar)
	}
	return &Car{
		Brand:             brand,
		Model:             model,
		SeatingCapacity:   seats,
		RentalPricePerDay: pricePerDay,
		IsAvailable:       true,
	}, nil
}

// SameModel reports whether the record's model matches the given one
// case-insensitively.
func (c *Car) SameModel(model string) bool {
	return strings.EqualFold(c.Model, strings.TrimSpace(model))
}
