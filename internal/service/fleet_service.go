package service

import (
	"context"
	"fmt"

	"github.com/batoolzehra/car-rental-system/internal/model"
	"github.com/batoolzehra/car-rental-system/internal/repository"
)

// FleetService covers the car-table operations: the availability query
// used by customers and the admin-only fleet management.
type FleetService interface {
	AvailableCars(ctx context.Context) ([]*model.Car, error)
	ReservedCars(ctx context.Context) ([]*model.Car, error)
	AddCar(ctx context.Context, brand, modelName string, seats int, pricePerDay float64) (*model.Car, error)
	RemoveCar(ctx context.Context, modelName string) error
}

type fleetService struct {
	cars *repository.CarRepo
}

// NewFleetService creates a FleetService bound to the cars table.
func NewFleetService(cars *repository.CarRepo) FleetService {
	return &fleetService{cars: cars}
}

// AvailableCars returns every car open for rent, in table order.
func (s *fleetService) AvailableCars(ctx context.Context) ([]*model.Car, error) {
	return s.cars.Available()
}

// ReservedCars returns every car currently rented out, in table order.
func (s *fleetService) ReservedCars(ctx context.Context) ([]*model.Car, error) {
	return s.cars.Reserved()
}

// AddCar validates and appends a new available car.
func (s *fleetService) AddCar(ctx context.Context, brand, modelName string, seats int, pricePerDay float64) (*model.Car, error) {
	c, err := model.NewCar(brand, modelName, seats, pricePerDay)
	if err != nil {
		return nil, err
	}
	if err := s.cars.Append(c); err != nil {
		return nil, fmt.Errorf("add car: %w", err)
	}
	return c, nil
}

// RemoveCar hard-deletes every car matching the model case-insensitively.
// repository.ErrCarNotFound is returned when nothing matched.
func (s *fleetService) RemoveCar(ctx context.Context, modelName string) error {
	return s.cars.RemoveByModel(modelName)
}
