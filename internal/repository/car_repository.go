package repository

import (
	"github.com/batoolzehra/car-rental-system/internal/model"
	"github.com/batoolzehra/car-rental-system/internal/storage"
)

// CarRepo scans and mutates the cars table.
type CarRepo struct {
	store *storage.Store
}

func NewCarRepo(s *storage.Store) *CarRepo { return &CarRepo{store: s} }

// All returns every car row in table order.
func (r *CarRepo) All() ([]*model.Car, error) {
	var cars []*model.Car
	if err := r.store.Read(storage.TableCars, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

// Available returns the cars currently available for rent, in table order.
func (r *CarRepo) Available() ([]*model.Car, error) {
	cars, err := r.All()
	if err != nil {
		return nil, err
	}
	out := make([]*model.Car, 0, len(cars))
	for _, c := range cars {
		if c.IsAvailable {
			out = append(out, c)
		}
	}
	return out, nil
}

// Reserved returns the cars currently rented out, in table order.
func (r *CarRepo) Reserved() ([]*model.Car, error) {
	cars, err := r.All()
	if err != nil {
		return nil, err
	}
	out := make([]*model.Car, 0)
	for _, c := range cars {
		if !c.IsAvailable {
			out = append(out, c)
		}
	}
	return out, nil
}

// Append adds a car row to the table.
func (r *CarRepo) Append(c *model.Car) error {
	cars, err := r.All()
	if err != nil {
		return err
	}
	return r.store.Write(storage.TableCars, append(cars, c))
}

// RemoveByModel hard-deletes every car matching the model
// case-insensitively. ErrCarNotFound is returned when nothing matched.
func (r *CarRepo) RemoveByModel(modelName string) error {
	cars, err := r.All()
	if err != nil {
		return err
	}
	kept := make([]*model.Car, 0, len(cars))
	for _, c := range cars {
		if !c.SameModel(modelName) {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(cars) {
		return ErrCarNotFound
	}
	return r.store.Write(storage.TableCars, kept)
}

// Save replaces the whole cars table.
func (r *CarRepo) Save(cars []*model.Car) error {
	return r.store.Write(storage.TableCars, cars)
}

// Stage adds a pending overwrite of the cars table to a staged commit.
func (r *CarRepo) Stage(txn *storage.Txn, cars []*model.Car) error {
	return txn.Stage(storage.TableCars, cars)
}

// SetAvailabilityIn flips is_available on the first row matching the model
// case-insensitively, without touching the store. Model names are not
// enforced unique, so a colliding name flips only the first match; that is
// the best-effort integrity the flat tables offer.
func SetAvailabilityIn(rows []*model.Car, modelName string, available bool) {
	for _, c := range rows {
		if c.SameModel(modelName) {
			c.IsAvailable = model.FileBool(available)
			return
		}
	}
}
