package repository

import (
	"strings"

	"github.com/batoolzehra/car-rental-system/internal/model"
	"github.com/batoolzehra/car-rental-system/internal/storage"
)

// RentalRepo scans and mutates the rentals table.
type RentalRepo struct {
	store *storage.Store
}

func NewRentalRepo(s *storage.Store) *RentalRepo { return &RentalRepo{store: s} }

// All returns every rental row in table order.
func (r *RentalRepo) All() ([]*model.Rental, error) {
	var rentals []*model.Rental
	if err := r.store.Read(storage.TableRentals, &rentals); err != nil {
		return nil, err
	}
	return rentals, nil
}

// ByUser returns the user's rentals, past and present, in table order.
func (r *RentalRepo) ByUser(username string) ([]*model.Rental, error) {
	rentals, err := r.All()
	if err != nil {
		return nil, err
	}
	out := make([]*model.Rental, 0)
	for _, rt := range rentals {
		if strings.EqualFold(rt.Username, username) {
			out = append(out, rt)
		}
	}
	return out, nil
}

// Stage adds a pending overwrite of the rentals table to a staged commit.
func (r *RentalRepo) Stage(txn *storage.Txn, rentals []*model.Rental) error {
	return txn.Stage(storage.TableRentals, rentals)
}

// FindOngoingIn locates the user's ongoing rental of the model inside the
// given row slice. Callers mutate the row through the returned pointer and
// write the slice back as part of a staged commit. ErrRentalNotFound is
// returned when the user has no ongoing rental for the model.
func FindOngoingIn(rows []*model.Rental, username, modelName string) (*model.Rental, error) {
	for _, rt := range rows {
		if rt.Ongoing() && strings.EqualFold(rt.Username, username) && strings.EqualFold(rt.CarModel, modelName) {
			return rt, nil
		}
	}
	return nil, ErrRentalNotFound
}
