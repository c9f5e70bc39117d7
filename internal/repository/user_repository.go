package repository

import (
	"github.com/batoolzehra/car-rental-system/internal/model"
	"github.com/batoolzehra/car-rental-system/internal/storage"
)

// UserRepo scans and mutates the users table.
type UserRepo struct {
	store *storage.Store
}

func NewUserRepo(s *storage.Store) *UserRepo { return &UserRepo{store: s} }

// All returns every user row in table order.
func (r *UserRepo) All() ([]*model.User, error) {
	var users []*model.User
	if err := r.store.Read(storage.TableUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindByUsername returns the user matching name case-insensitively, or
// ErrUserNotFound.
func (r *UserRepo) FindByUsername(name string) (*model.User, error) {
	users, err := r.All()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.SameUsername(name) {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

// Upsert merges the user into its table by username and writes the table
// back. This is the persist operation every record carries: update the
// matching row in place, or append when absent.
func (r *UserRepo) Upsert(u *model.User) error {
	users, err := r.All()
	if err != nil {
		return err
	}
	return r.store.Write(storage.TableUsers, UpsertUserIn(users, u))
}

// Save replaces the whole users table.
func (r *UserRepo) Save(users []*model.User) error {
	return r.store.Write(storage.TableUsers, users)
}

// Stage adds a pending overwrite of the users table to a staged commit.
func (r *UserRepo) Stage(txn *storage.Txn, users []*model.User) error {
	return txn.Stage(storage.TableUsers, users)
}

// UpsertUserIn merges u into rows by case-insensitive username without
// touching the store. Callers staging multi-table commits use it to build
// the table image before anything is written.
func UpsertUserIn(rows []*model.User, u *model.User) []*model.User {
	for i, row := range rows {
		if row.SameUsername(u.Username) {
			rows[i] = u
			return rows
		}
	}
	return append(rows, u)
}
