package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Roles stored in the users table. Every registered account is a customer;
// there is exactly one admin account, provisioned from configuration.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User represents an application user record as stored in the `users`
// table. Each field corresponds to a column of the delimited-text file;
// the csv tags bind the field to its column. Passwords are kept in clear
// text by design of this system and compared exactly on login.
//
// Fields:
//  Username  - unique key, compared case-insensitively.
//  Password  - clear-text password.
//  FirstName - given name.
//  LastName  - family name.
//  Address   - postal address.
//  Balance   - rental balance, never negative on creation.
//  Role      - "customer" or "admin".
type User struct {
	Username  string  `csv:"username"`
	Password  string  `csv:"password"`
	FirstName string  `csv:"first_name"`
	LastName  string  `csv:"last_name"`
	Address   string  `csv:"address"`
	Balance   float64 `csv:"balance"`
	Role      string  `csv:"role"`
}

// ErrInvalidUser is returned (wrapped) by NewUser when a field fails
// validation. The message names the offending field.
var ErrInvalidUser = errors.New("invalid user")

// NewUser builds a validated user record. All text fields are required and
// the balance must parse to a non-negative number. Role defaults to
// customer when empty.
func NewUser(username, password, firstName, lastName, address, balance, role string) (*User, error) {
	username = strings.TrimSpace(username)
	fields := []struct{ name, value string }{
		{"username", username},
		{"password", password},
		{"first_name", firstName},
		{"last_name", lastName},
		{"address", address},
		{"balance", balance},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return nil, fmt.Errorf("%w: %s is required", ErrInvalidUser, f.name)
		}
	}
	bal, err := strconv.ParseFloat(balance, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: balance is not a number", ErrInvalidUser)
	}
	if bal < 0 {
		return nil, fmt.Errorf("%w: balance is negative", ErrInvalidUser)
	}
	if role == "" {
		role = RoleCustomer
	}
	return &User{
		Username:  username,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
		Address:   address,
		Balance:   bal,
		Role:      strings.ToLower(strings.TrimSpace(role)),
	}, nil
}

// SameUsername reports whether the record's username matches the given one
// under the uniform case-insensitive username policy.
func (u *User) SameUsername(name string) bool {
	return strings.EqualFold(u.Username, strings.TrimSpace(name))
}
