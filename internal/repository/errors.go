// Package repository implements per-table access on top of the record
// store. Every query is a linear scan over the table's rows; every
// mutation is a full read-modify-write of the table file. The sentinel
// errors below let services and handlers distinguish failure scenarios
// without inspecting error strings.
package repository

import "errors"

// ErrUserNotFound is returned when no user row matches a username.
var ErrUserNotFound = errors.New("user not found")

// ErrCarNotFound is returned when no car row matches a model lookup.
var ErrCarNotFound = errors.New("car not found")

// ErrRentalNotFound is returned when no rental row matches a lookup.
var ErrRentalNotFound = errors.New("rental not found")
