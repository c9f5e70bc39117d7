// Package queue defines the message payloads exchanged over the broker
// and the background consumer that records them.
package queue

// RentalConfirmedEvent is published after a rent transaction commits. It
// carries enough for downstream consumers to log or notify without
// reading the tables.
type RentalConfirmedEvent struct {
	Ref         string  `json:"ref"`
	Username    string  `json:"username"`
	Brand       string  `json:"brand"`
	CarModel    string  `json:"car_model"`
	Days        int     `json:"days"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	TotalAmount float64 `json:"total_amount"`
	NewBalance  float64 `json:"new_balance"`
	ConfirmedAt string  `json:"confirmed_at"`
}
