package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the serialization format of feedback timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// Feedback is one customer review in the `feedback` table. Rows are
// append-only; nothing ever mutates or deletes them.
type Feedback struct {
	Username     string `csv:"username"`
	CarModel     string `csv:"car_model"`
	FeedbackText string `csv:"feedback_text"`
	Timestamp    string `csv:"timestamp"`
}

// ErrInvalidFeedback is returned (wrapped) by NewFeedback on a validation
// failure.
var ErrInvalidFeedback = errors.New("invalid feedback")

// NewFeedback builds a validated feedback record stamped with the given
// time. The text must not be empty.
func NewFeedback(username, carModel, text string, at time.Time) (*Feedback, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: feedback text must not be empty", ErrInvalidFeedback)
	}
	if strings.TrimSpace(username) == "" || strings.TrimSpace(carModel) == "" {
		return nil, fmt.Errorf("%w: username and car model are required", ErrInvalidFeedback)
	}
	return &Feedback{
		Username:     username,
		CarModel:     carModel,
		FeedbackText: text,
		Timestamp:    at.Format(TimestampLayout),
	}, nil
}
