package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/batoolzehra/car-rental-system/internal/model"
	"github.com/batoolzehra/car-rental-system/internal/repository"
)

// FeedbackService covers feedback submission and the admin report over
// the append-only feedback table.
type FeedbackService interface {
	GiveFeedback(ctx context.Context, username, modelName, text string) (*model.Feedback, error)
	AllFeedback(ctx context.Context) ([]*model.Feedback, error)
}

type feedbackService struct {
	rentals  *repository.RentalRepo
	feedback *repository.FeedbackRepo

	now func() time.Time
}

// NewFeedbackService creates a FeedbackService. Feedback requires a
// rental, so the service reads the rentals table as well.
func NewFeedbackService(rentals *repository.RentalRepo, feedback *repository.FeedbackRepo) FeedbackService {
	return &feedbackService{rentals: rentals, feedback: feedback, now: time.Now}
}

// GiveFeedback appends a timestamped feedback row. The caller must have
// rented the model at some point, past or present; the text must not be
// empty.
func (s *feedbackService) GiveFeedback(ctx context.Context, username, modelName, text string) (*model.Feedback, error) {
	rentals, err := s.rentals.ByUser(username)
	if err != nil {
		return nil, fmt.Errorf("give feedback: %w", err)
	}
	rented := false
	for _, r := range rentals {
		if strings.EqualFold(r.CarModel, modelName) {
			rented = true
			break
		}
	}
	if !rented {
		return nil, ErrNeverRented
	}

	fb, err := model.NewFeedback(username, modelName, text, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.feedback.Append(fb); err != nil {
		return nil, fmt.Errorf("give feedback: %w", err)
	}
	return fb, nil
}

// AllFeedback returns every feedback row, for the admin report.
func (s *feedbackService) AllFeedback(ctx context.Context) ([]*model.Feedback, error) {
	return s.feedback.All()
}
