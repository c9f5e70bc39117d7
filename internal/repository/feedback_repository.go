package repository

import (
	"github.com/batoolzehra/car-rental-system/internal/model"
	"github.com/batoolzehra/car-rental-system/internal/storage"
)

// FeedbackRepo scans and appends to the feedback table. The table is
// append-only; there is no mutation or deletion path.
type FeedbackRepo struct {
	store *storage.Store
}

func NewFeedbackRepo(s *storage.Store) *FeedbackRepo { return &FeedbackRepo{store: s} }

// All returns every feedback row in table order.
func (r *FeedbackRepo) All() ([]*model.Feedback, error) {
	var rows []*model.Feedback
	if err := r.store.Read(storage.TableFeedback, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Append adds one feedback row to the table.
func (r *FeedbackRepo) Append(f *model.Feedback) error {
	rows, err := r.All()
	if err != nil {
		return err
	}
	return r.store.Write(storage.TableFeedback, append(rows, f))
}
