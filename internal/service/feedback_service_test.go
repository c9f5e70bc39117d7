package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batoolzehra/car-rental-system/internal/model"
	"github.com/batoolzehra/car-rental-system/internal/repository"
	"github.com/batoolzehra/car-rental-system/internal/storage"
)

func newFeedbackService(t *testing.T) (*feedbackService, *repository.FeedbackRepo) {
	t.Helper()
	store := newStore(t)
	rentals := repository.NewRentalRepo(store)
	require.NoError(t, store.Write(storage.TableRentals, []*model.Rental{
		{Username: "alice", CarModel: "Corolla", StartDate: "2025-03-01", EndDate: "2025-03-02", RentAmount: 40},
	}))
	feedback := repository.NewFeedbackRepo(store)
	svc := NewFeedbackService(rentals, feedback).(*feedbackService)
	svc.now = func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) }
	return svc, feedback
}

func TestGiveFeedback_Success(t *testing.T) {
	svc, repo := newFeedbackService(t)

	fb, err := svc.GiveFeedback(context.Background(), "ALICE", "corolla", "smooth ride")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10 09:00:00", fb.Timestamp)

	rows, err := repo.All()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "smooth ride", rows[0].FeedbackText)
}

func TestGiveFeedback_RequiresPastRental(t *testing.T) {
	svc, _ := newFeedbackService(t)

	_, err := svc.GiveFeedback(context.Background(), "alice", "Civic", "never drove it")
	assert.ErrorIs(t, err, ErrNeverRented)

	_, err = svc.GiveFeedback(context.Background(), "bob", "Corolla", "not my rental")
	assert.ErrorIs(t, err, ErrNeverRented)
}

func TestGiveFeedback_EmptyText(t *testing.T) {
	svc, repo := newFeedbackService(t)

	_, err := svc.GiveFeedback(context.Background(), "alice", "Corolla", "   ")
	assert.ErrorIs(t, err, model.ErrInvalidFeedback)

	rows, err := repo.All()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAllFeedback(t *testing.T) {
	svc, _ := newFeedbackService(t)
	_, err := svc.GiveFeedback(context.Background(), "alice", "Corolla", "first")
	require.NoError(t, err)
	_, err = svc.GiveFeedback(context.Background(), "alice", "Corolla", "second")
	require.NoError(t, err)

	all, err := svc.AllFeedback(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
