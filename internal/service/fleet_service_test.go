package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batoolzehra/car-rental-system/internal/model"
	"github.com/batoolzehra/car-rental-system/internal/repository"
)

func TestFleet_AddListRemove(t *testing.T) {
	cars := repository.NewCarRepo(newStore(t))
	svc := NewFleetService(cars)
	ctx := context.Background()

	c, err := svc.AddCar(ctx, "Toyota", "Corolla", 5, 40)
	require.NoError(t, err)
	assert.True(t, bool(c.IsAvailable))

	avail, err := svc.AvailableCars(ctx)
	require.NoError(t, err)
	require.Len(t, avail, 1)

	reserved, err := svc.ReservedCars(ctx)
	require.NoError(t, err)
	assert.Empty(t, reserved)

	require.NoError(t, svc.RemoveCar(ctx, "COROLLA"))
	assert.ErrorIs(t, svc.RemoveCar(ctx, "Corolla"), repository.ErrCarNotFound)
}

func TestFleet_AddCarValidation(t *testing.T) {
	svc := NewFleetService(repository.NewCarRepo(newStore(t)))

	_, err := svc.AddCar(context.Background(), "Toyota", "Corolla", 0, 40)
	assert.ErrorIs(t, err, model.ErrInvalidCar)

	_, err = svc.AddCar(context.Background(), "", "Corolla", 5, 40)
	assert.ErrorIs(t, err, model.ErrInvalidCar)
}
