package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCar_Valid(t *testing.T) {
	c, err := NewCar("Toyota", "Corolla", 5, 40)
	require.NoError(t, err)
	assert.True(t, bool(c.IsAvailable))
	assert.Equal(t, 5, c.SeatingCapacity)
}

func TestNewCar_Invalid(t *testing.T) {
	_, err := NewCar("", "Corolla", 5, 40)
	assert.ErrorIs(t, err, ErrInvalidCar)

	_, err = NewCar("Toyota", "", 5, 40)
	assert.ErrorIs(t, err, ErrInvalidCar)

	_, err = NewCar("Toyota", "Corolla", 0, 40)
	assert.ErrorIs(t, err, ErrInvalidCar)

	_, err = NewCar("Toyota", "Corolla", 5, -1)
	assert.ErrorIs(t, err, ErrInvalidCar)
}

func TestFileBool_RoundTrip(t *testing.T) {
	s, err := FileBool(true).MarshalCSV()
	require.NoError(t, err)
	assert.Equal(t, "True", s)

	s, err = FileBool(false).MarshalCSV()
	require.NoError(t, err)
	assert.Equal(t, "False", s)

	var b FileBool
	require.NoError(t, b.UnmarshalCSV("True"))
	assert.True(t, bool(b))

	// anything other than the literal "True" reads as false
	require.NoError(t, b.UnmarshalCSV("true"))
	assert.False(t, bool(b))
}
