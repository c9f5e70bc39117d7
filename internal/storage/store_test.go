package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batoolzehra/car-rental-system/internal/model"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestStore_MissingFileReadsEmpty(t *testing.T) {
	s := newStore(t)
	var users []*model.User
	require.NoError(t, s.Read(TableUsers, &users))
	assert.Empty(t, users)
}

func TestStore_RoundTrip(t *testing.T) {
	s := newStore(t)
	in := []*model.User{
		{Username: "alice", Password: "pw", FirstName: "Alice", LastName: "S", Address: "12 Oak", Balance: 500, Role: model.RoleCustomer},
		{Username: "bob", Password: "pw2", FirstName: "Bob", LastName: "T", Address: "3 Elm", Balance: 80, Role: model.RoleCustomer},
	}
	require.NoError(t, s.Write(TableUsers, in))

	var out []*model.User
	require.NoError(t, s.Read(TableUsers, &out))
	require.Len(t, out, 2)
	assert.Equal(t, in[0], out[0])
	assert.Equal(t, in[1], out[1])
}

func TestStore_BooleanLiterals(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	cars := []*model.Car{
		{Brand: "Toyota", Model: "Corolla", SeatingCapacity: 5, RentalPricePerDay: 40, IsAvailable: true},
		{Brand: "Honda", Model: "Civic", SeatingCapacity: 5, RentalPricePerDay: 45, IsAvailable: false},
	}
	require.NoError(t, s.Write(TableCars, cars))

	raw, err := os.ReadFile(filepath.Join(dir, "cars.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "True")
	assert.Contains(t, string(raw), "False")
	assert.NotContains(t, string(raw), "true")

	var out []*model.Car
	require.NoError(t, s.Read(TableCars, &out))
	require.Len(t, out, 2)
	assert.True(t, bool(out[0].IsAvailable))
	assert.False(t, bool(out[1].IsAvailable))
}

func TestTxn_CommitWritesAllStagedTables(t *testing.T) {
	s := newStore(t)
	txn := s.Begin()
	require.NoError(t, txn.Stage(TableUsers, []*model.User{{Username: "alice", Balance: 100}}))
	require.NoError(t, txn.Stage(TableCars, []*model.Car{{Brand: "Toyota", Model: "Corolla", SeatingCapacity: 5}}))
	require.NoError(t, txn.Commit())

	var users []*model.User
	require.NoError(t, s.Read(TableUsers, &users))
	require.Len(t, users, 1)

	var cars []*model.Car
	require.NoError(t, s.Read(TableCars, &cars))
	require.Len(t, cars, 1)
}

func TestTxn_RestageKeepsLatest(t *testing.T) {
	s := newStore(t)
	txn := s.Begin()
	require.NoError(t, txn.Stage(TableUsers, []*model.User{{Username: "alice", Balance: 100}}))
	require.NoError(t, txn.Stage(TableUsers, []*model.User{{Username: "alice", Balance: 60}}))
	require.NoError(t, txn.Commit())

	var users []*model.User
	require.NoError(t, s.Read(TableUsers, &users))
	require.Len(t, users, 1)
	assert.Equal(t, 60.0, users[0].Balance)
}

func TestTxn_NothingWrittenBeforeCommit(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	txn := s.Begin()
	require.NoError(t, txn.Stage(TableUsers, []*model.User{{Username: "alice"}}))

	_, statErr := os.Stat(filepath.Join(dir, "users.csv"))
	assert.True(t, os.IsNotExist(statErr))
}
