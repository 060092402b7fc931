package stores

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mwhitfield/shopcore/models"
	"github.com/mwhitfield/shopcore/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var addressColumns = []string{
	"id", "address1", "address2", "city", "state", "zip", "country",
	"first_name", "last_name", "user_id", "created", "modified",
}

func TestAddressCreateReturnsPersistedRow(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewAddressStore(db)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO addresses`).
		WithArgs("12 Elm St", "", "Springfield", "IL", "62704", "USA", "Jane", "Doe", uint(7)).
		WillReturnRows(sqlmock.NewRows(addressColumns).
			AddRow(1, "12 Elm St", "", "Springfield", "IL", "62704", "USA", "Jane", "Doe", 7, now, now))

	address, err := store.Create(&models.Address{
		Address1:  "12 Elm St",
		City:      "Springfield",
		State:     "IL",
		Zip:       "62704",
		Country:   "USA",
		FirstName: "Jane",
		LastName:  "Doe",
		UserID:    7,
	})
	require.NoError(t, err)
	require.NotNil(t, address)

	// Server-assigned fields come back alongside the input fields
	assert.Equal(t, uint(1), address.ID)
	assert.Equal(t, "12 Elm St", address.Address1)
	assert.Equal(t, uint(7), address.UserID)
	assert.False(t, address.Created.IsZero())
	assert.False(t, address.Modified.IsZero())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressUpdateMissingRowReturnsNil(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewAddressStore(db)

	mock.ExpectQuery(`UPDATE addresses`).
		WillReturnRows(sqlmock.NewRows(addressColumns))

	address, err := store.Update(&models.Address{ID: 999, Address1: "nowhere"})
	require.NoError(t, err)
	assert.Nil(t, address)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressFindByIDMissReturnsNil(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewAddressStore(db)

	mock.ExpectQuery(`SELECT \* FROM addresses WHERE id`).
		WithArgs(uint(999)).
		WillReturnRows(sqlmock.NewRows(addressColumns))

	address, err := store.FindByID(999)
	require.NoError(t, err)
	assert.Nil(t, address)
}

func TestAddressFindByUserIDEmptyIsNotNil(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewAddressStore(db)

	mock.ExpectQuery(`SELECT \* FROM addresses WHERE user_id`).
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows(addressColumns))

	addresses, err := store.FindByUserID(7)
	require.NoError(t, err)
	assert.NotNil(t, addresses)
	assert.Empty(t, addresses)
}

func TestAddressDeleteReturnsDeletedRow(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewAddressStore(db)

	now := time.Now()
	mock.ExpectQuery(`DELETE FROM addresses WHERE id`).
		WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows(addressColumns).
			AddRow(3, "12 Elm St", "", "Springfield", "IL", "62704", "USA", "Jane", "Doe", 7, now, now))

	address, err := store.Delete(3)
	require.NoError(t, err)
	require.NotNil(t, address)
	assert.Equal(t, uint(3), address.ID)
}

func TestAddressDeleteMissReturnsNil(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewAddressStore(db)

	mock.ExpectQuery(`DELETE FROM addresses WHERE id`).
		WithArgs(uint(999)).
		WillReturnRows(sqlmock.NewRows(addressColumns))

	address, err := store.Delete(999)
	require.NoError(t, err)
	assert.Nil(t, address)
}

func TestAddressStorageErrorPreservesCause(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewAddressStore(db)

	cause := assert.AnError
	mock.ExpectQuery(`SELECT \* FROM addresses WHERE id`).
		WillReturnError(cause)

	address, err := store.FindByID(1)
	assert.Nil(t, address)
	require.Error(t, err)
	assert.True(t, utils.IsStorageError(err))
	assert.ErrorIs(t, err, cause)
}
