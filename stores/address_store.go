// Package stores holds the data-access components. Each store issues a single
// parameterized SQL statement per operation against Postgres. Writes return
// the row as persisted, or nil when zero rows were affected; lookups by id
// return nil for a miss, while lookups by user return an empty slice.
package stores

import (
	"github.com/mwhitfield/shopcore/models"
	"github.com/mwhitfield/shopcore/utils"
	"gorm.io/gorm"
)

type AddressStore struct {
	db *gorm.DB
}

func NewAddressStore(db *gorm.DB) *AddressStore {
	return &AddressStore{db: db}
}

// Create inserts a new address and returns it with server-assigned id and
// timestamps.
func (s *AddressStore) Create(data *models.Address) (*models.Address, error) {
	var address models.Address
	result := s.db.Raw(`INSERT INTO addresses (
			address1, address2, city, state, zip, country,
			first_name, last_name, user_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING *`,
		data.Address1, data.Address2, data.City, data.State, data.Zip,
		data.Country, data.FirstName, data.LastName, data.UserID,
	).Scan(&address)
	if result.Error != nil {
		return nil, utils.StorageError("failed to create address", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &address, nil
}

// Update overwrites an address row and refreshes its modified timestamp.
// Returns nil when no row matched the id.
func (s *AddressStore) Update(data *models.Address) (*models.Address, error) {
	var address models.Address
	result := s.db.Raw(`UPDATE addresses
		SET address1=?, address2=?, city=?, state=?, zip=?, country=?,
			first_name=?, last_name=?, modified=now()
		WHERE id = ?
		RETURNING *`,
		data.Address1, data.Address2, data.City, data.State, data.Zip,
		data.Country, data.FirstName, data.LastName, data.ID,
	).Scan(&address)
	if result.Error != nil {
		return nil, utils.StorageError("failed to update address", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &address, nil
}

// FindByID returns the address with the given id, or nil if none exists.
func (s *AddressStore) FindByID(id uint) (*models.Address, error) {
	var address models.Address
	result := s.db.Raw(`SELECT * FROM addresses WHERE id = ?`, id).Scan(&address)
	if result.Error != nil {
		return nil, utils.StorageError("failed to find address", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &address, nil
}

// FindByUserID returns all addresses owned by the user. The slice is empty,
// never nil, when the user owns none.
func (s *AddressStore) FindByUserID(userID uint) ([]models.Address, error) {
	addresses := make([]models.Address, 0)
	result := s.db.Raw(`SELECT * FROM addresses WHERE user_id = ?`, userID).Scan(&addresses)
	if result.Error != nil {
		return nil, utils.StorageError("failed to find addresses", result.Error)
	}
	return addresses, nil
}

// Delete removes an address by id and returns the deleted row, or nil when no
// row matched.
func (s *AddressStore) Delete(id uint) (*models.Address, error) {
	var address models.Address
	result := s.db.Raw(`DELETE FROM addresses WHERE id = ? RETURNING *`, id).Scan(&address)
	if result.Error != nil {
		return nil, utils.StorageError("failed to delete address", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &address, nil
}
