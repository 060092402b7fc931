package stores

import (
	"github.com/mwhitfield/shopcore/models"
	"github.com/mwhitfield/shopcore/utils"
	"gorm.io/gorm"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a new user and returns it with server-assigned id and
// timestamps.
func (s *UserStore) Create(data *models.User) (*models.User, error) {
	var user models.User
	result := s.db.Raw(`INSERT INTO users (
			username, email, password, first_name, last_name)
		VALUES (?, ?, ?, ?, ?)
		RETURNING *`,
		data.Username, data.Email, data.Password, data.FirstName, data.LastName,
	).Scan(&user)
	if result.Error != nil {
		return nil, utils.StorageError("failed to create user", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &user, nil
}

// FindByID returns the user with the given id, or nil if none exists.
func (s *UserStore) FindByID(id uint) (*models.User, error) {
	var user models.User
	result := s.db.Raw(`SELECT * FROM users WHERE id = ?`, id).Scan(&user)
	if result.Error != nil {
		return nil, utils.StorageError("failed to find user", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &user, nil
}

// FindByEmail returns the user with the given email, or nil if none exists.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	result := s.db.Raw(`SELECT * FROM users WHERE email = ?`, email).Scan(&user)
	if result.Error != nil {
		return nil, utils.StorageError("failed to find user", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &user, nil
}

// UpdatePrimaryPaymentID points the user's primary payment designation at the
// given card id, or clears it when primaryPaymentID is nil. Returns the
// updated user, or nil when no row matched.
func (s *UserStore) UpdatePrimaryPaymentID(id uint, primaryPaymentID *uint) (*models.User, error) {
	var user models.User
	result := s.db.Raw(`UPDATE users
		SET primary_payment_id=?, modified=now()
		WHERE id = ?
		RETURNING *`,
		primaryPaymentID, id,
	).Scan(&user)
	if result.Error != nil {
		return nil, utils.StorageError("failed to update primary payment", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &user, nil
}
