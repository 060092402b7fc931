package stores

import (
	"github.com/mwhitfield/shopcore/models"
	"github.com/mwhitfield/shopcore/utils"
	"gorm.io/gorm"
)

type CartStore struct {
	db *gorm.DB
}

func NewCartStore(db *gorm.DB) *CartStore {
	return &CartStore{db: db}
}

// Create opens a new cart. userID may be nil for a guest cart.
func (s *CartStore) Create(userID *uint) (*models.Cart, error) {
	var cart models.Cart
	result := s.db.Raw(`INSERT INTO carts (user_id) VALUES (?) RETURNING *`, userID).Scan(&cart)
	if result.Error != nil {
		return nil, utils.StorageError("failed to create cart", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &cart, nil
}

// FindByID returns the cart with the given id, or nil if none exists.
func (s *CartStore) FindByID(id uint) (*models.Cart, error) {
	var cart models.Cart
	result := s.db.Raw(`SELECT * FROM carts WHERE id = ?`, id).Scan(&cart)
	if result.Error != nil {
		return nil, utils.StorageError("failed to find cart", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &cart, nil
}

// FindByUserID returns the user's most recent cart, or nil if they have none.
func (s *CartStore) FindByUserID(userID uint) (*models.Cart, error) {
	var cart models.Cart
	result := s.db.Raw(`SELECT * FROM carts WHERE user_id = ? ORDER BY created DESC LIMIT 1`, userID).Scan(&cart)
	if result.Error != nil {
		return nil, utils.StorageError("failed to find cart", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &cart, nil
}
