package stores

import (
	"github.com/mwhitfield/shopcore/models"
	"github.com/mwhitfield/shopcore/utils"
	"gorm.io/gorm"
)

type CardStore struct {
	db *gorm.DB
}

func NewCardStore(db *gorm.DB) *CardStore {
	return &CardStore{db: db}
}

// Create inserts a new card and returns it with server-assigned id and
// timestamps. Card number and CVV format are the caller's responsibility.
func (s *CardStore) Create(data *models.Card) (*models.Card, error) {
	var card models.Card
	result := s.db.Raw(`INSERT INTO cards (
			card_type, provider, card_no, cvv, exp_month, exp_year,
			billing_address_id, user_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING *`,
		data.CardType, data.Provider, data.CardNo, data.CVV,
		data.ExpMonth, data.ExpYear, data.BillingAddressID, data.UserID,
	).Scan(&card)
	if result.Error != nil {
		return nil, utils.StorageError("failed to create card", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &card, nil
}

// Update overwrites a card row, refreshing modified server-side. Returns nil
// when no row matched the id.
func (s *CardStore) Update(data *models.Card) (*models.Card, error) {
	var card models.Card
	result := s.db.Raw(`UPDATE cards
		SET card_type=?, provider=?, card_no=?, cvv=?, exp_month=?,
			exp_year=?, billing_address_id=?, modified=now()
		WHERE id = ?
		RETURNING *`,
		data.CardType, data.Provider, data.CardNo, data.CVV,
		data.ExpMonth, data.ExpYear, data.BillingAddressID, data.ID,
	).Scan(&card)
	if result.Error != nil {
		return nil, utils.StorageError("failed to update card", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &card, nil
}

// FindByID returns the card with the given id, or nil if none exists.
func (s *CardStore) FindByID(id uint) (*models.Card, error) {
	var card models.Card
	result := s.db.Raw(`SELECT * FROM cards WHERE id = ?`, id).Scan(&card)
	if result.Error != nil {
		return nil, utils.StorageError("failed to find card", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &card, nil
}

// FindByUserID returns all cards owned by the user. The slice is empty, never
// nil, when the user owns none.
func (s *CardStore) FindByUserID(userID uint) ([]models.Card, error) {
	cards := make([]models.Card, 0)
	result := s.db.Raw(`SELECT * FROM cards WHERE user_id = ?`, userID).Scan(&cards)
	if result.Error != nil {
		return nil, utils.StorageError("failed to find cards", result.Error)
	}
	return cards, nil
}

// Delete removes a card by id and returns the deleted row, or nil when no row
// matched.
func (s *CardStore) Delete(id uint) (*models.Card, error) {
	var card models.Card
	result := s.db.Raw(`DELETE FROM cards WHERE id = ? RETURNING *`, id).Scan(&card)
	if result.Error != nil {
		return nil, utils.StorageError("failed to delete card", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &card, nil
}
