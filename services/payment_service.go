// Package services orchestrates stores plus validation into business
// operations. Services hold no state of their own; consistency between a
// user's cards and their primary payment designation is maintained here.
package services

import (
	"encoding/json"

	"github.com/mwhitfield/shopcore/models"
	"github.com/mwhitfield/shopcore/utils"
)

// CardStore is the slice of the card store the payment service needs.
type CardStore interface {
	Create(data *models.Card) (*models.Card, error)
	Update(data *models.Card) (*models.Card, error)
	FindByID(id uint) (*models.Card, error)
	FindByUserID(userID uint) ([]models.Card, error)
	Delete(id uint) (*models.Card, error)
}

// UserStore is the slice of the user store the payment service needs.
type UserStore interface {
	FindByID(id uint) (*models.User, error)
	UpdatePrimaryPaymentID(id uint, primaryPaymentID *uint) (*models.User, error)
}

type PaymentService struct {
	cards CardStore
	users UserStore
}

func NewPaymentService(cards CardStore, users UserStore) *PaymentService {
	return &PaymentService{cards: cards, users: users}
}

// PaymentInput carries the fields for creating a payment method.
type PaymentInput struct {
	UserID           uint   `json:"user_id"`
	CardType         string `json:"card_type"`
	Provider         string `json:"provider"`
	CardNo           string `json:"card_no"`
	CVV              string `json:"cvv"`
	ExpMonth         int    `json:"exp_month"`
	ExpYear          int    `json:"exp_year"`
	BillingAddressID *uint  `json:"billing_address_id"`
	IsPrimaryPayment bool   `json:"is_primary_payment"`
}

// OptionalID is a nullable id field that remembers whether it appeared in
// the request at all. An absent field leaves the stored value alone; an
// explicit null clears it.
type OptionalID struct {
	Set   bool
	Value *uint
}

func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// PaymentUpdate carries a partial update. Only fields present in the request
// are applied to the stored card; the set of mutable fields is fixed and
// excludes user_id.
type PaymentUpdate struct {
	PaymentID        uint       `json:"payment_id"`
	UserID           uint       `json:"user_id"`
	CardType         *string    `json:"card_type"`
	Provider         *string    `json:"provider"`
	CardNo           *string    `json:"card_no"`
	CVV              *string    `json:"cvv"`
	ExpMonth         *int       `json:"exp_month"`
	ExpYear          *int       `json:"exp_year"`
	BillingAddressID OptionalID `json:"billing_address_id"`
	IsPrimaryPayment bool       `json:"is_primary_payment"`
}

// validatePayment fetches a card and checks it belongs to the requesting
// user. A missing card and a card owned by someone else are indistinguishable
// to the caller.
func (s *PaymentService) validatePayment(userID, paymentID uint) (*models.Card, error) {
	card, err := s.cards.FindByID(paymentID)
	if err != nil {
		return nil, err
	}
	if card == nil || card.UserID != userID {
		return nil, utils.NotFoundError("payment not found", nil)
	}
	return card, nil
}

// PostPayment validates and creates a card. When the caller marks it primary,
// the user's primary payment pointer is moved to the new card. The returned
// card's IsPrimaryPayment reflects the caller's request, not a re-read of the
// user record.
func (s *PaymentService) PostPayment(data *PaymentInput) (*models.Card, error) {
	card := &models.Card{
		CardType:         data.CardType,
		Provider:         data.Provider,
		CardNo:           data.CardNo,
		CVV:              data.CVV,
		ExpMonth:         data.ExpMonth,
		ExpYear:          data.ExpYear,
		BillingAddressID: data.BillingAddressID,
		UserID:           data.UserID,
	}
	if errs := utils.ValidatePaymentInputs(card); len(errs) > 0 {
		return nil, utils.ValidationFailedError("invalid payment fields", utils.FieldValidationErrors(errs))
	}

	created, err := s.cards.Create(card)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, utils.StorageError("card was not created", nil)
	}

	// Primary designation lives on the user, not the card, so two cards can
	// never both claim it.
	if data.IsPrimaryPayment {
		if _, err := s.users.UpdatePrimaryPaymentID(data.UserID, &created.ID); err != nil {
			return nil, err
		}
	}

	created.IsPrimaryPayment = data.IsPrimaryPayment
	return created, nil
}

// GetPayment returns a card owned by the user, with IsPrimaryPayment derived
// from the user's pointer.
func (s *PaymentService) GetPayment(userID, paymentID uint) (*models.Card, error) {
	card, err := s.validatePayment(userID, paymentID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NotFoundError("user not found", nil)
	}

	utils.AttachIsPrimaryPayment(card, user.PrimaryPaymentID)
	return card, nil
}

// PutPayment applies the provided mutable fields onto the stored card,
// re-validates the merged record and persists it. A true IsPrimaryPayment
// moves the user's pointer to this card; a false one leaves the pointer
// untouched even if this card is currently primary.
func (s *PaymentService) PutPayment(data *PaymentUpdate) (*models.Card, error) {
	card, err := s.validatePayment(data.UserID, data.PaymentID)
	if err != nil {
		return nil, err
	}

	if data.CardType != nil {
		card.CardType = *data.CardType
	}
	if data.Provider != nil {
		card.Provider = *data.Provider
	}
	if data.CardNo != nil {
		card.CardNo = *data.CardNo
	}
	if data.CVV != nil {
		card.CVV = *data.CVV
	}
	if data.ExpMonth != nil {
		card.ExpMonth = *data.ExpMonth
	}
	if data.ExpYear != nil {
		card.ExpYear = *data.ExpYear
	}
	if data.BillingAddressID.Set {
		card.BillingAddressID = data.BillingAddressID.Value
	}

	if errs := utils.ValidatePaymentInputs(card); len(errs) > 0 {
		return nil, utils.ValidationFailedError("invalid payment fields", utils.FieldValidationErrors(errs))
	}

	updated, err := s.cards.Update(card)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, utils.NotFoundError("payment not found", nil)
	}

	if data.IsPrimaryPayment {
		if _, err := s.users.UpdatePrimaryPaymentID(data.UserID, &updated.ID); err != nil {
			return nil, err
		}
		updated.IsPrimaryPayment = true
	} else {
		updated.IsPrimaryPayment = false
	}

	return updated, nil
}

// DeletePayment removes a card owned by the user. Deleting the current
// primary card clears the user's pointer first so it never dangles. The
// returned record carries the card's pre-deletion primary status.
func (s *PaymentService) DeletePayment(userID, paymentID uint) (*models.Card, error) {
	card, err := s.validatePayment(userID, paymentID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NotFoundError("user not found", nil)
	}

	utils.AttachIsPrimaryPayment(card, user.PrimaryPaymentID)
	if card.IsPrimaryPayment {
		if _, err := s.users.UpdatePrimaryPaymentID(userID, nil); err != nil {
			return nil, err
		}
	}

	deleted, err := s.cards.Delete(paymentID)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, utils.NotFoundError("payment not found", nil)
	}

	utils.AttachIsPrimaryPayment(deleted, user.PrimaryPaymentID)
	return deleted, nil
}

// GetAllPayments returns every card the user owns, each flagged against the
// user's primary payment pointer. At most one card comes back primary.
func (s *PaymentService) GetAllPayments(userID uint) ([]models.Card, error) {
	cards, err := s.cards.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NotFoundError("user not found", nil)
	}

	for i := range cards {
		utils.AttachIsPrimaryPayment(&cards[i], user.PrimaryPaymentID)
	}

	return cards, nil
}
