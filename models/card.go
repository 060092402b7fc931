package models

import (
	"time"
)

// Card is a stored payment method. IsPrimaryPayment is never persisted; the
// service layer derives it from User.PrimaryPaymentID before returning a card.
type Card struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	CardType         string    `json:"card_type"`
	Provider         string    `json:"provider"`
	CardNo           string    `json:"card_no"`
	CVV              string    `json:"cvv" gorm:"column:cvv"`
	ExpMonth         int       `json:"exp_month"`
	ExpYear          int       `json:"exp_year"`
	BillingAddressID *uint     `json:"billing_address_id"`
	UserID           uint      `json:"user_id" gorm:"not null;index"`
	Created          time.Time `json:"created" gorm:"default:now()"`
	Modified         time.Time `json:"modified" gorm:"default:now()"`
	IsPrimaryPayment bool      `json:"is_primary_payment" gorm:"-"`
}

func (Card) TableName() string {
	return "cards"
}
