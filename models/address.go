package models

import (
	"time"
)

type Address struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Address1  string    `json:"address1"`
	Address2  string    `json:"address2"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Zip       string    `json:"zip"`
	Country   string    `json:"country"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Created   time.Time `json:"created" gorm:"default:now()"`
	Modified  time.Time `json:"modified" gorm:"default:now()"`
}

func (Address) TableName() string {
	return "addresses"
}
