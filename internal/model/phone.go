package model

import (
	"gorm.io/gorm"
)

// Phone is a phone number owned by one contact. Ordinal is the 1-based
// display/preference order within the contact's phones; the service layer
// keeps the sequence dense after every mutation.
type Phone struct {
	gorm.Model

	ContactID   uint   `gorm:"column:contact_id;index;not null" json:"contactId"`
	PhoneNumber string `gorm:"column:phone_number;type:varchar(50)" json:"phoneNumber"`
	Label       string `gorm:"column:label;type:varchar(50)" json:"label"`
	Ordinal     int    `gorm:"column:ordinal;not null" json:"ordinal"`
}

func (Phone) TableName() string {
	return "phone"
}
