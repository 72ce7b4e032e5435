package model

import (
	"gorm.io/gorm"
)

// Address is a postal address owned by one contact, ordered by Ordinal
// like phones.
type Address struct {
	gorm.Model

	ContactID   uint   `gorm:"column:contact_id;index;not null" json:"contactId"`
	AddressText string `gorm:"column:address_text;type:varchar(500)" json:"addressText"`
	Label       string `gorm:"column:label;type:varchar(50)" json:"label"`
	Ordinal     int    `gorm:"column:ordinal;not null" json:"ordinal"`
}

func (Address) TableName() string {
	return "address"
}
