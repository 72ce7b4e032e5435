package model

import (
	"gorm.io/gorm"
)

// Email is an email address owned by one contact, ordered by Ordinal
// like phones.
type Email struct {
	gorm.Model

	ContactID uint   `gorm:"column:contact_id;index;not null" json:"contactId"`
	Email     string `gorm:"column:email;type:varchar(255)" json:"email"`
	Label     string `gorm:"column:label;type:varchar(50)" json:"label"`
	Ordinal   int    `gorm:"column:ordinal;not null" json:"ordinal"`
}

func (Email) TableName() string {
	return "email"
}
