package model

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is an account that owns the contact list.
type User struct {
	gorm.Model

	// Uuid format: U + timestamp-prefixed random string.
	Uuid  string `gorm:"column:uuid;uniqueIndex;type:char(20)" json:"uuid"`
	Name  string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Email string `gorm:"column:email;uniqueIndex;type:varchar(255);not null" json:"email"`

	// Password stores the bcrypt hash, never plaintext.
	Password string `gorm:"column:password;type:varchar(100);not null" json:"-"`

	// RawPassword receives the plaintext from the transport layer and is
	// hashed into Password by the BeforeSave hook. Never persisted.
	RawPassword string `gorm:"-" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// BeforeSave hashes RawPassword into Password when one was provided.
func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	if u.RawPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.RawPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hash)
		u.RawPassword = ""
	}
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (u *User) CheckPassword(plaintext string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plaintext))
	return err == nil
}
