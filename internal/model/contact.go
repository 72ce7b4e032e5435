// Package model defines the database entities.
package model

import (
	"strings"

	"gorm.io/gorm"
)

// Contact is the primary person record.
// Archive is the soft-delete marker: archived contacts drop out of
// listings, the duplicate-name guard and sync, but their rows remain.
type Contact struct {
	gorm.Model

	// Name parts. FirstName is the only one the application requires.
	FirstName  string `gorm:"column:first_name;index;type:varchar(100)" json:"firstName"`
	MiddleName string `gorm:"column:middle_name;type:varchar(100)" json:"middleName"`
	LastName   string `gorm:"column:last_name;type:varchar(100)" json:"lastName"`
	Suffix     string `gorm:"column:suffix;type:varchar(50)" json:"suffix"`
	Nickname   string `gorm:"column:nickname;type:varchar(100)" json:"nickname"`

	// Mnemonic is a short memorable tag ("tall guy from the book club").
	Mnemonic     string `gorm:"column:mnemonic;type:varchar(255)" json:"mnemonic"`
	Summary      string `gorm:"column:summary;type:varchar(1000)" json:"summary"`
	IntroducedBy string `gorm:"column:introduced_by;type:varchar(255)" json:"introducedBy"`

	// Social profiles.
	Website   string `gorm:"column:website;type:varchar(255)" json:"website"`
	Linkedin  string `gorm:"column:linkedin;type:varchar(255)" json:"linkedin"`
	Instagram string `gorm:"column:instagram;type:varchar(255)" json:"instagram"`
	Twitter   string `gorm:"column:twitter;type:varchar(255)" json:"twitter"`

	// Work.
	JobTitle string `gorm:"column:job_title;type:varchar(255)" json:"jobTitle"`
	Company  string `gorm:"column:company;type:varchar(255)" json:"company"`

	MainNationality      string `gorm:"column:main_nationality;type:varchar(100)" json:"mainNationality"`
	SecondaryNationality string `gorm:"column:secondary_nationality;type:varchar(100)" json:"secondaryNationality"`

	// Partial birth date: day and month are always meaningful together,
	// the year may be unknown (0).
	BirthDay   int16 `gorm:"column:birth_day" json:"birthDay"`
	BirthMonth int16 `gorm:"column:birth_month" json:"birthMonth"`
	BirthYear  int16 `gorm:"column:birth_year" json:"birthYear"`

	Archive bool `gorm:"column:archive;not null;default:false" json:"archive"`

	// GoogleResourceName points at the remote directory entry this contact
	// was last synchronized with, when known.
	GoogleResourceName string `gorm:"column:google_resource_name;type:varchar(255)" json:"googleResourceName"`

	Phones    []Phone   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Emails    []Email   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Addresses []Address `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Contact) TableName() string {
	return "contact"
}

// DisplayName joins the non-empty name parts with single spaces,
// in first-middle-last-suffix order.
func (c *Contact) DisplayName() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{c.FirstName, c.MiddleName, c.LastName, c.Suffix} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
