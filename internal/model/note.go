package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Note is a free-text annotation. Notes attach to contacts through
// NoteMapping rows, so a note may in principle map to several contacts.
// CreatedAt doubles as the note's creation date.
type Note struct {
	gorm.Model

	NoteText string `gorm:"column:note_text;type:varchar(1000)" json:"noteText"`

	// RelatedDate ties the note to an event date, independent of when
	// the note was written.
	RelatedDate *datatypes.Date `gorm:"column:related_date" json:"relatedDate"`
}

func (Note) TableName() string {
	return "note"
}

// NoteMapping joins one note to one contact.
type NoteMapping struct {
	gorm.Model

	NoteID    uint `gorm:"column:note_id;index;not null" json:"noteId"`
	ContactID uint `gorm:"column:contact_id;index;not null" json:"contactId"`
}

func (NoteMapping) TableName() string {
	return "note_mapping"
}
