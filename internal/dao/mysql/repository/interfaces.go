// Package repository implements the data access layer.
// Interfaces live in this file, one implementation file per entity.
// Ordering and uniqueness invariants are enforced here and in the service
// layer, not assumed of the storage engine.
package repository

import (
	"kind_contact_server/internal/model"

	"gorm.io/gorm"
)

// ContactRepository provides access to contact rows.
type ContactRepository interface {
	// FindByID returns one contact or a not-found error.
	FindByID(id uint) (*model.Contact, error)
	// FindAllActive returns non-archived contacts ordered by
	// firstName, middleName, lastName, suffix (id breaks remaining ties).
	FindAllActive() ([]model.Contact, error)
	// HasDuplicateName reports whether a non-archived contact other than
	// excludeID carries the exact (first, middle, last) triple.
	HasDuplicateName(first, middle, last string, excludeID uint) (bool, error)
	// Create inserts a contact and fills in its generated id.
	Create(contact *model.Contact) error
	// UpdateFields applies a partial update to one contact.
	UpdateFields(id uint, updates map[string]interface{}) error
	// SetArchive flips the soft-delete marker.
	SetArchive(id uint, archived bool) error
	// Delete hard-deletes the contact row. Sub-entity cleanup is the
	// caller's responsibility, inside one transaction.
	Delete(id uint) error
}

// PhoneRepository provides access to phone rows.
type PhoneRepository interface {
	// FindByID returns one phone or a not-found error.
	FindByID(id uint) (*model.Phone, error)
	// FindByContactID returns the contact's phones in ascending ordinal order.
	FindByContactID(contactID uint) ([]model.Phone, error)
	// FindAllOrdered returns every phone row ordered by ordinal, for
	// assembling the contact list's top-phone augmentation in one query.
	FindAllOrdered() ([]model.Phone, error)
	Create(phone *model.Phone) error
	UpdateOrdinal(id uint, ordinal int) error
	Delete(id uint) error
	DeleteByContactID(contactID uint) error
}

// EmailRepository provides access to email rows.
type EmailRepository interface {
	FindByID(id uint) (*model.Email, error)
	FindByContactID(contactID uint) ([]model.Email, error)
	Create(email *model.Email) error
	UpdateOrdinal(id uint, ordinal int) error
	Delete(id uint) error
	DeleteByContactID(contactID uint) error
}

// AddressRepository provides access to address rows.
type AddressRepository interface {
	FindByID(id uint) (*model.Address, error)
	FindByContactID(contactID uint) ([]model.Address, error)
	Create(address *model.Address) error
	UpdateOrdinal(id uint, ordinal int) error
	Delete(id uint) error
	DeleteByContactID(contactID uint) error
}

// NoteRepository provides access to notes and their contact mappings.
type NoteRepository interface {
	Create(note *model.Note) error
	CreateMapping(mapping *model.NoteMapping) error
	// FindByContactID returns the contact's notes ordered by creation
	// date descending, id ascending on ties.
	FindByContactID(contactID uint) ([]model.Note, error)
	// FindNoteIDsByContactID returns the ids of every note mapped to the
	// contact.
	FindNoteIDsByContactID(contactID uint) ([]uint, error)
	DeleteMappingsByContactID(contactID uint) error
	// DeleteOrphans hard-deletes the given notes that no longer carry any
	// mapping row.
	DeleteOrphans(noteIDs []uint) error
}

// UserRepository provides access to account rows.
type UserRepository interface {
	FindByEmail(email string) (*model.User, error)
	FindByUuid(uuid string) (*model.User, error)
	Create(user *model.User) error
}

// Repositories aggregates all repository instances and is the dependency
// injection entry point for the service layer.
type Repositories struct {
	db      *gorm.DB
	Contact ContactRepository
	Phone   PhoneRepository
	Email   EmailRepository
	Address AddressRepository
	Note    NoteRepository
	User    UserRepository
}

// NewRepositories binds every repository to the given database handle.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:      db,
		Contact: NewContactRepository(db),
		Phone:   NewPhoneRepository(db),
		Email:   NewEmailRepository(db),
		Address: NewAddressRepository(db),
		Note:    NewNoteRepository(db),
		User:    NewUserRepository(db),
	}
}

// Transaction runs fn against a transaction-bound Repositories aggregate.
// Everything inside commits together or rolls back together.
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
