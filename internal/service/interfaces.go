// Package service aggregates the business logic layer.
package service

import (
	"context"

	"kind_contact_server/internal/dto/request"
	"kind_contact_server/internal/dto/respond"
)

// ContactService owns contact CRUD and the sub-entity ordering invariants.
type ContactService interface {
	// CreateContact inserts a contact after the duplicate-name guard and
	// returns its generated id.
	CreateContact(req request.CreateContactRequest) (uint, error)
	// UpdateContact applies the full field set, guarding against another
	// non-archived contact carrying the same name triple.
	UpdateContact(id uint, req request.UpdateContactRequest) error
	// GetContactDetail returns the contact with its notes, phones, emails
	// and addresses.
	GetContactDetail(id uint) (*respond.ContactDetailRespond, error)
	// ListContacts returns non-archived contacts in listing order, each
	// augmented with its lowest-ordinal phone.
	ListContacts() ([]respond.ContactListItem, error)
	// ArchiveContact sets the soft-delete marker.
	ArchiveContact(id uint) error
	// DeleteContact hard-deletes a contact and all of its sub-entities in
	// one transaction.
	DeleteContact(id uint) error

	// AddNote inserts a note and its contact mapping atomically.
	AddNote(contactID uint, req request.AddNoteRequest) error

	AddPhone(contactID uint, req request.AddPhoneRequest) (uint, error)
	RemovePhone(contactID, phoneID uint) error
	ReorderPhone(contactID, phoneID uint, ordinal int) error

	AddEmail(contactID uint, req request.AddEmailRequest) (uint, error)
	RemoveEmail(contactID, emailID uint) error
	ReorderEmail(contactID, emailID uint, ordinal int) error

	AddAddress(contactID uint, req request.AddAddressRequest) (uint, error)
	RemoveAddress(contactID, addressID uint) error
	ReorderAddress(contactID, addressID uint, ordinal int) error
}

// SyncService reconciles local contacts against the remote directory.
type SyncService interface {
	// SyncContacts runs one reconciliation batch. The context is checked
	// between contacts; cancellation returns the partial report together
	// with the cancellation error.
	SyncContacts(ctx context.Context) (*respond.SyncReportRespond, error)
}

// AuthService issues and refreshes tokens.
type AuthService interface {
	Register(req request.RegisterRequest) (*respond.RegisterRespond, error)
	Login(req request.LoginRequest) (*respond.LoginRespond, error)
	Refresh(refreshToken string) (*respond.LoginRespond, error)
}
