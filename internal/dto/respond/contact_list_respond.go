package respond

import (
	"kind_contact_server/internal/model"
)

// ContactListItem is one row of GET /contacts: the contact augmented with
// its highest-priority (lowest ordinal) phone for list display. The phone
// fields are null when the contact has no phones.
type ContactListItem struct {
	model.Contact
	PhoneNumber  *string `json:"phoneNumber"`
	PhoneLabel   *string `json:"phoneLabel"`
	PhoneOrdinal *int    `json:"phoneOrdinal"`
}
