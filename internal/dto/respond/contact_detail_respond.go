package respond

import (
	"kind_contact_server/internal/model"
)

// ContactDetailRespond is the body of GET /contacts/:id.
type ContactDetailRespond struct {
	Contact   *model.Contact  `json:"contact"`
	Notes     []NoteRespond   `json:"notes"`
	Phones    []model.Phone   `json:"phones"`
	Emails    []model.Email   `json:"emails"`
	Addresses []model.Address `json:"addresses"`
}

// NoteRespond is a note row shaped for the API.
type NoteRespond struct {
	NoteID      uint   `json:"noteId"`
	NoteText    string `json:"noteText"`
	CreatedOn   string `json:"createdOn"`
	RelatedDate string `json:"relatedDate,omitempty"`
}
