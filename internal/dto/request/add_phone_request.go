package request

// AddPhoneRequest carries the fields for POST /contacts/:id/phones.
// The new phone is appended at the end of the ordinal sequence.
type AddPhoneRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required,max=50"`
	Label       string `json:"label" binding:"max=50"`
}
