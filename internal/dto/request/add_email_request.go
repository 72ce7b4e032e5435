package request

// AddEmailRequest carries the fields for POST /contacts/:id/emails.
type AddEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Label string `json:"label" binding:"max=50"`
}
