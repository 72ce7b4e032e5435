package request

// AddNoteRequest carries the fields for POST /contacts/:id/add-note.
// RelatedDate is optional, formatted YYYY-MM-DD.
type AddNoteRequest struct {
	NoteText    string `json:"noteText" binding:"required,max=1000"`
	RelatedDate string `json:"relatedDate" binding:"omitempty,datetime=2006-01-02"`
}
