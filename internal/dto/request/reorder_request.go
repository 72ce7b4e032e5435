package request

// ReorderRequest moves a sub-entity to a new 1-based position within its
// contact's sequence; the remaining entries are renumbered densely.
type ReorderRequest struct {
	Ordinal int `json:"ordinal" binding:"required,min=1"`
}
