package request

// AddAddressRequest carries the fields for POST /contacts/:id/addresses.
type AddAddressRequest struct {
	AddressText string `json:"addressText" binding:"required,max=500"`
	Label       string `json:"label" binding:"max=50"`
}
