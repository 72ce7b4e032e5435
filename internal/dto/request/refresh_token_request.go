package request

// RefreshTokenRequest carries the fields for POST /auth/refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
