package respond

// LoginRespond is the body of POST /auth/login and /auth/refresh.
type LoginRespond struct {
	Uuid         string `json:"uuid"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RegisterRespond is the body of POST /auth/register.
type RegisterRespond struct {
	Uuid string `json:"uuid"`
}
