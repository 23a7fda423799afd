package api

// swagger:model api.RegisterResponse
type RegisterResponse struct {
	Token    string `json:"token" example:"eyJhbGciOi..."`
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
}
