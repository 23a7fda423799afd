package api

// ProfileResponse is the public projection of a user row; password and token
// never appear here.
// swagger:model api.ProfileResponse
type ProfileResponse struct {
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
}
