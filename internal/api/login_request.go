package api

// LoginRequest accepts exactly one of username or email alongside the
// password; the two identifier shapes are mutually exclusive.
// swagger:model api.LoginRequest
type LoginRequest struct {
	Username string `json:"username,omitempty" validate:"required_without=Email,excluded_with=Email" example:"alice"`
	Email    string `json:"email,omitempty" validate:"required_without=Username,excluded_with=Username,omitempty,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}
