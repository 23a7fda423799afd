package api

// ValidationFailed is the fixed message of every schema-check failure.
const ValidationFailed = "Validation Failed"

// ValidationErrorResponse carries the failing location's detail next to the
// fixed message. Exactly one location field is set per response.
// swagger:model api.ValidationErrorResponse
type ValidationErrorResponse struct {
	Message string `json:"message" example:"Validation Failed"`
	Headers string `json:"headers,omitempty"`
	Body    string `json:"body,omitempty"`
	Params  string `json:"params,omitempty"`
	Query   string `json:"query,omitempty"`
}

// BodyValidationError reports a failed request-body check.
func BodyValidationError(detail string) ValidationErrorResponse {
	return ValidationErrorResponse{Message: ValidationFailed, Body: detail}
}

// ParamsValidationError reports a failed path-parameter check.
func ParamsValidationError(detail string) ValidationErrorResponse {
	return ValidationErrorResponse{Message: ValidationFailed, Params: detail}
}
