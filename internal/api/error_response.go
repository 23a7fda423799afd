package api

// ErrorResponse is the flat {"message": ...} error body.
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message" example:"Unauthorized"`
}

// MessageResponse is the flat {"message": ...} success body.
// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Todo deleted successfully"`
}

// PageNotFoundResponse is returned for requests that match no route.
// swagger:model api.PageNotFoundResponse
type PageNotFoundResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Page not found"`
}

// InternalErrorResponse wraps uncaught errors. Stack is omitted in production.
// swagger:model api.InternalErrorResponse
type InternalErrorResponse struct {
	Error InternalError `json:"error"`
}

type InternalError struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}
