package api

// CreateTodoRequest creates a todo owned by the caller. Completed defaults to
// false when omitted.
// swagger:model api.CreateTodoRequest
type CreateTodoRequest struct {
	Title       string `json:"title" validate:"required" example:"Buy milk"`
	Description string `json:"description" example:"Two bottles, lactose free"`
	Completed   bool   `json:"completed" example:"false"`
}

// UpdateTodoRequest fully replaces the three mutable fields of a todo.
// swagger:model api.UpdateTodoRequest
type UpdateTodoRequest struct {
	Title       string `json:"title" validate:"required" example:"Buy milk"`
	Description string `json:"description" example:"Two bottles, lactose free"`
	Completed   bool   `json:"completed" example:"true"`
}
