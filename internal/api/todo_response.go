package api

import "time"

// TodoResponse is the public projection of a todo; the owning relation is
// never expanded.
// swagger:model api.TodoResponse
type TodoResponse struct {
	ID          int       `json:"id" example:"1"`
	Title       string    `json:"title" example:"Buy milk"`
	Description string    `json:"description" example:"Two bottles, lactose free"`
	Completed   bool      `json:"completed" example:"false"`
	CreatedAt   time.Time `json:"createdAt" example:"2025-05-01T15:04:05Z"`
	UpdatedAt   time.Time `json:"updatedAt" example:"2025-05-01T15:04:05Z"`
}

// UpdateTodoResponse pairs the success message with the updated record.
// swagger:model api.UpdateTodoResponse
type UpdateTodoResponse struct {
	Message string       `json:"message" example:"Todo updated successfully"`
	Todo    TodoResponse `json:"todo"`
}
