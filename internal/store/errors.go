package store

import "fmt"

// Entities named by typed store errors.
const (
	EntityUser = "user"
	EntityTodo = "todo"
)

// NotFoundError reports a lookup that matched no row. The Error() text is part
// of the HTTP contract; clients match on it exactly.
type NotFoundError struct {
	Entity string
	Field  string
	Value  any
}

func (e *NotFoundError) Error() string {
	if e.Entity == EntityTodo {
		return fmt.Sprintf("Todo with %s %v not found", e.Field, e.Value)
	}
	return fmt.Sprintf("User with %s %v does not exist", e.Field, e.Value)
}

// ConflictError reports a unique-constraint violation.
type ConflictError struct {
	Entity string
}

func (e *ConflictError) Error() string {
	if e.Entity == EntityTodo {
		return "Todo already exists"
	}
	return "User already exists"
}
