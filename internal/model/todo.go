package model

import "time"

// Todo is a row in the todos table, always owned by a user.
type Todo struct {
	ID          int       `db:"id" json:"id"`
	UserID      int       `db:"user_id" json:"-"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Completed   bool      `db:"completed" json:"completed"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
