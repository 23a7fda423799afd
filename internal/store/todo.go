package store

import (
	"context"
	"errors"
	"fmt"

	"todo-backend/internal/database"
	"todo-backend/internal/model"

	"github.com/jackc/pgx/v5"
)

const todoColumns = `id, user_id, title, description, completed, created_at, updated_at`

func scanTodo(row pgx.Row) (*model.Todo, error) {
	t := &model.Todo{}
	if err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Title,
		&t.Description,
		&t.Completed,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return t, nil
}

func CreateTodo(ctx context.Context, db database.DB, t *model.Todo) (*model.Todo, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO todos (user_id, title, description, completed)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		t.UserID,
		t.Title,
		t.Description,
		t.Completed,
	)
	if err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateTodo: %w", err)
	}
	return t, nil
}

func ListTodosByUser(ctx context.Context, db database.DB, userID int) ([]model.Todo, error) {
	rows, err := db.Query(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListTodosByUser: %w", err)
	}
	defer rows.Close()

	var todos []model.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("ListTodosByUser: %w", err)
		}
		todos = append(todos, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListTodosByUser: %w", err)
	}
	return todos, nil
}

// GetTodoByID fetches a todo by id, scoped to its owner. A todo owned by
// someone else is indistinguishable from a missing one.
func GetTodoByID(ctx context.Context, db database.DB, todoID, userID int) (*model.Todo, error) {
	t, err := scanTodo(db.QueryRow(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE id = $1 AND user_id = $2`,
		todoID,
		userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Entity: EntityTodo, Field: "id", Value: todoID}
		}
		return nil, fmt.Errorf("GetTodoByID: %w", err)
	}
	return t, nil
}

// UpdateTodo replaces title, description and completed on the owner's row and
// refreshes updated_at.
func UpdateTodo(ctx context.Context, db database.DB, t *model.Todo) (*model.Todo, error) {
	row := db.QueryRow(ctx,
		`UPDATE todos
		 SET title = $1, description = $2, completed = $3, updated_at = now()
		 WHERE id = $4 AND user_id = $5
		 RETURNING created_at, updated_at`,
		t.Title,
		t.Description,
		t.Completed,
		t.ID,
		t.UserID,
	)
	if err := row.Scan(&t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Entity: EntityTodo, Field: "id", Value: t.ID}
		}
		return nil, fmt.Errorf("UpdateTodo: %w", err)
	}
	return t, nil
}

func DeleteTodo(ctx context.Context, db database.DB, todoID, userID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM todos WHERE id = $1 AND user_id = $2`,
		todoID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("DeleteTodo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &NotFoundError{Entity: EntityTodo, Field: "id", Value: todoID}
	}
	return nil
}
