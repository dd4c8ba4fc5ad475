package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrWorkoutNotFound is returned when a workout does not exist or belongs to someone else
var ErrWorkoutNotFound = errors.New("workout not found")

type SavedWorkout struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    string    `json:"userId"`
	OwnerEmail string    `json:"userEmail,omitempty"`
	Name       string    `json:"name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CreateSavedWorkoutParams struct {
	OwnerID    string
	OwnerEmail string
	Name       string
	Content    string
}

const createSavedWorkout = `
INSERT INTO saved_workouts (id, owner_id, owner_email, name, content, created_at)
VALUES ($1, $2, $3, $4, $5, now())
RETURNING id, owner_id, owner_email, name, content, created_at`

func (q *Queries) CreateSavedWorkout(ctx context.Context, arg CreateSavedWorkoutParams) (SavedWorkout, error) {
	row := q.db.QueryRow(ctx, createSavedWorkout, uuid.New(), arg.OwnerID, arg.OwnerEmail, arg.Name, arg.Content)
	var w SavedWorkout
	err := row.Scan(&w.ID, &w.OwnerID, &w.OwnerEmail, &w.Name, &w.Content, &w.CreatedAt)
	return w, err
}

const listSavedWorkoutsByOwner = `
SELECT id, owner_id, owner_email, name, content, created_at
FROM saved_workouts
WHERE owner_id = $1
ORDER BY created_at DESC, id
LIMIT $2`

func (q *Queries) ListSavedWorkoutsByOwner(ctx context.Context, ownerID string, limit int32) ([]SavedWorkout, error) {
	rows, err := q.db.Query(ctx, listSavedWorkoutsByOwner, ownerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []SavedWorkout{}
	for rows.Next() {
		var w SavedWorkout
		if err := rows.Scan(&w.ID, &w.OwnerID, &w.OwnerEmail, &w.Name, &w.Content, &w.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	return items, rows.Err()
}

const getSavedWorkout = `
SELECT id, owner_id, owner_email, name, content, created_at
FROM saved_workouts
WHERE id = $1 AND owner_id = $2`

func (q *Queries) GetSavedWorkout(ctx context.Context, id uuid.UUID, ownerID string) (SavedWorkout, error) {
	var w SavedWorkout
	err := q.db.QueryRow(ctx, getSavedWorkout, id, ownerID).
		Scan(&w.ID, &w.OwnerID, &w.OwnerEmail, &w.Name, &w.Content, &w.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return SavedWorkout{}, ErrWorkoutNotFound
	}
	return w, err
}

const deleteSavedWorkout = `DELETE FROM saved_workouts WHERE id = $1 AND owner_id = $2`

func (q *Queries) DeleteSavedWorkout(ctx context.Context, id uuid.UUID, ownerID string) error {
	tag, err := q.db.Exec(ctx, deleteSavedWorkout, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete saved workout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}
