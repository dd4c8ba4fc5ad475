package db

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

func TestMigrateURL(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"postgres://u:p@localhost:5432/db?sslmode=disable", "pgx5://u:p@localhost:5432/db?sslmode=disable"},
		{"postgresql://localhost/db", "pgx5://localhost/db"},
		{"pgx5://localhost/db", "pgx5://localhost/db"},
	}
	for _, tt := range tests {
		if got := migrateURL(tt.in); got != tt.expected {
			t.Errorf("migrateURL(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func setupPostgres(t *testing.T) *Queries {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("workoutgen"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, Migrate(dsn))
	// running twice is a no-op
	require.NoError(t, Migrate(dsn))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return New(pool)
}

func TestSavedWorkouts(t *testing.T) {
	q := setupPostgres(t)
	ctx := context.Background()

	first, err := q.CreateSavedWorkout(ctx, CreateSavedWorkoutParams{OwnerID: "alice", OwnerEmail: "a@example.com", Name: "Legs", Content: "squats"})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, first.ID)
	require.WithinDuration(t, time.Now(), first.CreatedAt, time.Minute)

	second, err := q.CreateSavedWorkout(ctx, CreateSavedWorkoutParams{OwnerID: "alice", Name: "Push", Content: "bench"})
	require.NoError(t, err)
	_, err = q.CreateSavedWorkout(ctx, CreateSavedWorkoutParams{OwnerID: "bob", Name: "Cardio", Content: "run"})
	require.NoError(t, err)

	list, err := q.ListSavedWorkoutsByOwner(ctx, "alice", 50)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID, "newest first")
	require.Equal(t, first.ID, list[1].ID)

	got, err := q.GetSavedWorkout(ctx, first.ID, "alice")
	require.NoError(t, err)
	require.Equal(t, "squats", got.Content)

	_, err = q.GetSavedWorkout(ctx, first.ID, "bob")
	require.ErrorIs(t, err, ErrWorkoutNotFound)

	require.ErrorIs(t, q.DeleteSavedWorkout(ctx, first.ID, "bob"), ErrWorkoutNotFound)
	require.NoError(t, q.DeleteSavedWorkout(ctx, first.ID, "alice"))
	require.ErrorIs(t, q.DeleteSavedWorkout(ctx, first.ID, "alice"), ErrWorkoutNotFound)

	empty, err := q.ListSavedWorkoutsByOwner(ctx, "carol", 50)
	require.NoError(t, err)
	require.Empty(t, empty)
}
