package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/movie-form/internal/model"
)

// openTestPostgres connects to MOVIEFORM_TEST_DSN or skips the test
func openTestPostgres(t *testing.T) *PostgresStore {
	t.Helper()

	dsn := os.Getenv("MOVIEFORM_TEST_DSN")
	if dsn == "" {
		t.Skip("MOVIEFORM_TEST_DSN not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s, err := OpenPostgres(ctx, PostgresOptions{DSN: dsn, MaxOpenConns: 2}, zerolog.Nop())
	require.NoError(t, err)
	_, err = s.db.ExecContext(ctx, `TRUNCATE movies`)
	require.NoError(t, err)

	t.Cleanup(func() { s.Close() })
	return s
}

func TestPostgresStore_RoundTrip(t *testing.T) {
	s := openTestPostgres(t)
	ctx := context.Background()

	inserted, err := s.Insert(ctx, "Inception", 2010, 5)
	require.NoError(t, err)
	assert.False(t, inserted.CreatedAt.IsZero())

	movies, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, inserted.ID, movies[0].ID)
	assert.Equal(t, "Inception", movies[0].Title)

	require.NoError(t, s.Delete(ctx, inserted.ID))
	assert.ErrorIs(t, s.Delete(ctx, inserted.ID), ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "not-a-uuid"), ErrNotFound)
}

func TestPostgresStore_ListKeepsInsertOrder(t *testing.T) {
	s := openTestPostgres(t)
	ctx := context.Background()

	titles := []string{"Alien", "Brazil", "Casablanca", "Dune", "Eraserhead", "Fargo", "Gattaca", "Heat"}
	for _, title := range titles {
		_, err := s.Insert(ctx, title, 2000, 5)
		require.NoError(t, err)
	}

	for range 3 {
		movies, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, movies, len(titles))
		for i, movie := range movies {
			assert.Equal(t, titles[i], movie.Title)
		}
	}
}

func TestPostgresStore_SchemaRejectsBadRating(t *testing.T) {
	s := openTestPostgres(t)
	ctx := context.Background()

	for _, rating := range []int{model.MinRating - 1, model.MaxRating + 1} {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO movies (id, title, year, rating) VALUES ($1, $2, $3, $4)`,
			uuid.NewString(), "Raw", 2000, rating)
		assert.Error(t, err, "rating %d", rating)
	}
}

func TestPostgresStore_Close(t *testing.T) {
	s := openTestPostgres(t)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err := s.List(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}
