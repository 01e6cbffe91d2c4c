package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/movie-form/internal/model"
)

func TestMemoryStore_InsertAndList(t *testing.T) {
	s := NewMemoryStore(zerolog.Nop())
	ctx := context.Background()

	first, err := s.Insert(ctx, "Inception", 2010, 5)
	require.NoError(t, err)
	second, err := s.Insert(ctx, "Her", 2013, 4)
	require.NoError(t, err)

	_, err = uuid.Parse(first.ID)
	assert.NoError(t, err, "ID should be a UUID")
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.IsZero())

	movies, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "Inception", movies[0].Title)
	assert.Equal(t, 2010, movies[0].Year)
	assert.Equal(t, 5, movies[0].Rating)
	assert.Equal(t, "Her", movies[1].Title)
}

func TestMemoryStore_ListReturnsCopies(t *testing.T) {
	s := NewMemoryStore(zerolog.Nop())
	ctx := context.Background()

	_, err := s.Insert(ctx, "Alien", 1979, 5)
	require.NoError(t, err)

	movies, err := s.List(ctx)
	require.NoError(t, err)
	movies[0].Title = "changed"

	again, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alien", again[0].Title)
}

func TestMemoryStore_InsertRejectsInvalid(t *testing.T) {
	s := NewMemoryStore(zerolog.Nop())
	ctx := context.Background()

	_, err := s.Insert(ctx, "  ", 2010, 3)
	assert.ErrorIs(t, err, model.ErrEmptyTitle)

	_, err = s.Insert(ctx, "Metropolis", 1899, 3)
	assert.ErrorIs(t, err, model.ErrBadYear)

	_, err = s.Insert(ctx, "Metropolis", time.Now().Year()+1, 3)
	assert.ErrorIs(t, err, model.ErrBadYear)

	_, err = s.Insert(ctx, "Metropolis", 1927, model.MaxRating+1)
	assert.ErrorIs(t, err, model.ErrBadRating)

	movies, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore(zerolog.Nop())
	ctx := context.Background()

	a, err := s.Insert(ctx, "A", 2000, 1)
	require.NoError(t, err)
	b, err := s.Insert(ctx, "B", 2001, 2)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, a.ID))
	assert.ErrorIs(t, s.Delete(ctx, a.ID), ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "missing"), ErrNotFound)

	movies, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, b.ID, movies[0].ID)
}

func TestMemoryStore_Close(t *testing.T) {
	s := NewMemoryStore(zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "second Close should be a no-op")

	_, err := s.List(ctx)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = s.Insert(ctx, "A", 2000, 1)
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, s.Delete(ctx, "x"), ErrClosed)
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	s := NewMemoryStore(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Insert(ctx, "A", 2000, 1)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
