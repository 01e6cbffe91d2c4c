package store

import (
	"context"
	"errors"

	"github.com/ytget/movie-form/internal/model"
)

var (
	// ErrNotFound is returned when a movie ID does not exist in the store.
	ErrNotFound = errors.New("movie not found")

	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("store is closed")
)

// Store defines the persistence contract for movies.
type Store interface {
	// List returns all movies ordered by creation time.
	List(ctx context.Context) ([]*model.Movie, error)

	// Insert stores a new movie and returns it with ID and CreatedAt set.
	Insert(ctx context.Context, title string, year, rating int) (*model.Movie, error)

	// Delete removes the movie with the given ID.
	Delete(ctx context.Context, id string) error

	// Close releases store resources. Calling it more than once is a no-op.
	Close() error
}
