package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ytget/movie-form/internal/model"
)

// MemoryStore keeps movies in process memory
type MemoryStore struct {
	mu     sync.RWMutex
	movies []*model.Movie
	closed bool
	logger zerolog.Logger
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore(logger zerolog.Logger) *MemoryStore {
	return &MemoryStore{
		movies: make([]*model.Movie, 0),
		logger: logger.With().Str("component", "memory_store").Logger(),
	}
}

// List returns copies of all stored movies in insertion order
func (s *MemoryStore) List(ctx context.Context) ([]*model.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}

	movies := make([]*model.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		movie := *m
		movies = append(movies, &movie)
	}
	return movies, nil
}

// Insert appends a new movie
func (s *MemoryStore) Insert(ctx context.Context, title string, year, rating int) (*model.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	movie := &model.Movie{
		ID:        uuid.NewString(),
		Title:     title,
		Year:      year,
		Rating:    rating,
		CreatedAt: time.Now(),
	}
	if err := movie.Validate(movie.CreatedAt); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}

	s.movies = append(s.movies, movie)
	s.logger.Debug().Str("id", movie.ID).Str("title", title).Msg("movie inserted")

	result := *movie
	return &result, nil
}

// Delete removes a movie by ID
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	for i, m := range s.movies {
		if m.ID == id {
			s.movies = append(s.movies[:i], s.movies[i+1:]...)
			s.logger.Debug().Str("id", id).Msg("movie deleted")
			return nil
		}
	}
	return ErrNotFound
}

// Close marks the store closed
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		s.logger.Debug().Int("movies", len(s.movies)).Msg("store closed")
	}
	return nil
}
