package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/ytget/movie-form/internal/model"
)

// PostgreSQL driver name registered by lib/pq
const PostgresDriverName = "postgres"

// seq keeps List in insertion order when created_at values tie
var schemaSQL = fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS movies (
	seq        bigserial,
	id         uuid PRIMARY KEY,
	title      text NOT NULL CHECK (btrim(title) <> ''),
	year       integer NOT NULL CHECK (year >= %d),
	rating     integer NOT NULL CHECK (rating BETWEEN %d AND %d),
	created_at timestamptz NOT NULL DEFAULT clock_timestamp()
);
ALTER TABLE movies ADD COLUMN IF NOT EXISTS seq bigserial`, model.MinYear, model.MinRating, model.MaxRating)

// PostgresOptions configures the connection pool
type PostgresOptions struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

// PostgresStore persists movies in a PostgreSQL table
type PostgresStore struct {
	db        *sql.DB
	logger    zerolog.Logger
	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

// OpenPostgres connects to PostgreSQL, verifies the connection and ensures the schema exists
func OpenPostgres(ctx context.Context, opts PostgresOptions, logger zerolog.Logger) (*PostgresStore, error) {
	if opts.DSN == "" {
		return nil, fmt.Errorf("postgres store requires a DSN")
	}

	db, err := sql.Open(PostgresDriverName, opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.MaxIdleTime > 0 {
		db.SetConnMaxIdleTime(opts.MaxIdleTime)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &PostgresStore{
		db:     db,
		logger: logger.With().Str("component", "postgres_store").Logger(),
	}

	if err := s.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}

	s.logger.Info().Msg("database connection established")
	return s, nil
}

// EnsureSchema creates the movies table if it does not exist
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create movies table: %w", err)
	}
	return nil
}

// List returns all movies ordered by creation time
func (s *PostgresStore) List(ctx context.Context) ([]*model.Movie, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}

	query := `
		SELECT id, title, year, rating, created_at
		FROM movies
		ORDER BY seq`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []*model.Movie{}
	for rows.Next() {
		var movie model.Movie
		if err := rows.Scan(&movie.ID, &movie.Title, &movie.Year, &movie.Rating, &movie.CreatedAt); err != nil {
			return nil, err
		}
		movies = append(movies, &movie)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

// Insert adds a movie row and returns it as stored
func (s *PostgresStore) Insert(ctx context.Context, title string, year, rating int) (*model.Movie, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}

	movie := &model.Movie{
		ID:     uuid.NewString(),
		Title:  title,
		Year:   year,
		Rating: rating,
	}
	if err := movie.Validate(time.Now()); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO movies (id, title, year, rating)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err := s.db.QueryRowContext(ctx, query, movie.ID, movie.Title, movie.Year, movie.Rating).Scan(&movie.CreatedAt)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("id", movie.ID).Str("title", title).Msg("movie inserted")
	return movie, nil
}

// Delete removes a movie by ID
func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	if s.closed.Load() {
		return ErrClosed
	}
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	s.logger.Debug().Str("id", id).Msg("movie deleted")
	return nil
}

// Close closes the connection pool once
func (s *PostgresStore) Close() error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		s.closeErr = s.db.Close()
		s.logger.Info().Msg("database connection closed")
	})
	return s.closeErr
}
