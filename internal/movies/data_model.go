package movies

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2/data/binding"
	"github.com/rs/zerolog"

	"github.com/ytget/movie-form/internal/model"
	"github.com/ytget/movie-form/internal/store"
)

// DefaultStoreTimeout bounds every store call made by the data model
const DefaultStoreTimeout = 3 * time.Second

// Table columns in display order
const (
	ColumnTitle = iota
	ColumnYear
	ColumnRating
)

var columnNames = []string{"Title", "Year", "Rating"}

// DataModel binds the rows of a store to the movie table
type DataModel struct {
	store   store.Store
	rows    binding.UntypedList
	logger  zerolog.Logger
	timeout time.Duration
	now     func() time.Time

	shutdownOnce sync.Once
	shutdown     atomic.Bool
}

// Option customizes a DataModel
type Option func(*DataModel)

// WithTimeout overrides DefaultStoreTimeout
func WithTimeout(timeout time.Duration) Option {
	return func(m *DataModel) {
		if timeout > 0 {
			m.timeout = timeout
		}
	}
}

// WithClock overrides the clock used for year validation
func WithClock(now func() time.Time) Option {
	return func(m *DataModel) {
		m.now = now
	}
}

// NewDataModel creates a data model over s. Rows are empty until LoadAllMovies.
func NewDataModel(s store.Store, logger zerolog.Logger, opts ...Option) *DataModel {
	m := &DataModel{
		store:   s,
		rows:    binding.NewUntypedList(),
		logger:  logger.With().Str("component", "data_model").Logger(),
		timeout: DefaultStoreTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddListener registers a listener notified after every change of rows
func (m *DataModel) AddListener(l binding.DataListener) {
	m.rows.AddListener(l)
}

// RemoveListener unregisters a listener
func (m *DataModel) RemoveListener(l binding.DataListener) {
	m.rows.RemoveListener(l)
}

// Columns returns the column names
func (m *DataModel) Columns() []string {
	return append([]string(nil), columnNames...)
}

// ColumnCount returns the number of columns
func (m *DataModel) ColumnCount() int {
	return len(columnNames)
}

// ColumnName returns the name of column col, or "" if out of range
func (m *DataModel) ColumnName(col int) string {
	if col < 0 || col >= len(columnNames) {
		return ""
	}
	return columnNames[col]
}

// RowCount returns the number of rows currently loaded
func (m *DataModel) RowCount() int {
	return m.rows.Length()
}

// Movie returns the movie displayed at row
func (m *DataModel) Movie(row int) (*model.Movie, bool) {
	value, err := m.rows.GetValue(row)
	if err != nil {
		return nil, false
	}
	movie, ok := value.(*model.Movie)
	return movie, ok
}

// Value returns the display text of a cell
func (m *DataModel) Value(row, col int) string {
	movie, ok := m.Movie(row)
	if !ok {
		return ""
	}

	switch col {
	case ColumnTitle:
		return movie.Title
	case ColumnYear:
		return strconv.Itoa(movie.Year)
	case ColumnRating:
		return strconv.Itoa(movie.Rating)
	default:
		return ""
	}
}

// InsertRow stores a new movie and reloads the rows. It reports whether the movie was stored.
func (m *DataModel) InsertRow(title string, year, rating int) bool {
	if err := m.Insert(title, year, rating); err != nil {
		m.logger.Error().Err(err).Str("title", title).Int("year", year).Int("rating", rating).Msg("insert failed")
		return false
	}
	return true
}

// Insert is InsertRow with the failure cause
func (m *DataModel) Insert(title string, year, rating int) error {
	if m.shutdown.Load() {
		return &model.PersistenceError{Op: "insert", Err: store.ErrClosed}
	}

	movie := &model.Movie{Title: title, Year: year, Rating: rating}
	if err := movie.Validate(m.now()); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	inserted, err := m.store.Insert(ctx, title, year, rating)
	if err != nil {
		return &model.PersistenceError{Op: "insert", Err: err}
	}
	m.logger.Info().Str("id", inserted.ID).Str("title", inserted.Title).Msg("movie added")

	if err := m.LoadAllMovies(); err != nil {
		// The row is stored; fall back to appending it locally.
		m.rows.Append(inserted)
	}
	return nil
}

// DeleteRow removes the movie at row from the store. It reports whether the movie was removed.
// Rows are not reloaded; callers follow a successful delete with LoadAllMovies.
func (m *DataModel) DeleteRow(row int) bool {
	if err := m.Delete(row); err != nil {
		m.logger.Error().Err(err).Int("row", row).Msg("delete failed")
		return false
	}
	return true
}

// Delete is DeleteRow with the failure cause
func (m *DataModel) Delete(row int) error {
	if m.shutdown.Load() {
		return &model.PersistenceError{Op: "delete", Err: store.ErrClosed}
	}

	movie, ok := m.Movie(row)
	if !ok {
		return &model.PersistenceError{Op: "delete", Err: store.ErrNotFound}
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	if err := m.store.Delete(ctx, movie.ID); err != nil {
		return &model.PersistenceError{Op: "delete", Err: err}
	}
	m.logger.Info().Str("id", movie.ID).Str("title", movie.Title).Msg("movie deleted")
	return nil
}

// LoadAllMovies replaces the rows with the current contents of the store
func (m *DataModel) LoadAllMovies() error {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	movies, err := m.store.List(ctx)
	if err != nil {
		m.logger.Error().Err(err).Msg("load failed")
		return &model.PersistenceError{Op: "load", Err: err}
	}

	rows := make([]any, 0, len(movies))
	for _, movie := range movies {
		rows = append(rows, movie)
	}
	if err := m.rows.Set(rows); err != nil {
		return err
	}

	m.logger.Debug().Int("rows", len(rows)).Msg("movies loaded")
	return nil
}

// Shutdown closes the store. Only the first call has an effect.
func (m *DataModel) Shutdown() {
	m.shutdownOnce.Do(func() {
		m.shutdown.Store(true)
		if err := m.store.Close(); err != nil {
			m.logger.Error().Err(err).Msg("store shutdown failed")
			return
		}
		m.logger.Info().Msg("store shut down")
	})
}

// IsShutdown reports whether Shutdown has been called
func (m *DataModel) IsShutdown() bool {
	return m.shutdown.Load()
}
