// Package storetest provides a recording Store for tests of store consumers.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ytget/movie-form/internal/model"
	"github.com/ytget/movie-form/internal/store"
)

// ErrInjected is returned by FakeStore operations configured to fail.
var ErrInjected = errors.New("injected store failure")

// InsertCall records the arguments of one Insert call.
type InsertCall struct {
	Title  string
	Year   int
	Rating int
}

// FakeStore is an in-memory Store that records every call and can be told to fail.
type FakeStore struct {
	mu sync.Mutex

	Movies []*model.Movie

	FailInsert bool
	FailDelete bool
	FailList   bool

	Inserts    []InsertCall
	Deletes    []string
	ListCalls  int
	CloseCalls int

	nextID int
}

var _ store.Store = (*FakeStore)(nil)

// New returns a FakeStore preloaded with movies built from titles.
func New(titles ...string) *FakeStore {
	f := &FakeStore{}
	for _, title := range titles {
		f.add(title, 2000, model.DefaultRating)
	}
	return f
}

func (f *FakeStore) add(title string, year, rating int) *model.Movie {
	f.nextID++
	m := &model.Movie{
		ID:        fmt.Sprintf("movie-%d", f.nextID),
		Title:     title,
		Year:      year,
		Rating:    rating,
		CreatedAt: time.Unix(int64(f.nextID), 0),
	}
	f.Movies = append(f.Movies, m)
	return m
}

func (f *FakeStore) List(ctx context.Context) ([]*model.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.ListCalls++
	if f.FailList {
		return nil, ErrInjected
	}
	out := make([]*model.Movie, 0, len(f.Movies))
	for _, m := range f.Movies {
		c := *m
		out = append(out, &c)
	}
	return out, nil
}

func (f *FakeStore) Insert(ctx context.Context, title string, year, rating int) (*model.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Inserts = append(f.Inserts, InsertCall{Title: title, Year: year, Rating: rating})
	if f.FailInsert {
		return nil, ErrInjected
	}
	m := *f.add(title, year, rating)
	return &m, nil
}

func (f *FakeStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Deletes = append(f.Deletes, id)
	if f.FailDelete {
		return ErrInjected
	}
	for i, m := range f.Movies {
		if m.ID == id {
			f.Movies = append(f.Movies[:i], f.Movies[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *FakeStore) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.CloseCalls++
	return nil
}
