package store

// Package store persists movie records. It defines the Store contract used by
// the data model and ships an in-memory implementation and a PostgreSQL one
// (via github.com/lib/pq). Both implementations are safe for concurrent use
// and treat Close as idempotent.
