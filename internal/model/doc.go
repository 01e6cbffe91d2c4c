package model

// Package model defines the movie record shared by the store, the data model
// and the form, together with the input rules a movie must satisfy and the
// error types used to report rule and persistence failures.
