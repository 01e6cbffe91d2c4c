package model

import (
	"strconv"
	"strings"
	"time"
)

// Rating bounds accepted by the store and the rating input
const (
	MinRating     = 1
	MaxRating     = 10
	DefaultRating = MinRating
)

// MinYear is the earliest release year accepted for a movie
const MinYear = 1900

// Movie represents a single row of the movies table
type Movie struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Year      int       `json:"year"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizeTitle trims surrounding whitespace and rejects blank titles
func NormalizeTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", &ValidationError{Field: FieldTitle, Err: ErrEmptyTitle}
	}
	return trimmed, nil
}

// ParseYear parses the year input and checks it lies in [MinYear, current year]
func ParseYear(input string, now time.Time) (int, error) {
	year, err := strconv.Atoi(input)
	if err != nil {
		return 0, &ValidationError{Field: FieldYear, Err: ErrBadYear}
	}
	if err := ValidateYear(year, now); err != nil {
		return 0, err
	}
	return year, nil
}

// ValidateYear checks that year is between MinYear and the year of now, inclusive
func ValidateYear(year int, now time.Time) error {
	if year < MinYear || year > now.Year() {
		return &ValidationError{Field: FieldYear, Err: ErrBadYear}
	}
	return nil
}

// ValidateRating checks that rating is within [MinRating, MaxRating]
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return &ValidationError{Field: FieldRating, Err: ErrBadRating}
	}
	return nil
}

// ClampRating forces rating into [MinRating, MaxRating]
func ClampRating(rating int) int {
	if rating < MinRating {
		return MinRating
	}
	if rating > MaxRating {
		return MaxRating
	}
	return rating
}

// Validate checks every field of a movie that is about to be stored
func (m *Movie) Validate(now time.Time) error {
	if _, err := NormalizeTitle(m.Title); err != nil {
		return err
	}
	if err := ValidateYear(m.Year, now); err != nil {
		return err
	}
	return ValidateRating(m.Rating)
}
