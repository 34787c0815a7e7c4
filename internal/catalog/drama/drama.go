// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package drama manages the television dramas that quotes belong to.

Deleting a drama cascades to its quotes, and through them to their comments
and mood tags. The cascade is enforced by foreign keys, not by this package.
*/
package drama

import "github.com/taibuivan/opinion/internal/platform/validate"

// Drama is both the stored row and the transfer object.
type Drama struct {
	ID          int     `json:"drama_id"`
	Title       string  `json:"title"`
	ReleaseYear int     `json:"release_year"`
	Genre       *string `json:"genre"`
	Synopsis    *string `json:"synopsis"`

	// Version is the row's xmin at read time, used for optimistic updates.
	Version uint32 `json:"-"`
}

// Global field names for validation
const (
	FieldID          = "drama_id"
	FieldTitle       = "title"
	FieldReleaseYear = "release_year"
	FieldGenre       = "genre"
	FieldSynopsis    = "synopsis"
)

// Column limits mirrored from the migration.
const (
	MaxTitleLen = 200
	MaxGenreLen = 100
	MinYear     = 1900
	MaxYear     = 2100
)

// Validate checks the writable fields.
func (drama *Drama) Validate() error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, drama.Title).
		MaxLen(FieldTitle, drama.Title, MaxTitleLen).
		Range(FieldReleaseYear, drama.ReleaseYear, MinYear, MaxYear).
		MaxLenOptional(FieldGenre, drama.Genre, MaxGenreLen)

	return validator.Err()
}
