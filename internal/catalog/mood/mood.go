// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package mood manages the sentiment labels that quotes are tagged with.
package mood

import "github.com/taibuivan/opinion/internal/platform/validate"

type Mood struct {
	ID   int    `json:"mood_id"`
	Type string `json:"type"`

	Version uint32 `json:"-"`
}

const (
	FieldID   = "mood_id"
	FieldType = "type"

	MaxTypeLen = 50
)

// Validate checks the label. Case is preserved as given.
func (mood *Mood) Validate() error {
	validator := &validate.Validator{}
	validator.Required(FieldType, mood.Type).MaxLen(FieldType, mood.Type, MaxTypeLen)
	return validator.Err()
}
