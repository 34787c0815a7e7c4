// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package quotemood links quotes to moods through the catalog.quotemood join
table and answers "which quotes feel like X".

Mood labels match exactly and case-sensitively: "Witty" and "witty" are
different moods.
*/
package quotemood

import (
	"errors"

	"github.com/taibuivan/opinion/internal/platform/validate"
)

// QuoteOnMood is the flattened projection of one tagged quote.
type QuoteOnMood struct {
	QuoteID int    `json:"quote_id"`
	Content string `json:"content"`
	Actor   string `json:"actor"`
	Type    string `json:"type"`
	Title   string `json:"title"`
}

// Tag is one (quote, mood) pair.
type Tag struct {
	QuoteID int `json:"quote_id"`
	MoodID  int `json:"mood_id"`
}

// MoodTag is a mood attached to a quote.
type MoodTag struct {
	MoodID int    `json:"mood_id"`
	Type   string `json:"type"`
}

func (tag *Tag) Validate() error {
	validator := &validate.Validator{}
	validator.Positive("quote_id", tag.QuoteID).Positive("mood_id", tag.MoodID)
	return validator.Err()
}

// Errors returned by [Repository.Tag].
var (
	ErrQuoteMissing = errors.New("quotemood: quote does not exist")
	ErrMoodMissing  = errors.New("quotemood: mood does not exist")
	ErrDuplicateTag = errors.New("quotemood: pair already exists")
)
