// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package quote manages lines spoken in a drama.

A quote always belongs to an existing drama. Reads carry the drama title
resolved by a join; a single-quote read also carries the comment thread.
*/
package quote

import (
	"github.com/taibuivan/opinion/internal/platform/validate"
	"github.com/taibuivan/opinion/internal/social/comment"
)

type Quote struct {
	ID      int    `json:"quote_id"`
	Content string `json:"content"`
	Actor   string `json:"actor"`
	Episode int    `json:"episode"`
	DramaID int    `json:"drama_id"`

	// Read-only projections.
	DramaTitle string         `json:"drama_title"`
	Comments   []comment.View `json:"comments,omitempty"`

	Version uint32 `json:"-"`
}

const (
	FieldID      = "quote_id"
	FieldContent = "content"
	FieldActor   = "actor"
	FieldEpisode = "episode"
	FieldDramaID = "drama_id"

	MaxContentLen = 1000
	MaxActorLen   = 100
)

func (quote *Quote) Validate() error {
	validator := &validate.Validator{}

	validator.Required(FieldContent, quote.Content).
		MaxLen(FieldContent, quote.Content, MaxContentLen).
		Required(FieldActor, quote.Actor).
		MaxLen(FieldActor, quote.Actor, MaxActorLen).
		Positive(FieldEpisode, quote.Episode).
		Positive(FieldDramaID, quote.DramaID)

	return validator.Err()
}
