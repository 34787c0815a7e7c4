// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package comment manages user remarks on quotes.

Reading is public. Writing requires an account, and only the author or an
admin may change or remove a comment. Every mutation ends in exactly one of
NotFound, Forbidden, Error, or the success status:

	Received -> lookup    -> NotFound
	         -> authorize -> Forbidden
	         -> persist   -> Updated | Deleted | Error

A missing comment is NotFound whoever asks. Comments without an author are
system comments: they display as "Anonymous" and only admins may touch them.
*/
package comment

import (
	"time"

	"github.com/taibuivan/opinion/internal/platform/validate"
)

const (
	// DefaultText replaces an empty comment body on Add.
	DefaultText = "No comment provided."

	// AnonymousName is shown when the author is absent or cannot be resolved.
	AnonymousName = "Anonymous"

	// TimeLayout formats createdAt in views.
	TimeLayout = "2006-01-02 15:04:05"

	MaxTextLen = 1000
)

// Comment is the stored row.
type Comment struct {
	ID        int
	QuoteID   int
	UserID    *string
	Text      string
	CreatedAt time.Time
}

// View is the display form of a comment with its author resolved.
type View struct {
	CommentID   int     `json:"commentId"`
	CommentText string  `json:"commentText"`
	CreatedAt   string  `json:"createdAt"`
	UserName    string  `json:"userName"`
	UserID      *string `json:"userId"`
	QuoteID     int     `json:"quote_id"`
}

// QuoteSummary is the parent quote shown above a thread.
type QuoteSummary struct {
	QuoteID    int    `json:"quote_id"`
	Content    string `json:"content"`
	Actor      string `json:"actor"`
	Episode    int    `json:"episode"`
	DramaID    int    `json:"drama_id"`
	DramaTitle string `json:"drama_title"`
}

// Thread is a quote with all of its comments, newest first.
type Thread struct {
	Quote    QuoteSummary `json:"quote"`
	Comments []View       `json:"comments"`
}

// AddInput is the AddComment request body.
type AddInput struct {
	QuoteID     int    `json:"quote_id"`
	CommentText string `json:"commentText"`
}

const (
	FieldQuoteID     = "quote_id"
	FieldCommentText = "commentText"
)

// Validate checks the body. An empty text is allowed and replaced by [DefaultText].
func (input *AddInput) Validate() error {
	validator := &validate.Validator{}
	validator.Positive(FieldQuoteID, input.QuoteID).
		MaxLen(FieldCommentText, input.CommentText, MaxTextLen)
	return validator.Err()
}

// ValidateText checks a replacement body for UpdateComment.
func ValidateText(text string) error {
	validator := &validate.Validator{}
	validator.Required(FieldCommentText, text).MaxLen(FieldCommentText, text, MaxTextLen)
	return validator.Err()
}
