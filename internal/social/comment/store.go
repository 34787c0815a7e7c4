// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"

	"github.com/taibuivan/opinion/internal/platform/sec"
	"github.com/taibuivan/opinion/internal/users/auth"
)

// Repository defines the data access contract for comments.
//
// Find, FindQuote, UpdateText and Delete return [dberr.ErrNotFound] for a
// missing row.
type Repository interface {
	Create(context context.Context, comment *Comment) error
	Find(context context.Context, id int) (*Comment, error)

	// ListByQuote returns the quote's comments, newest first.
	ListByQuote(context context.Context, quoteID int) ([]*Comment, error)

	UpdateText(context context.Context, id int, text string) error
	Delete(context context.Context, id int) error

	FindQuote(context context.Context, quoteID int) (*QuoteSummary, error)
}

// UserDirectory is the identity capability the service needs.
// [auth.Directory] implements it.
type UserDirectory interface {
	// FindUserByID returns [auth.ErrUserNotFound] for an unknown id.
	FindUserByID(context context.Context, id string) (*auth.User, error)
	IsInRole(context context.Context, user *auth.User, role sec.UserRole) (bool, error)
	GetDisplayName(context context.Context, userID string) (string, error)
}
