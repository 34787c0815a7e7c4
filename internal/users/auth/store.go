// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "context"

// # User Data Access

// UserRepository defines the data access contract for accounts.
//
// Lookups return [dberr.ErrNotFound] when no row matches.
type UserRepository interface {
	FindByID(context context.Context, id string) (*User, error)
	FindByEmail(context context.Context, email string) (*User, error)
	FindByUsername(context context.Context, username string) (*User, error)
	Create(context context.Context, user *User) error

	// UpdateRole changes the role of the account with the given email.
	UpdateRole(context context.Context, email string, role string) error
}

// # Session Data Access

// SessionRepository stores refresh-token sessions keyed by token hash.
type SessionRepository interface {
	Create(context context.Context, session *Session) error

	// Consume removes the session and returns it in one step, so a token can
	// be spent once. An unknown or expired token yields [dberr.ErrNotFound].
	Consume(context context.Context, tokenHash string) (*Session, error)

	// Revoke deletes the session. Revoking a missing session is not an error.
	Revoke(context context.Context, tokenHash string) error
}
