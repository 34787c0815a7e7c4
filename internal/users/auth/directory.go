// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"

	"github.com/taibuivan/opinion/internal/platform/dberr"
	"github.com/taibuivan/opinion/internal/platform/sec"
	"github.com/taibuivan/opinion/pkg/uuid"
)

// Directory answers identity questions about existing accounts.
type Directory struct {
	users UserRepository
}

func NewDirectory(users UserRepository) *Directory {
	return &Directory{users: users}
}

// FindUserByID returns [ErrUserNotFound] for unknown and malformed ids.
func (directory *Directory) FindUserByID(context context.Context, id string) (*User, error) {
	if !uuid.Valid(id) {
		return nil, ErrUserNotFound
	}

	user, err := directory.users.FindByID(context, id)
	switch {
	case dberr.IsNotFound(err):
		return nil, ErrUserNotFound
	case err != nil:
		return nil, fmt.Errorf("directory_find_user_failed: %w", err)
	}
	return user, nil
}

// IsInRole reports whether the user holds at least the given role.
func (directory *Directory) IsInRole(_ context.Context, user *User, role sec.UserRole) (bool, error) {
	if user == nil {
		return false, nil
	}
	return user.Role.AtLeast(role), nil
}

// GetDisplayName resolves a user id to the name shown next to their comments.
func (directory *Directory) GetDisplayName(context context.Context, userID string) (string, error) {
	user, err := directory.FindUserByID(context, userID)
	if err != nil {
		return "", err
	}
	return user.Name(), nil
}
