// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/taibuivan/opinion/internal/platform/dberr"
	"github.com/taibuivan/opinion/internal/platform/outcome"
	"github.com/taibuivan/opinion/internal/platform/sec"
	"github.com/taibuivan/opinion/internal/users/auth"
)

const (
	msgNotFound        = "Comment not found."
	msgQuoteNotFound   = "Quote not found."
	msgAdded           = "Comment added successfully."
	msgAddFailed       = "There was an error adding the Comment."
	msgUpdated         = "Comment updated successfully."
	msgUpdateFailed    = "An error occurred updating the comment."
	msgUpdateForbidden = "You are not authorized to update this comment."
	msgDeleted         = "Comment deleted successfully."
	msgDeleteFailed    = "Error encountered while deleting the Comment"
	msgDeleteForbidden = "You are not authorized to delete this comment."
	msgLoadFailed      = "An error occurred loading the comments."
	msgAuthorizeFailed = "An error occurred checking your permissions."
)

type Service struct {
	repo      Repository
	directory UserDirectory
	logger    *slog.Logger
	now       func() time.Time
}

func NewService(repo Repository, directory UserDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		directory: directory,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock replaces the time source used to stamp new comments.
func (service *Service) WithClock(now func() time.Time) *Service {
	service.now = now
	return service
}

// # Reads

// ListByQuote returns the quote's comments newest first. A quote without
// comments yields Found with an empty list.
func (service *Service) ListByQuote(context context.Context, quoteID int) outcome.Result[[]View] {
	views, err := service.Thread(context, quoteID)
	if err != nil {
		return outcome.Fail[[]View](msgLoadFailed, dberr.Detail(err))
	}
	return outcome.Found(views)
}

// Thread loads and resolves the comments of one quote. It is the raw form of
// [Service.ListByQuote] for callers that build their own envelope.
func (service *Service) Thread(context context.Context, quoteID int) ([]View, error) {
	comments, err := service.repo.ListByQuote(context, quoteID)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(comments, func(a, b *Comment) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	names := service.newNameResolver()
	views := make([]View, 0, len(comments))
	for _, c := range comments {
		views = append(views, toView(c, names.resolve(context, c.UserID)))
	}
	return views, nil
}

// Get returns one comment with its author resolved.
func (service *Service) Get(context context.Context, id int) outcome.Result[View] {
	c, err := service.repo.Find(context, id)
	switch {
	case dberr.IsNotFound(err):
		return outcome.NotFound[View](msgNotFound)
	case err != nil:
		return outcome.Fail[View](msgLoadFailed, dberr.Detail(err))
	}

	return outcome.Found(toView(c, service.newNameResolver().resolve(context, c.UserID)))
}

// # Writes

/*
Add stores a comment on an existing quote and returns the refreshed thread.

The new comment is stamped with the service clock. An empty text becomes
[DefaultText]. A nil userID records a system comment.
*/
func (service *Service) Add(context context.Context, text string, quoteID int, userID *string) outcome.Result[Thread] {
	quote, err := service.repo.FindQuote(context, quoteID)
	switch {
	case dberr.IsNotFound(err):
		return outcome.NotFound[Thread](msgQuoteNotFound)
	case err != nil:
		return outcome.Fail[Thread](msgAddFailed, dberr.Detail(err))
	}

	if text == "" {
		text = DefaultText
	}

	c := &Comment{
		QuoteID:   quoteID,
		UserID:    userID,
		Text:      text,
		CreatedAt: service.now().UTC(),
	}

	if err := service.repo.Create(context, c); err != nil {
		service.logger.Error("comment_create_failed", slog.Int("quote_id", quoteID), slog.Any("error", err))
		return outcome.Fail[Thread](msgAddFailed, dberr.Detail(err))
	}

	service.logger.Info("comment_created", slog.Int("comment_id", c.ID), slog.Int("quote_id", quoteID))

	// The row is committed; a failed reload still reports Created, with only the new comment.
	views, err := service.Thread(context, quoteID)
	if err != nil {
		service.logger.Warn("comment_thread_reload_failed", slog.Int("quote_id", quoteID), slog.Any("error", err))
		views = []View{toView(c, service.newNameResolver().resolve(context, userID))}
	}

	return outcome.Created(c.ID, Thread{Quote: *quote, Comments: views}, msgAdded)
}

// Update replaces the text of a comment owned by the caller, or any comment
// when the caller is an admin.
func (service *Service) Update(context context.Context, id int, text, actingUserID string) outcome.Result[View] {
	c, err := service.repo.Find(context, id)
	switch {
	case dberr.IsNotFound(err):
		return outcome.NotFound[View](msgNotFound)
	case err != nil:
		return outcome.Fail[View](msgUpdateFailed, dberr.Detail(err))
	}

	allowed, err := service.authorize(context, c, actingUserID)
	if err != nil {
		return outcome.Fail[View](msgAuthorizeFailed)
	}
	if !allowed {
		service.logger.Warn("comment_update_forbidden", slog.Int("comment_id", id), slog.String("user_id", actingUserID))
		return outcome.Forbidden[View](msgUpdateForbidden)
	}

	if err := service.repo.UpdateText(context, id, text); err != nil {
		if dberr.IsNotFound(err) {
			return outcome.NotFound[View](msgNotFound)
		}
		return outcome.Fail[View](msgUpdateFailed, dberr.Detail(err))
	}

	c.Text = text
	service.logger.Info("comment_updated", slog.Int("comment_id", id), slog.String("user_id", actingUserID))
	return outcome.Updated(toView(c, service.newNameResolver().resolve(context, c.UserID)), msgUpdated)
}

// Delete removes a comment under the same rules as [Service.Update].
func (service *Service) Delete(context context.Context, id int, actingUserID string) outcome.Result[View] {
	c, err := service.repo.Find(context, id)
	switch {
	case dberr.IsNotFound(err):
		return outcome.NotFound[View](msgNotFound)
	case err != nil:
		return outcome.Fail[View](msgDeleteFailed, dberr.Detail(err))
	}

	allowed, err := service.authorize(context, c, actingUserID)
	if err != nil {
		return outcome.Fail[View](msgAuthorizeFailed)
	}
	if !allowed {
		service.logger.Warn("comment_delete_forbidden", slog.Int("comment_id", id), slog.String("user_id", actingUserID))
		return outcome.Forbidden[View](msgDeleteForbidden)
	}

	if err := service.repo.Delete(context, id); err != nil {
		if dberr.IsNotFound(err) {
			return outcome.NotFound[View](msgNotFound)
		}
		return outcome.Fail[View](msgDeleteFailed, dberr.Detail(err))
	}

	service.logger.Warn("comment_deleted", slog.Int("comment_id", id), slog.String("user_id", actingUserID))
	return outcome.Deleted[View](msgDeleted)
}

// # Authorization

// authorize reports whether actingUserID owns c or holds the admin role.
// An unknown acting user is simply not an admin.
func (service *Service) authorize(context context.Context, c *Comment, actingUserID string) (bool, error) {
	if c.UserID != nil && *c.UserID == actingUserID {
		return true, nil
	}

	user, err := service.directory.FindUserByID(context, actingUserID)
	if errors.Is(err, auth.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		service.logger.Error("comment_authorize_failed", slog.String("user_id", actingUserID), slog.Any("error", err))
		return false, fmt.Errorf("find acting user: %w", err)
	}

	return service.directory.IsInRole(context, user, sec.RoleAdmin)
}

// # Name Resolution

// nameResolver caches display names for the duration of one call.
type nameResolver struct {
	directory UserDirectory
	cache     map[string]string
}

func (service *Service) newNameResolver() *nameResolver {
	return &nameResolver{directory: service.directory, cache: map[string]string{}}
}

func (resolver *nameResolver) resolve(context context.Context, userID *string) string {
	if userID == nil || *userID == "" {
		return AnonymousName
	}

	if name, ok := resolver.cache[*userID]; ok {
		return name
	}

	name, err := resolver.directory.GetDisplayName(context, *userID)
	if err != nil || name == "" {
		name = AnonymousName
	}

	resolver.cache[*userID] = name
	return name
}

func toView(c *Comment, userName string) View {
	return View{
		CommentID:   c.ID,
		CommentText: c.Text,
		CreatedAt:   c.CreatedAt.Format(TimeLayout),
		UserName:    userName,
		UserID:      c.UserID,
		QuoteID:     c.QuoteID,
	}
}
