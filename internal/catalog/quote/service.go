// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package quote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taibuivan/opinion/internal/platform/dberr"
	"github.com/taibuivan/opinion/internal/platform/outcome"
	"github.com/taibuivan/opinion/internal/social/comment"
)

const (
	msgAddFailed        = "There was an error adding the Quote."
	msgUpdateFailed     = "An error occurred updating the record"
	msgDeleteMissing    = "Quote cannot be deleted because it does not exist."
	msgDeleteFailed     = "Error encountered while deleting the Quote"
	msgNoQuotesForDrama = "No quotes found for the specified drama ID."
)

// CommentReader loads the resolved comment thread of a quote.
// [comment.Service] implements it.
type CommentReader interface {
	Thread(context context.Context, quoteID int) ([]comment.View, error)
}

type Service struct {
	repo     Repository
	comments CommentReader
	logger   *slog.Logger
}

func NewService(repo Repository, comments CommentReader, logger *slog.Logger) *Service {
	return &Service{repo: repo, comments: comments, logger: logger}
}

func quoteNotFound(id int) string {
	return fmt.Sprintf("Quote with ID %d not found.", id)
}

func dramaNotFound(id int) string {
	return fmt.Sprintf("Drama with ID %d not found.", id)
}

// List returns every quote with its drama title.
func (service *Service) List(context context.Context) outcome.Result[[]Quote] {
	quotes, err := service.repo.List(context)
	if err != nil {
		return outcome.Fail[[]Quote]("An error occurred loading the quotes.", dberr.Detail(err))
	}
	return outcome.Found(values(quotes))
}

// Find returns a quote with its drama title and comment thread.
func (service *Service) Find(context context.Context, id int) outcome.Result[Quote] {
	quote, err := service.repo.Find(context, id)
	switch {
	case dberr.IsNotFound(err):
		return outcome.NotFound[Quote](quoteNotFound(id))
	case err != nil:
		return outcome.Fail[Quote]("An error occurred loading the quote.", dberr.Detail(err))
	}

	thread, err := service.comments.Thread(context, id)
	if err != nil {
		return outcome.Fail[Quote]("An error occurred loading the comments.", dberr.Detail(err))
	}
	quote.Comments = thread

	return outcome.Found(*quote)
}

// ListForDrama returns Success with the drama's quotes, or NotFound when it has none.
func (service *Service) ListForDrama(context context.Context, dramaID int) outcome.Result[[]Quote] {
	quotes, err := service.repo.ListByDrama(context, dramaID)
	if err != nil {
		return outcome.Fail[[]Quote]("An error occurred loading the quotes.", dberr.Detail(err))
	}
	if len(quotes) == 0 {
		return outcome.NotFound[[]Quote](msgNoQuotesForDrama)
	}
	return outcome.Success(values(quotes))
}

// Add inserts a quote under an existing drama. A missing drama is NotFound
// and nothing is written.
func (service *Service) Add(context context.Context, input Quote) outcome.Result[Quote] {
	exists, err := service.repo.DramaExists(context, input.DramaID)
	if err != nil {
		return outcome.Fail[Quote](msgAddFailed, dberr.Detail(err))
	}
	if !exists {
		return outcome.NotFound[Quote](dramaNotFound(input.DramaID))
	}

	quote := input
	quote.ID = 0
	quote.Comments = nil

	if err := service.repo.Create(context, &quote); err != nil {
		service.logger.Error("quote_create_failed", slog.Int("drama_id", quote.DramaID), slog.Any("error", err))
		return outcome.Fail[Quote](msgAddFailed, dberr.Detail(err))
	}

	service.logger.Info("quote_created", slog.Int("quote_id", quote.ID), slog.Int("drama_id", quote.DramaID))
	return outcome.Created(quote.ID, quote)
}

// Update overwrites the scalar fields and may move the quote to another drama.
// The quote is checked before the target drama.
func (service *Service) Update(context context.Context, input Quote) outcome.Result[Quote] {
	current, err := service.repo.Find(context, input.ID)
	switch {
	case dberr.IsNotFound(err):
		return outcome.NotFound[Quote](quoteNotFound(input.ID))
	case err != nil:
		return outcome.Fail[Quote](msgUpdateFailed, dberr.Detail(err))
	}

	exists, err := service.repo.DramaExists(context, input.DramaID)
	if err != nil {
		return outcome.Fail[Quote](msgUpdateFailed, dberr.Detail(err))
	}
	if !exists {
		return outcome.NotFound[Quote](dramaNotFound(input.DramaID))
	}

	current.Content = input.Content
	current.Actor = input.Actor
	current.Episode = input.Episode
	current.DramaID = input.DramaID

	if err := service.repo.Update(context, current); err != nil {
		if errors.Is(err, dberr.ErrStaleVersion) {
			service.logger.Warn("quote_update_conflict", slog.Int("quote_id", current.ID))
			return outcome.Fail[Quote](msgUpdateFailed)
		}
		return outcome.Fail[Quote](msgUpdateFailed, dberr.Detail(err))
	}

	service.logger.Info("quote_updated", slog.Int("quote_id", current.ID))
	return service.reload(context, current)
}

// Delete removes a quote with its comments and mood tags.
func (service *Service) Delete(context context.Context, id int) outcome.Result[Quote] {
	if _, err := service.repo.Find(context, id); err != nil {
		if dberr.IsNotFound(err) {
			return outcome.NotFound[Quote](msgDeleteMissing)
		}
		return outcome.Fail[Quote](msgDeleteFailed, dberr.Detail(err))
	}

	if err := service.repo.Delete(context, id); err != nil {
		if dberr.IsNotFound(err) {
			return outcome.NotFound[Quote](msgDeleteMissing)
		}
		return outcome.Fail[Quote](msgDeleteFailed, dberr.Detail(err))
	}

	service.logger.Warn("quote_deleted", slog.Int("quote_id", id))
	return outcome.Deleted[Quote]()
}

// reload re-reads an updated quote so the drama title follows a reassignment.
func (service *Service) reload(context context.Context, quote *Quote) outcome.Result[Quote] {
	fresh, err := service.repo.Find(context, quote.ID)
	if err != nil {
		return outcome.Updated(*quote)
	}
	return outcome.Updated(*fresh)
}

func values(quotes []*Quote) []Quote {
	out := make([]Quote, 0, len(quotes))
	for _, quote := range quotes {
		out = append(out, *quote)
	}
	return out
}
