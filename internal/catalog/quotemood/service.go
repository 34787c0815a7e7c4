// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package quotemood

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/opinion/internal/platform/dberr"
	"github.com/taibuivan/opinion/internal/platform/outcome"
	"github.com/taibuivan/opinion/pkg/normalize"
)

const (
	msgNoQuotesForMood = "No quotes found for the specified mood."
	msgQuoteNotFound   = "Quote not found."
	msgMoodNotFound    = "Mood not found."
	msgDuplicateTag    = "Quote is already tagged with this mood"
	msgTagFailed       = "There was an error tagging the Quote."
	msgTagNotFound     = "Quote is not tagged with this mood."
	msgUntagFailed     = "Error encountered while removing the tag"
	msgTagged          = "Mood tag added."
	msgUntagged        = "Mood tag removed."
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// QuotesForMood returns Success with every quote tagged with label, or
// NotFound when nothing matches.
func (service *Service) QuotesForMood(context context.Context, label string) outcome.Result[[]QuoteOnMood] {
	quotes, err := service.repo.QuotesForMood(context, normalize.Label(label))
	if err != nil {
		return outcome.Fail[[]QuoteOnMood]("An error occurred loading the quotes.", dberr.Detail(err))
	}
	if len(quotes) == 0 {
		return outcome.NotFound[[]QuoteOnMood](msgNoQuotesForMood)
	}
	return outcome.Success(quotes)
}

func (service *Service) MoodsForQuote(context context.Context, quoteID int) outcome.Result[[]MoodTag] {
	moods, err := service.repo.MoodsForQuote(context, quoteID)
	switch {
	case dberr.IsNotFound(err):
		return outcome.NotFound[[]MoodTag](msgQuoteNotFound)
	case err != nil:
		return outcome.Fail[[]MoodTag]("An error occurred loading the moods.", dberr.Detail(err))
	}
	return outcome.Found(moods)
}

// Tag links a quote to a mood. The created id is the quote id.
func (service *Service) Tag(context context.Context, tag Tag) outcome.Result[Tag] {
	err := service.repo.Tag(context, tag)
	switch {
	case errors.Is(err, ErrQuoteMissing):
		return outcome.NotFound[Tag](msgQuoteNotFound)
	case errors.Is(err, ErrMoodMissing):
		return outcome.NotFound[Tag](msgMoodNotFound)
	case errors.Is(err, ErrDuplicateTag), dberr.IsUniqueViolation(err):
		return outcome.Fail[Tag](msgDuplicateTag)
	case err != nil:
		return outcome.Fail[Tag](msgTagFailed, dberr.Detail(err))
	}

	service.logger.Info("quote_tagged", slog.Int("quote_id", tag.QuoteID), slog.Int("mood_id", tag.MoodID))
	return outcome.Created(tag.QuoteID, tag, msgTagged)
}

func (service *Service) Untag(context context.Context, tag Tag) outcome.Result[Tag] {
	err := service.repo.Untag(context, tag)
	switch {
	case dberr.IsNotFound(err):
		return outcome.NotFound[Tag](msgTagNotFound)
	case err != nil:
		return outcome.Fail[Tag](msgUntagFailed, dberr.Detail(err))
	}

	service.logger.Info("quote_untagged", slog.Int("quote_id", tag.QuoteID), slog.Int("mood_id", tag.MoodID))
	return outcome.Deleted[Tag](msgUntagged)
}
