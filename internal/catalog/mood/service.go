// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mood

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/opinion/internal/platform/dberr"
	"github.com/taibuivan/opinion/internal/platform/outcome"
	"github.com/taibuivan/opinion/pkg/normalize"
)

const (
	msgNotFound      = "Mood not found."
	msgAddFailed     = "There was an error adding the Mood."
	msgUpdateFailed  = "An error occurred updating the record"
	msgDeleteMissing = "Mood cannot be deleted because it does not exist."
	msgDeleteFailed  = "Error encountered while deleting the Mood"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) List(context context.Context) outcome.Result[[]Mood] {
	moods, err := service.repo.List(context)
	if err != nil {
		return outcome.Fail[[]Mood]("An error occurred loading the moods.", dberr.Detail(err))
	}

	items := make([]Mood, 0, len(moods))
	for _, m := range moods {
		items = append(items, *m)
	}
	return outcome.Found(items)
}

func (service *Service) Find(context context.Context, id int) outcome.Result[Mood] {
	mood, err := service.repo.Find(context, id)
	switch {
	case dberr.IsNotFound(err):
		return outcome.NotFound[Mood](msgNotFound)
	case err != nil:
		return outcome.Fail[Mood]("An error occurred loading the mood.", dberr.Detail(err))
	}
	return outcome.Found(*mood)
}

// Add inserts a mood. A duplicate label violates the unique index and is
// reported as Error with the driver detail.
func (service *Service) Add(context context.Context, input Mood) outcome.Result[Mood] {
	mood := input
	mood.ID = 0
	mood.Type = normalize.Label(mood.Type)

	if err := service.repo.Create(context, &mood); err != nil {
		service.logger.Error("mood_create_failed", slog.String("type", mood.Type), slog.Any("error", err))
		return outcome.Fail[Mood](msgAddFailed, dberr.Detail(err))
	}

	service.logger.Info("mood_created", slog.Int("mood_id", mood.ID), slog.String("type", mood.Type))
	return outcome.Created(mood.ID, mood)
}

func (service *Service) Update(context context.Context, input Mood) outcome.Result[Mood] {
	current, err := service.repo.Find(context, input.ID)
	switch {
	case dberr.IsNotFound(err):
		return outcome.NotFound[Mood](msgNotFound)
	case err != nil:
		return outcome.Fail[Mood](msgUpdateFailed, dberr.Detail(err))
	}

	current.Type = normalize.Label(input.Type)

	if err := service.repo.Update(context, current); err != nil {
		if errors.Is(err, dberr.ErrStaleVersion) {
			service.logger.Warn("mood_update_conflict", slog.Int("mood_id", current.ID))
			return outcome.Fail[Mood](msgUpdateFailed)
		}
		return outcome.Fail[Mood](msgUpdateFailed, dberr.Detail(err))
	}

	service.logger.Info("mood_updated", slog.Int("mood_id", current.ID))
	return outcome.Updated(*current)
}

// Delete removes a mood and, through the join table, its quote tags.
func (service *Service) Delete(context context.Context, id int) outcome.Result[Mood] {
	if _, err := service.repo.Find(context, id); err != nil {
		if dberr.IsNotFound(err) {
			return outcome.NotFound[Mood](msgDeleteMissing)
		}
		return outcome.Fail[Mood](msgDeleteFailed, dberr.Detail(err))
	}

	if err := service.repo.Delete(context, id); err != nil {
		if dberr.IsNotFound(err) {
			return outcome.NotFound[Mood](msgDeleteMissing)
		}
		return outcome.Fail[Mood](msgDeleteFailed, dberr.Detail(err))
	}

	service.logger.Warn("mood_deleted", slog.Int("mood_id", id))
	return outcome.Deleted[Mood]()
}
