// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package drama

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taibuivan/opinion/internal/platform/dberr"
	"github.com/taibuivan/opinion/internal/platform/outcome"
)

const (
	msgAddFailed     = "There was an error adding the Drama."
	msgUpdateFailed  = "An error occurred updating the record"
	msgDeleteMissing = "Drama cannot be deleted because it does not exist."
	msgDeleteFailed  = "Error encountered while deleting the Drama"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func notFound(id int) string {
	return fmt.Sprintf("Drama with ID %d not found.", id)
}

// List returns every drama ordered by id. An empty catalog is still Found.
func (service *Service) List(context context.Context) outcome.Result[[]Drama] {
	dramas, err := service.repo.List(context)
	if err != nil {
		return outcome.Fail[[]Drama]("An error occurred loading the dramas.", dberr.Detail(err))
	}

	items := make([]Drama, 0, len(dramas))
	for _, d := range dramas {
		items = append(items, *d)
	}
	return outcome.Found(items)
}

// Find returns one drama, or NotFound.
func (service *Service) Find(context context.Context, id int) outcome.Result[Drama] {
	drama, err := service.repo.Find(context, id)
	switch {
	case dberr.IsNotFound(err):
		return outcome.NotFound[Drama](notFound(id))
	case err != nil:
		return outcome.Fail[Drama]("An error occurred loading the drama.", dberr.Detail(err))
	}
	return outcome.Found(*drama)
}

// Add inserts a drama and reports its new id.
func (service *Service) Add(context context.Context, input Drama) outcome.Result[Drama] {
	drama := input
	drama.ID = 0

	if err := service.repo.Create(context, &drama); err != nil {
		service.logger.Error("drama_create_failed", slog.String("title", drama.Title), slog.Any("error", err))
		return outcome.Fail[Drama](msgAddFailed, dberr.Detail(err))
	}

	service.logger.Info("drama_created", slog.Int("drama_id", drama.ID), slog.String("title", drama.Title))
	return outcome.Created(drama.ID, drama)
}

// Update overwrites the scalar fields of an existing drama. The write only
// lands if nobody changed the row since it was read here.
func (service *Service) Update(context context.Context, input Drama) outcome.Result[Drama] {
	current, err := service.repo.Find(context, input.ID)
	switch {
	case dberr.IsNotFound(err):
		return outcome.NotFound[Drama](notFound(input.ID))
	case err != nil:
		return outcome.Fail[Drama](msgUpdateFailed, dberr.Detail(err))
	}

	current.Title = input.Title
	current.ReleaseYear = input.ReleaseYear
	current.Genre = input.Genre
	current.Synopsis = input.Synopsis

	if err := service.repo.Update(context, current); err != nil {
		if errors.Is(err, dberr.ErrStaleVersion) {
			service.logger.Warn("drama_update_conflict", slog.Int("drama_id", current.ID))
			return outcome.Fail[Drama](msgUpdateFailed)
		}
		return outcome.Fail[Drama](msgUpdateFailed, dberr.Detail(err))
	}

	service.logger.Info("drama_updated", slog.Int("drama_id", current.ID))
	return outcome.Updated(*current)
}

// Delete removes a drama together with its quotes and their comments.
func (service *Service) Delete(context context.Context, id int) outcome.Result[Drama] {
	if _, err := service.repo.Find(context, id); err != nil {
		if dberr.IsNotFound(err) {
			return outcome.NotFound[Drama](msgDeleteMissing)
		}
		return outcome.Fail[Drama](msgDeleteFailed, dberr.Detail(err))
	}

	if err := service.repo.Delete(context, id); err != nil {
		if dberr.IsNotFound(err) {
			return outcome.NotFound[Drama](msgDeleteMissing)
		}
		return outcome.Fail[Drama](msgDeleteFailed, dberr.Detail(err))
	}

	service.logger.Warn("drama_deleted", slog.Int("drama_id", id))
	return outcome.Deleted[Drama]()
}
