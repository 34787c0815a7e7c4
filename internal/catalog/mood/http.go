// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mood

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/opinion/internal/platform/apperr"
	"github.com/taibuivan/opinion/internal/platform/middleware"
	requestutil "github.com/taibuivan/opinion/internal/platform/request"
	"github.com/taibuivan/opinion/internal/platform/respond"
	"github.com/taibuivan/opinion/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the mood endpoints, mounted at /api/Mood.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/MoodList", handler.list)
	router.Get("/FindMood/{id}", handler.find)

	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Post("/AddMood", handler.add)
		adminRoute.Put("/UpdateMood/{id}", handler.update)
		adminRoute.Delete("/DeleteMood/{id}", handler.delete)
	})

	return router
}

func Location(id int) string {
	return fmt.Sprintf("/api/Mood/FindMood/%d", id)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	respond.Outcome(writer, request, handler.service.List(request.Context()), "")
}

func (handler *Handler) find(writer http.ResponseWriter, request *http.Request) {
	moodID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Outcome(writer, request, handler.service.Find(request.Context(), moodID), "")
}

func (handler *Handler) add(writer http.ResponseWriter, request *http.Request) {
	var input Mood
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if err := input.Validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result := handler.service.Add(request.Context(), input)
	location := ""
	if result.CreatedID != nil {
		location = Location(*result.CreatedID)
	}
	respond.Outcome(writer, request, result, location)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	moodID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Mood
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if input.ID != moodID {
		respond.Error(writer, request, apperr.BadRequest("Route id does not match mood_id"))
		return
	}
	if err := input.Validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Outcome(writer, request, handler.service.Update(request.Context(), input), "")
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	moodID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Outcome(writer, request, handler.service.Delete(request.Context(), moodID), "")
}
