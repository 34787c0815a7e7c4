// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package drama

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

// Routes returns a [chi.Router] with the drama endpoints, mounted at /api/Drama.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/DramaList", handler.list)
	router.Get("/FindDrama/{id}", handler.find)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Post("/AddDrama", handler.add)
		adminRoute.Put("/UpdateDrama/{id}", handler.update)
		adminRoute.Delete("/DeleteDrama/{id}", handler.delete)
	})

	return router
}

// Location returns the API path of a single drama.
func Location(id int) string {
	return fmt.Sprintf("/api/Drama/FindDrama/%d", id)
}

/*
GET /api/Drama/DramaList.

Response:
  - 200: Result[[]Drama] with status Found, possibly empty
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	respond.Outcome(writer, request, handler.service.List(request.Context()), "")
}

func (handler *Handler) find(writer http.ResponseWriter, request *http.Request) {
	dramaID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Outcome(writer, request, handler.service.Find(request.Context(), dramaID), "")
}

/*
POST /api/Drama/AddDrama.

Request:
  - Body: Drama (drama_id is ignored)

Response:
  - 201: Result[Drama] with createdId and a Location header
  - 400: Validation failed
  - 500: Storage failure, with the driver detail in messages
*/
func (handler *Handler) add(writer http.ResponseWriter, request *http.Request) {
	var input Drama
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

/*
PUT /api/Drama/UpdateDrama/{id}.

The body's drama_id must equal the route id.

Response:
  - 200: Result[Drama] with status Updated
  - 404: No such drama
  - 500: The row changed since it was read, or storage failed
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	dramaID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Drama
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if input.ID != dramaID {
		respond.Error(writer, request, apperr.BadRequest("Route id does not match drama_id"))
		return
	}

	if err := input.Validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Outcome(writer, request, handler.service.Update(request.Context(), input), "")
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	dramaID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Outcome(writer, request, handler.service.Delete(request.Context(), dramaID), "")
}
