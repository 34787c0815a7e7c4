// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package quote

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

// Routes returns the quote endpoints, mounted at /api/Quote.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/QuoteList", handler.list)
	router.Get("/FindQuote/{id}", handler.find)
	router.Get("/ListForQuotes/{id}", handler.listForDrama)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Post("/AddQuote", handler.add)
		adminRoute.Put("/UpdateQuote/{id}", handler.update)
		adminRoute.Delete("/DeleteQuote/{id}", handler.delete)
	})

	return router
}

func Location(id int) string {
	return fmt.Sprintf("/api/Quote/FindQuote/%d", id)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	respond.Outcome(writer, request, handler.service.List(request.Context()), "")
}

/*
GET /api/Quote/FindQuote/{id}.

Response:
  - 200: Result[Quote] including drama_title and comments
  - 404: No such quote
*/
func (handler *Handler) find(writer http.ResponseWriter, request *http.Request) {
	quoteID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Outcome(writer, request, handler.service.Find(request.Context(), quoteID), "")
}

/*
GET /api/Quote/ListForQuotes/{id}.

{id} is a drama id.

Response:
  - 200: Result[[]Quote] with status Success
  - 404: The drama has no quotes
*/
func (handler *Handler) listForDrama(writer http.ResponseWriter, request *http.Request) {
	dramaID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Outcome(writer, request, handler.service.ListForDrama(request.Context(), dramaID), "")
}

func (handler *Handler) add(writer http.ResponseWriter, request *http.Request) {
	var input Quote
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
	quoteID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Quote
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if input.ID != quoteID {
		respond.Error(writer, request, apperr.BadRequest("Route id does not match quote_id"))
		return
	}
	if err := input.Validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Outcome(writer, request, handler.service.Update(request.Context(), input), "")
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	quoteID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Outcome(writer, request, handler.service.Delete(request.Context(), quoteID), "")
}
