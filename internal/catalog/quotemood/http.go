// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package quotemood

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

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

// Routes returns the tagging endpoints, mounted at /api/QuoteMood.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/ListQuotesOnMood/{moodtype}", handler.quotesForMood)
	router.Get("/ListMoodsForQuote/{quoteId}", handler.moodsForQuote)

	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Post("/AddTag", handler.tag)
		adminRoute.Delete("/RemoveTag/{quoteId}/{moodId}", handler.untag)
	})

	return router
}

/*
GET /api/QuoteMood/ListQuotesOnMood/{moodtype}.

Response:
  - 200: Result[[]QuoteOnMood] with status Success
  - 404: No quote carries this exact label
*/
func (handler *Handler) quotesForMood(writer http.ResponseWriter, request *http.Request) {
	label := requestutil.Param(request, "moodtype")
	respond.Outcome(writer, request, handler.service.QuotesForMood(request.Context(), label), "")
}

func (handler *Handler) moodsForQuote(writer http.ResponseWriter, request *http.Request) {
	quoteID, err := requestutil.IntID(request, "quoteId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Outcome(writer, request, handler.service.MoodsForQuote(request.Context(), quoteID), "")
}

func (handler *Handler) tag(writer http.ResponseWriter, request *http.Request) {
	var input Tag
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if err := input.Validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result := handler.service.Tag(request.Context(), input)
	respond.Outcome(writer, request, result, fmt.Sprintf("/api/QuoteMood/ListMoodsForQuote/%d", input.QuoteID))
}

func (handler *Handler) untag(writer http.ResponseWriter, request *http.Request) {
	quoteID, err := requestutil.IntID(request, "quoteId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	moodID, err := requestutil.IntID(request, "moodId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Outcome(writer, request, handler.service.Untag(request.Context(), Tag{QuoteID: quoteID, MoodID: moodID}), "")
}
