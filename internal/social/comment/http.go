// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/opinion/internal/platform/middleware"
	requestutil "github.com/taibuivan/opinion/internal/platform/request"
	"github.com/taibuivan/opinion/internal/platform/respond"
	"github.com/taibuivan/opinion/pkg/pointer"
)

// Handler implements the /api/Comments endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the comment endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/GetCommentsForQuote/{quoteId}", handler.listForQuote)
	router.Get("/GetComment/{commentId}", handler.get)

	// Any signed-in user; ownership is checked by the service
	router.Group(func(authRoute chi.Router) {
		authRoute.Use(middleware.RequireAuth)

		authRoute.Post("/AddComment", handler.add)
		authRoute.Put("/UpdateComment/{commentId}", handler.update)
		authRoute.Delete("/DeleteComment/{commentId}", handler.delete)
	})

	return router
}

// Location returns the API path of a single comment.
func Location(id int) string {
	return fmt.Sprintf("/api/Comments/GetComment/%d", id)
}

func (handler *Handler) listForQuote(writer http.ResponseWriter, request *http.Request) {
	quoteID, err := requestutil.IntID(request, "quoteId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Outcome(writer, request, handler.service.ListByQuote(request.Context(), quoteID), "")
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	commentID, err := requestutil.IntID(request, "commentId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Outcome(writer, request, handler.service.Get(request.Context(), commentID), "")
}

/*
POST /api/Comments/AddComment.

Request:
  - Body: {"quote_id": 1, "commentText": "..."}

Response:
  - 201: Result[Thread], the quote with every comment newest first
  - 401: No token
  - 404: Quote not found
*/
func (handler *Handler) add(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input AddInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if err := input.Validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result := handler.service.Add(request.Context(), input.CommentText, input.QuoteID, pointer.To(claims.UserID))

	location := ""
	if result.CreatedID != nil {
		location = Location(*result.CreatedID)
	}
	respond.Outcome(writer, request, result, location)
}

/*
PUT /api/Comments/UpdateComment/{commentId}.

Request:
  - Body: the new text as a JSON string, e.g. "Still the best line."

Response:
  - 200: Updated
  - 403: Caller is neither the author nor an admin
  - 404: Comment not found
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	commentID, err := requestutil.IntID(request, "commentId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var text string
	if err := requestutil.DecodeJSON(request, &text); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if err := ValidateText(text); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Outcome(writer, request, handler.service.Update(request.Context(), commentID, text, claims.UserID), "")
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	commentID, err := requestutil.IntID(request, "commentId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Outcome(writer, request, handler.service.Delete(request.Context(), commentID, claims.UserID), "")
}
