// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/opinion/internal/catalog/quote"
	"github.com/taibuivan/opinion/internal/platform/ctxutil"
	"github.com/taibuivan/opinion/internal/social/comment"
	"github.com/taibuivan/opinion/pkg/convert"
	"github.com/taibuivan/opinion/pkg/pointer"
)

// opinionRoutes serves the comment pages. Edit and Update are admin-only;
// Delete is open to any signed-in user and the service decides who may.
func (pages *Pages) opinionRoutes(router chi.Router) {
	router.Get("/Index", pages.opinionIndex)

	router.Group(func(router chi.Router) {
		router.Use(pages.requireLogin)
		router.Get("/Create/{id}", pages.opinionCreate)
		router.Post("/Add", pages.opinionAdd)
		router.Get("/DeleteConfirmation/{id}", pages.opinionDeleteConfirmation)
		router.Post("/Delete/{id}", pages.opinionDelete)
	})

	router.Group(func(router chi.Router) {
		router.Use(pages.requireAdmin)
		router.Get("/Edit/{id}", pages.opinionEdit)
		router.Post("/Update", pages.opinionUpdate)
	})
}

// opinionForm is the model of the comment editor.
type opinionForm struct {
	Action    string
	QuoteID   int
	CommentID int
	Text      string
	Quote     *quote.Quote
}

func (pages *Pages) opinionIndex(writer http.ResponseWriter, request *http.Request) {
	result := pages.services.Quotes.List(request.Context())
	if !result.Succeeded() {
		fail(pages, writer, request, result)
		return
	}

	quotes := result.Value()
	for i := range quotes {
		comments := pages.services.Comments.ListByQuote(request.Context(), quotes[i].ID)
		if !comments.Succeeded() {
			fail(pages, writer, request, comments)
			return
		}
		quotes[i].Comments = comments.Value()
	}

	pages.render(writer, request, "opinion_index", http.StatusOK, view{Title: "Opinions", Data: quotes})
}

func (pages *Pages) opinionCreate(writer http.ResponseWriter, request *http.Request) {
	id, ok := pages.pageID(writer, request)
	if !ok {
		return
	}
	result := pages.services.Quotes.Find(request.Context(), id)
	if !result.Succeeded() {
		fail(pages, writer, request, result)
		return
	}

	target := result.Value()
	pages.render(writer, request, "opinion_form", http.StatusOK, view{
		Title: "Add Opinion",
		Data:  opinionForm{Action: "/OpinionPage/Add", QuoteID: target.ID, Quote: &target},
	})
}

func (pages *Pages) opinionAdd(writer http.ResponseWriter, request *http.Request) {
	input := comment.AddInput{
		QuoteID:     convert.ToInt(request.PostFormValue(comment.FieldQuoteID)),
		CommentText: request.PostFormValue(comment.FieldCommentText),
	}
	if err := input.Validate(); err != nil {
		pages.render(writer, request, "opinion_form", http.StatusBadRequest, view{
			Title:  "Add Opinion",
			Errors: fieldErrors(err),
			Data:   opinionForm{Action: "/OpinionPage/Add", QuoteID: input.QuoteID, Text: input.CommentText},
		})
		return
	}

	author := pointer.To(ctxutil.GetAuthUser(request.Context()).UserID)
	result := pages.services.Comments.Add(request.Context(), input.CommentText, input.QuoteID, author)
	finish(pages, writer, request, result, "/OpinionPage/Index")
}

func (pages *Pages) opinionEdit(writer http.ResponseWriter, request *http.Request) {
	id, ok := pages.pageID(writer, request)
	if !ok {
		return
	}
	result := pages.services.Comments.Get(request.Context(), id)
	if !result.Succeeded() {
		fail(pages, writer, request, result)
		return
	}

	current := result.Value()
	pages.render(writer, request, "opinion_form", http.StatusOK, view{
		Title: "Edit Opinion",
		Data: opinionForm{
			Action:    "/OpinionPage/Update",
			QuoteID:   current.QuoteID,
			CommentID: current.CommentID,
			Text:      current.CommentText,
		},
	})
}

func (pages *Pages) opinionUpdate(writer http.ResponseWriter, request *http.Request) {
	id := convert.ToInt(request.PostFormValue("commentId"))
	text := request.PostFormValue(comment.FieldCommentText)

	if err := comment.ValidateText(text); err != nil {
		pages.render(writer, request, "opinion_form", http.StatusBadRequest, view{
			Title:  "Edit Opinion",
			Errors: fieldErrors(err),
			Data: opinionForm{
				Action:    "/OpinionPage/Update",
				QuoteID:   convert.ToInt(request.PostFormValue(comment.FieldQuoteID)),
				CommentID: id,
				Text:      text,
			},
		})
		return
	}

	userID := ctxutil.GetAuthUser(request.Context()).UserID
	finish(pages, writer, request, pages.services.Comments.Update(request.Context(), id, text, userID), "/OpinionPage/Index")
}

func (pages *Pages) opinionDeleteConfirmation(writer http.ResponseWriter, request *http.Request) {
	id, ok := pages.pageID(writer, request)
	if !ok {
		return
	}
	result := pages.services.Comments.Get(request.Context(), id)
	if !result.Succeeded() {
		fail(pages, writer, request, result)
		return
	}
	pages.render(writer, request, "opinion_delete", http.StatusOK, view{Title: "Delete Opinion", Data: result.Value()})
}

func (pages *Pages) opinionDelete(writer http.ResponseWriter, request *http.Request) {
	id, ok := pages.pageID(writer, request)
	if !ok {
		return
	}
	userID := ctxutil.GetAuthUser(request.Context()).UserID
	finish(pages, writer, request, pages.services.Comments.Delete(request.Context(), id, userID), "/OpinionPage/Index")
}
