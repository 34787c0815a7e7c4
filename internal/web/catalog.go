// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package web

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/opinion/internal/catalog/drama"
	"github.com/taibuivan/opinion/internal/catalog/mood"
	"github.com/taibuivan/opinion/internal/catalog/quote"
	requestutil "github.com/taibuivan/opinion/internal/platform/request"
	"github.com/taibuivan/opinion/pkg/convert"
	"github.com/taibuivan/opinion/pkg/slice"
)

// form is the model of every create/edit page.
type form[T any] struct {
	Action  string
	Item    T
	Options []option
}

// option is one entry of a select list.
type option struct {
	Value    int
	Label    string
	Selected bool
}

// pageID reads the {id} route parameter, rendering a 400 when it is malformed.
func (pages *Pages) pageID(writer http.ResponseWriter, request *http.Request) (int, bool) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		pages.errorView(writer, request, http.StatusBadRequest, "The requested id is not a number.")
		return 0, false
	}
	return id, true
}

// # Drama

func (pages *Pages) dramaRoutes(router chi.Router) {
	router.Get("/List", pages.dramaList)

	router.Group(func(router chi.Router) {
		router.Use(pages.requireAdmin)
		router.Get("/Create", pages.dramaCreate)
		router.Post("/Add", pages.dramaAdd)
		router.Get("/Edit/{id}", pages.dramaEdit)
		router.Post("/Update", pages.dramaUpdate)
		router.Get("/DeleteConfirmation/{id}", pages.dramaDeleteConfirmation)
		router.Post("/Delete/{id}", pages.dramaDelete)
	})
}

func dramaFromForm(request *http.Request) drama.Drama {
	return drama.Drama{
		ID:          convert.ToInt(request.PostFormValue(drama.FieldID)),
		Title:       request.PostFormValue(drama.FieldTitle),
		ReleaseYear: convert.ToInt(request.PostFormValue(drama.FieldReleaseYear)),
		Genre:       convert.ToOptionalString(request.PostFormValue(drama.FieldGenre)),
		Synopsis:    convert.ToOptionalString(request.PostFormValue(drama.FieldSynopsis)),
	}
}

func (pages *Pages) dramaList(writer http.ResponseWriter, request *http.Request) {
	result := pages.services.Dramas.List(request.Context())
	if !result.Succeeded() {
		fail(pages, writer, request, result)
		return
	}
	pages.render(writer, request, "drama_list", http.StatusOK, view{Title: "Dramas", Data: result.Value()})
}

func (pages *Pages) dramaCreate(writer http.ResponseWriter, request *http.Request) {
	pages.render(writer, request, "drama_form", http.StatusOK, view{
		Title: "Add Drama",
		Data:  form[drama.Drama]{Action: "/DramaPage/Add"},
	})
}

func (pages *Pages) dramaAdd(writer http.ResponseWriter, request *http.Request) {
	input := dramaFromForm(request)
	if err := input.Validate(); err != nil {
		pages.render(writer, request, "drama_form", http.StatusBadRequest, view{
			Title:  "Add Drama",
			Errors: fieldErrors(err),
			Data:   form[drama.Drama]{Action: "/DramaPage/Add", Item: input},
		})
		return
	}
	finish(pages, writer, request, pages.services.Dramas.Add(request.Context(), input), "/DramaPage/List")
}

func (pages *Pages) dramaEdit(writer http.ResponseWriter, request *http.Request) {
	id, ok := pages.pageID(writer, request)
	if !ok {
		return
	}
	result := pages.services.Dramas.Find(request.Context(), id)
	if !result.Succeeded() {
		fail(pages, writer, request, result)
		return
	}
	pages.render(writer, request, "drama_form", http.StatusOK, view{
		Title: "Edit Drama",
		Data:  form[drama.Drama]{Action: "/DramaPage/Update", Item: result.Value()},
	})
}

func (pages *Pages) dramaUpdate(writer http.ResponseWriter, request *http.Request) {
	input := dramaFromForm(request)
	if err := input.Validate(); err != nil {
		pages.render(writer, request, "drama_form", http.StatusBadRequest, view{
			Title:  "Edit Drama",
			Errors: fieldErrors(err),
			Data:   form[drama.Drama]{Action: "/DramaPage/Update", Item: input},
		})
		return
	}
	finish(pages, writer, request, pages.services.Dramas.Update(request.Context(), input), "/DramaPage/List")
}

func (pages *Pages) dramaDeleteConfirmation(writer http.ResponseWriter, request *http.Request) {
	id, ok := pages.pageID(writer, request)
	if !ok {
		return
	}
	result := pages.services.Dramas.Find(request.Context(), id)
	if !result.Succeeded() {
		fail(pages, writer, request, result)
		return
	}
	pages.render(writer, request, "drama_delete", http.StatusOK, view{Title: "Delete Drama", Data: result.Value()})
}

func (pages *Pages) dramaDelete(writer http.ResponseWriter, request *http.Request) {
	id, ok := pages.pageID(writer, request)
	if !ok {
		return
	}
	finish(pages, writer, request, pages.services.Dramas.Delete(request.Context(), id), "/DramaPage/List")
}

// # Mood

func (pages *Pages) moodRoutes(router chi.Router) {
	router.Get("/List", pages.moodList)

	router.Group(func(router chi.Router) {
		router.Use(pages.requireAdmin)
		router.Get("/Create", pages.moodCreate)
		router.Post("/Add", pages.moodAdd)
		router.Get("/Edit/{id}", pages.moodEdit)
		router.Post("/Update", pages.moodUpdate)
		router.Get("/DeleteConfirmation/{id}", pages.moodDeleteConfirmation)
		router.Post("/Delete/{id}", pages.moodDelete)
	})
}

func moodFromForm(request *http.Request) mood.Mood {
	return mood.Mood{
		ID:   convert.ToInt(request.PostFormValue(mood.FieldID)),
		Type: request.PostFormValue(mood.FieldType),
	}
}

func (pages *Pages) moodList(writer http.ResponseWriter, request *http.Request) {
	result := pages.services.Moods.List(request.Context())
	if !result.Succeeded() {
		fail(pages, writer, request, result)
		return
	}
	pages.render(writer, request, "mood_list", http.StatusOK, view{Title: "Moods", Data: result.Value()})
}

func (pages *Pages) moodCreate(writer http.ResponseWriter, request *http.Request) {
	pages.render(writer, request, "mood_form", http.StatusOK, view{
		Title: "Add Mood",
		Data:  form[mood.Mood]{Action: "/MoodPage/Add"},
	})
}

func (pages *Pages) moodAdd(writer http.ResponseWriter, request *http.Request) {
	input := moodFromForm(request)
	if err := input.Validate(); err != nil {
		pages.render(writer, request, "mood_form", http.StatusBadRequest, view{
			Title:  "Add Mood",
			Errors: fieldErrors(err),
			Data:   form[mood.Mood]{Action: "/MoodPage/Add", Item: input},
		})
		return
	}
	finish(pages, writer, request, pages.services.Moods.Add(request.Context(), input), "/MoodPage/List")
}

func (pages *Pages) moodEdit(writer http.ResponseWriter, request *http.Request) {
	id, ok := pages.pageID(writer, request)
	if !ok {
		return
	}
	result := pages.services.Moods.Find(request.Context(), id)
	if !result.Succeeded() {
		fail(pages, writer, request, result)
		return
	}
	pages.render(writer, request, "mood_form", http.StatusOK, view{
		Title: "Edit Mood",
		Data:  form[mood.Mood]{Action: "/MoodPage/Update", Item: result.Value()},
	})
}

func (pages *Pages) moodUpdate(writer http.ResponseWriter, request *http.Request) {
	input := moodFromForm(request)
	if err := input.Validate(); err != nil {
		pages.render(writer, request, "mood_form", http.StatusBadRequest, view{
			Title:  "Edit Mood",
			Errors: fieldErrors(err),
			Data:   form[mood.Mood]{Action: "/MoodPage/Update", Item: input},
		})
		return
	}
	finish(pages, writer, request, pages.services.Moods.Update(request.Context(), input), "/MoodPage/List")
}

func (pages *Pages) moodDeleteConfirmation(writer http.ResponseWriter, request *http.Request) {
	id, ok := pages.pageID(writer, request)
	if !ok {
		return
	}
	result := pages.services.Moods.Find(request.Context(), id)
	if !result.Succeeded() {
		fail(pages, writer, request, result)
		return
	}
	pages.render(writer, request, "mood_delete", http.StatusOK, view{Title: "Delete Mood", Data: result.Value()})
}

func (pages *Pages) moodDelete(writer http.ResponseWriter, request *http.Request) {
	id, ok := pages.pageID(writer, request)
	if !ok {
		return
	}
	finish(pages, writer, request, pages.services.Moods.Delete(request.Context(), id), "/MoodPage/List")
}

// # Quote

func (pages *Pages) quoteRoutes(router chi.Router) {
	router.Get("/List", pages.quoteList)
	router.Get("/Details/{id}", pages.quoteDetails)

	router.Group(func(router chi.Router) {
		router.Use(pages.requireAdmin)
		router.Get("/Create", pages.quoteCreate)
		router.Post("/Add", pages.quoteAdd)
		router.Get("/Edit/{id}", pages.quoteEdit)
		router.Post("/Update", pages.quoteUpdate)
		router.Get("/DeleteConfirmation/{id}", pages.quoteDeleteConfirmation)
		router.Post("/Delete/{id}", pages.quoteDelete)
	})
}

func quoteFromForm(request *http.Request) quote.Quote {
	return quote.Quote{
		ID:      convert.ToInt(request.PostFormValue(quote.FieldID)),
		Content: request.PostFormValue(quote.FieldContent),
		Actor:   request.PostFormValue(quote.FieldActor),
		Episode: convert.ToInt(request.PostFormValue(quote.FieldEpisode)),
		DramaID: convert.ToInt(request.PostFormValue(quote.FieldDramaID)),
	}
}

// quoteForm builds the form model with the drama picker.
func (pages *Pages) quoteForm(request *http.Request, action string, item quote.Quote) form[quote.Quote] {
	dramas := pages.services.Dramas.List(request.Context()).Value()
	return form[quote.Quote]{
		Action: action,
		Item:   item,
		Options: slice.Map(dramas, func(d drama.Drama) option {
			return option{
				Value:    d.ID,
				Label:    fmt.Sprintf("%s (%d)", d.Title, d.ReleaseYear),
				Selected: d.ID == item.DramaID,
			}
		}),
	}
}

func (pages *Pages) quoteList(writer http.ResponseWriter, request *http.Request) {
	result := pages.services.Quotes.List(request.Context())
	if !result.Succeeded() {
		fail(pages, writer, request, result)
		return
	}
	pages.render(writer, request, "quote_list", http.StatusOK, view{Title: "Quotes", Data: result.Value()})
}

func (pages *Pages) quoteDetails(writer http.ResponseWriter, request *http.Request) {
	id, ok := pages.pageID(writer, request)
	if !ok {
		return
	}
	result := pages.services.Quotes.Find(request.Context(), id)
	if !result.Succeeded() {
		fail(pages, writer, request, result)
		return
	}
	pages.render(writer, request, "quote_details", http.StatusOK, view{Title: "Quote", Data: result.Value()})
}

func (pages *Pages) quoteCreate(writer http.ResponseWriter, request *http.Request) {
	pages.render(writer, request, "quote_form", http.StatusOK, view{
		Title: "Add Quote",
		Data:  pages.quoteForm(request, "/QuotePage/Add", quote.Quote{}),
	})
}

func (pages *Pages) quoteAdd(writer http.ResponseWriter, request *http.Request) {
	input := quoteFromForm(request)
	if err := input.Validate(); err != nil {
		pages.render(writer, request, "quote_form", http.StatusBadRequest, view{
			Title:  "Add Quote",
			Errors: fieldErrors(err),
			Data:   pages.quoteForm(request, "/QuotePage/Add", input),
		})
		return
	}
	finish(pages, writer, request, pages.services.Quotes.Add(request.Context(), input), "/QuotePage/List")
}

func (pages *Pages) quoteEdit(writer http.ResponseWriter, request *http.Request) {
	id, ok := pages.pageID(writer, request)
	if !ok {
		return
	}
	result := pages.services.Quotes.Find(request.Context(), id)
	if !result.Succeeded() {
		fail(pages, writer, request, result)
		return
	}
	pages.render(writer, request, "quote_form", http.StatusOK, view{
		Title: "Edit Quote",
		Data:  pages.quoteForm(request, "/QuotePage/Update", result.Value()),
	})
}

func (pages *Pages) quoteUpdate(writer http.ResponseWriter, request *http.Request) {
	input := quoteFromForm(request)
	if err := input.Validate(); err != nil {
		pages.render(writer, request, "quote_form", http.StatusBadRequest, view{
			Title:  "Edit Quote",
			Errors: fieldErrors(err),
			Data:   pages.quoteForm(request, "/QuotePage/Update", input),
		})
		return
	}
	finish(pages, writer, request, pages.services.Quotes.Update(request.Context(), input), "/QuotePage/List")
}

func (pages *Pages) quoteDeleteConfirmation(writer http.ResponseWriter, request *http.Request) {
	id, ok := pages.pageID(writer, request)
	if !ok {
		return
	}
	result := pages.services.Quotes.Find(request.Context(), id)
	if !result.Succeeded() {
		fail(pages, writer, request, result)
		return
	}
	pages.render(writer, request, "quote_delete", http.StatusOK, view{Title: "Delete Quote", Data: result.Value()})
}

func (pages *Pages) quoteDelete(writer http.ResponseWriter, request *http.Request) {
	id, ok := pages.pageID(writer, request)
	if !ok {
		return
	}
	finish(pages, writer, request, pages.services.Quotes.Delete(request.Context(), id), "/QuotePage/List")
}
