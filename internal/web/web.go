// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package web serves the server-rendered pages.

Every page calls the same services as the JSON API. Writes redirect on
success; on failure the error view shows the envelope messages with the
status code the API would have returned. Pages read the caller from the
access-token cookie that middleware.Authenticate already resolved.
*/
package web

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/opinion/internal/catalog/drama"
	"github.com/taibuivan/opinion/internal/catalog/mood"
	"github.com/taibuivan/opinion/internal/catalog/quote"
	"github.com/taibuivan/opinion/internal/platform/apperr"
	"github.com/taibuivan/opinion/internal/platform/ctxutil"
	"github.com/taibuivan/opinion/internal/platform/outcome"
	"github.com/taibuivan/opinion/internal/social/comment"
	"github.com/taibuivan/opinion/internal/users/auth"
	"github.com/taibuivan/opinion/pkg/pointer"
)

//go:embed templates/*.html
var templateFS embed.FS

// Services are the domain services the pages delegate to.
type Services struct {
	Dramas   *drama.Service
	Moods    *mood.Service
	Quotes   *quote.Service
	Comments *comment.Service
	Accounts *auth.Service
}

// Pages implements every HTML route.
type Pages struct {
	services      Services
	templates     *template.Template
	secureCookies bool
}

// New parses the embedded templates.
func New(services Services, secureCookies bool) (*Pages, error) {
	templates, err := template.New("").Funcs(template.FuncMap{
		"deref": pointer.Val[string],
		"join":  strings.Join,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Pages{services: services, templates: templates, secureCookies: secureCookies}, nil
}

// Routes registers all page routes on router.
func (pages *Pages) Routes(router chi.Router) {
	router.Get("/", func(writer http.ResponseWriter, request *http.Request) {
		http.Redirect(writer, request, "/OpinionPage/Index", http.StatusFound)
	})

	router.Route("/DramaPage", pages.dramaRoutes)
	router.Route("/MoodPage", pages.moodRoutes)
	router.Route("/QuotePage", pages.quoteRoutes)
	router.Route("/OpinionPage", pages.opinionRoutes)
	router.Route("/Account", pages.accountRoutes)
}

// # Rendering

// view is the model every template receives.
type view struct {
	Title    string
	UserName string
	SignedIn bool
	IsAdmin  bool
	Status   int
	Messages []string
	Errors   map[string]string
	Data     any
}

func (pages *Pages) render(writer http.ResponseWriter, request *http.Request, name string, status int, v view) {
	if claims := ctxutil.GetAuthUser(request.Context()); claims != nil {
		v.SignedIn = true
		v.UserName = claims.Username
		v.IsAdmin = ctxutil.IsAdmin(request.Context())
	}
	v.Status = status

	var buffer bytes.Buffer
	if err := pages.templates.ExecuteTemplate(&buffer, name, v); err != nil {
		ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "page_render_failed",
			slog.String("template", name), slog.Any("error", err))
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.WriteHeader(status)
	_, _ = buffer.WriteTo(writer)
}

// errorView shows messages with the given status.
func (pages *Pages) errorView(writer http.ResponseWriter, request *http.Request, status int, messages ...string) {
	pages.render(writer, request, "error", status, view{Title: http.StatusText(status), Messages: messages})
}

// fail renders the error view for a failed envelope.
func fail[T any](pages *Pages, writer http.ResponseWriter, request *http.Request, result outcome.Result[T]) {
	pages.errorView(writer, request, result.HTTPStatus(), result.Messages...)
}

// finish redirects to next when result succeeded and renders the error view otherwise.
func finish[T any](pages *Pages, writer http.ResponseWriter, request *http.Request, result outcome.Result[T], next string) {
	if !result.Succeeded() {
		fail(pages, writer, request, result)
		return
	}
	http.Redirect(writer, request, next, http.StatusSeeOther)
}

// fieldErrors flattens a validation error for a form.
func fieldErrors(err error) map[string]string {
	out := map[string]string{}
	if appError := apperr.As(err); appError != nil {
		for _, detail := range appError.Details {
			out[detail.Field] = detail.Message
		}
	}
	return out
}

// # Gates

// requireLogin sends anonymous visitors to the login page.
func (pages *Pages) requireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetAuthUser(request.Context()) == nil {
			target := "/Account/Login?returnUrl=" + url.QueryEscape(request.URL.RequestURI())
			http.Redirect(writer, request, target, http.StatusFound)
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// requireAdmin additionally rejects signed-in non-admins with 403.
func (pages *Pages) requireAdmin(next http.Handler) http.Handler {
	return pages.requireLogin(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if !ctxutil.IsAdmin(request.Context()) {
			pages.errorView(writer, request, http.StatusForbidden, "You do not have permission to view this page.")
			return
		}
		next.ServeHTTP(writer, request)
	}))
}

// localPath keeps redirects on this site.
func localPath(target, fallback string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return fallback
	}
	return target
}
