// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/opinion/internal/platform/apperr"
	"github.com/taibuivan/opinion/internal/platform/constants"
	"github.com/taibuivan/opinion/internal/platform/ctxutil"
	"github.com/taibuivan/opinion/internal/platform/middleware"
	"github.com/taibuivan/opinion/internal/users/auth"
)

const defaultLanding = "/OpinionPage/Index"

func (pages *Pages) accountRoutes(router chi.Router) {
	router.Get("/Login", pages.loginForm)
	router.Post("/Login", pages.login)
	router.Post("/Logout", pages.logout)
}

// loginModel is the model of the sign-in page.
type loginModel struct {
	Login     string
	ReturnURL string
}

func (pages *Pages) loginForm(writer http.ResponseWriter, request *http.Request) {
	pages.render(writer, request, "login", http.StatusOK, view{
		Title: "Sign in",
		Data:  loginModel{ReturnURL: localPath(request.URL.Query().Get("returnUrl"), defaultLanding)},
	})
}

func (pages *Pages) login(writer http.ResponseWriter, request *http.Request) {
	model := loginModel{
		Login:     request.PostFormValue("login"),
		ReturnURL: localPath(request.PostFormValue("returnUrl"), defaultLanding),
	}

	session, err := pages.services.Accounts.Login(request.Context(), auth.LoginInput{
		Login:     model.Login,
		Password:  request.PostFormValue("password"),
		UserAgent: request.UserAgent(),
		IPAddress: middleware.RealIP(request),
	})
	if err != nil {
		status := http.StatusInternalServerError
		message := "Sign in failed."
		if appError := apperr.As(err); appError != nil && appError.HTTPStatus < 500 {
			status = appError.HTTPStatus
			message = appError.Message
		}
		pages.render(writer, request, "login", status, view{Title: "Sign in", Messages: []string{message}, Data: model})
		return
	}

	auth.SetSessionCookies(writer, session, pages.secureCookies)
	http.Redirect(writer, request, model.ReturnURL, http.StatusSeeOther)
}

func (pages *Pages) logout(writer http.ResponseWriter, request *http.Request) {
	if cookie, err := request.Cookie(constants.RefreshTokenCookieName); err == nil && cookie.Value != "" {
		if err := pages.services.Accounts.Logout(request.Context(), cookie.Value); err != nil {
			ctxutil.GetLogger(request.Context()).WarnContext(request.Context(), "page_logout_revoke_failed",
				slog.Any("error", err))
		}
	}

	auth.ClearSessionCookies(writer, pages.secureCookies)
	http.Redirect(writer, request, defaultLanding, http.StatusSeeOther)
}
