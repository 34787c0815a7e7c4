// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package drama_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/opinion/internal/catalog/drama"
	"github.com/taibuivan/opinion/internal/platform/ctxutil"
	"github.com/taibuivan/opinion/internal/platform/sec"
)

// asRole injects claims the way middleware.Authenticate would.
func asRole(role sec.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if role != "" {
				request = request.WithContext(ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: "u-1", Role: string(role)}))
			}
			next.ServeHTTP(writer, request)
		})
	}
}

func newRouter(repository drama.Repository, role sec.UserRole) http.Handler {
	router := chi.NewRouter()
	router.Use(asRole(role))
	router.Mount("/api/Drama", drama.NewHandler(newService(repository)).Routes())
	return router
}

func serve(handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHandler_AddDrama returns 201 with a Location header and the envelope.
*/
func TestHandler_AddDrama(t *testing.T) {
	router := newRouter(newMemoryRepository(), sec.RoleAdmin)

	recorder := serve(router, http.MethodPost, "/api/Drama/AddDrama", `{"title":"Signal","release_year":2016}`)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "/api/Drama/FindDrama/1", recorder.Header().Get("Location"))

	var body struct {
		Status    string      `json:"status"`
		CreatedID int         `json:"createdId"`
		Data      drama.Drama `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Created", body.Status)
	assert.Equal(t, 1, body.CreatedID)
	assert.Equal(t, "Signal", body.Data.Title)
}

/*
TestHandler_StatusMapping walks the public and admin routes.
*/
func TestHandler_StatusMapping(t *testing.T) {
	repository := newMemoryRepository()
	_ = repository.Create(context.Background(), &drama.Drama{Title: "Signal", ReleaseYear: 2016})

	tests := []struct {
		name   string
		role   sec.UserRole
		method string
		path   string
		body   string
		code   int
	}{
		{"list_public", "", http.MethodGet, "/api/Drama/DramaList", "", http.StatusOK},
		{"find_hit", "", http.MethodGet, "/api/Drama/FindDrama/1", "", http.StatusOK},
		{"find_miss", "", http.MethodGet, "/api/Drama/FindDrama/99", "", http.StatusNotFound},
		{"find_bad_id", "", http.MethodGet, "/api/Drama/FindDrama/abc", "", http.StatusBadRequest},
		{"find_overflow_id", "", http.MethodGet, "/api/Drama/FindDrama/9999999999", "", http.StatusBadRequest},
		{"add_anonymous", "", http.MethodPost, "/api/Drama/AddDrama", `{"title":"Kingdom","release_year":2019}`, http.StatusUnauthorized},
		{"add_member", sec.RoleMember, http.MethodPost, "/api/Drama/AddDrama", `{"title":"Kingdom","release_year":2019}`, http.StatusForbidden},
		{"add_invalid", sec.RoleAdmin, http.MethodPost, "/api/Drama/AddDrama", `{"title":"","release_year":2019}`, http.StatusBadRequest},
		{"update_id_mismatch", sec.RoleAdmin, http.MethodPut, "/api/Drama/UpdateDrama/1", `{"drama_id":2,"title":"Signal","release_year":2016}`, http.StatusBadRequest},
		{"update_missing", sec.RoleAdmin, http.MethodPut, "/api/Drama/UpdateDrama/7", `{"drama_id":7,"title":"Signal","release_year":2016}`, http.StatusNotFound},
		{"update_ok", sec.RoleAdmin, http.MethodPut, "/api/Drama/UpdateDrama/1", `{"drama_id":1,"title":"Signal","release_year":2016}`, http.StatusOK},
		{"delete_missing", sec.RoleAdmin, http.MethodDelete, "/api/Drama/DeleteDrama/7", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(newRouter(repository, tt.role), tt.method, tt.path, tt.body)
			assert.Equal(t, tt.code, recorder.Code, recorder.Body.String())
		})
	}
}

/*
TestHandler_DeleteDrama returns 200 with status Deleted.
*/
func TestHandler_DeleteDrama(t *testing.T) {
	repository := newMemoryRepository()
	_ = repository.Create(context.Background(), &drama.Drama{Title: "Signal", ReleaseYear: 2016})

	recorder := serve(newRouter(repository, sec.RoleAdmin), http.MethodDelete, "/api/Drama/DeleteDrama/1", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"Deleted"`)
	assert.Empty(t, repository.rows)
}
