// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/opinion/internal/platform/ctxutil"
	"github.com/taibuivan/opinion/internal/platform/sec"
	"github.com/taibuivan/opinion/internal/social/comment"
	"github.com/taibuivan/opinion/pkg/pointer"
)

/*
TestHandler_Routes maps envelope statuses onto HTTP codes.
*/
func TestHandler_Routes(t *testing.T) {
	repository := newMemoryRepository()
	service := newService(repository, standardDirectory())
	service.Add(context.Background(), "Hello", 1, pointer.To(authorID))

	tests := []struct {
		name   string
		userID string
		method string
		path   string
		body   string
		code   int
	}{
		{"list_public", "", http.MethodGet, "/api/Comments/GetCommentsForQuote/1", "", http.StatusOK},
		{"get_missing", "", http.MethodGet, "/api/Comments/GetComment/9", "", http.StatusNotFound},
		{"add_anonymous", "", http.MethodPost, "/api/Comments/AddComment", `{"quote_id":1,"commentText":"Hi"}`, http.StatusUnauthorized},
		{"add_missing_quote", memberID, http.MethodPost, "/api/Comments/AddComment", `{"quote_id":7,"commentText":"Hi"}`, http.StatusNotFound},
		{"add", memberID, http.MethodPost, "/api/Comments/AddComment", `{"quote_id":1,"commentText":"Hi"}`, http.StatusCreated},
		{"update_not_owner", memberID, http.MethodPut, "/api/Comments/UpdateComment/1", `"Mine now"`, http.StatusForbidden},
		{"update_body_not_string", authorID, http.MethodPut, "/api/Comments/UpdateComment/1", `{"text":"x"}`, http.StatusBadRequest},
		{"update_owner", authorID, http.MethodPut, "/api/Comments/UpdateComment/1", `"Edited"`, http.StatusOK},
		{"delete_not_owner", memberID, http.MethodDelete, "/api/Comments/DeleteComment/1", "", http.StatusForbidden},
		{"delete_admin", adminID, http.MethodDelete, "/api/Comments/DeleteComment/1", "", http.StatusOK},
		{"delete_missing", adminID, http.MethodDelete, "/api/Comments/DeleteComment/1", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := chi.NewRouter()
			router.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
					if tt.userID != "" {
						request = request.WithContext(ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: tt.userID, Role: string(sec.RoleMember)}))
					}
					next.ServeHTTP(writer, request)
				})
			})
			router.Mount("/api/Comments", comment.NewHandler(service).Routes())

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))

			assert.Equal(t, tt.code, recorder.Code, recorder.Body.String())
			if tt.name == "add" {
				assert.Equal(t, "/api/Comments/GetComment/2", recorder.Header().Get("Location"))
				assert.Equal(t, pointer.To(memberID), service.Get(context.Background(), 2).Value().UserID)
			}
		})
	}
}
