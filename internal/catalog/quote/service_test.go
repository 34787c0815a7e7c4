// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package quote_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/opinion/internal/catalog/quote"
	"github.com/taibuivan/opinion/internal/platform/ctxutil"
	"github.com/taibuivan/opinion/internal/platform/dberr"
	"github.com/taibuivan/opinion/internal/platform/outcome"
	"github.com/taibuivan/opinion/internal/platform/sec"
	"github.com/taibuivan/opinion/internal/social/comment"
)

// # Fakes

type memoryRepository struct {
	dramas map[int]string
	quotes map[int]quote.Quote
	nextID int
	stale  bool
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		dramas: map[int]string{1: "Signal", 2: "Kingdom"},
		quotes: map[int]quote.Quote{},
		nextID: 1,
	}
}

func (repository *memoryRepository) hydrate(q quote.Quote) *quote.Quote {
	q.DramaTitle = repository.dramas[q.DramaID]
	return &q
}

func (repository *memoryRepository) List(context.Context) ([]*quote.Quote, error) {
	out := make([]*quote.Quote, 0)
	for id := 1; id < repository.nextID; id++ {
		if q, ok := repository.quotes[id]; ok {
			out = append(out, repository.hydrate(q))
		}
	}
	return out, nil
}

func (repository *memoryRepository) ListByDrama(ctx context.Context, dramaID int) ([]*quote.Quote, error) {
	all, _ := repository.List(ctx)
	out := make([]*quote.Quote, 0)
	for _, q := range all {
		if q.DramaID == dramaID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (repository *memoryRepository) Find(_ context.Context, id int) (*quote.Quote, error) {
	q, ok := repository.quotes[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return repository.hydrate(q), nil
}

func (repository *memoryRepository) Create(_ context.Context, q *quote.Quote) error {
	q.ID = repository.nextID
	repository.nextID++
	q.DramaTitle = repository.dramas[q.DramaID]
	repository.quotes[q.ID] = *q
	return nil
}

func (repository *memoryRepository) Update(_ context.Context, q *quote.Quote) error {
	if repository.stale {
		return dberr.ErrStaleVersion
	}
	repository.quotes[q.ID] = *q
	return nil
}

func (repository *memoryRepository) Delete(_ context.Context, id int) error {
	delete(repository.quotes, id)
	return nil
}

func (repository *memoryRepository) DramaExists(_ context.Context, dramaID int) (bool, error) {
	_, ok := repository.dramas[dramaID]
	return ok, nil
}

type stubComments struct {
	views []comment.View
	err   error
}

func (stub stubComments) Thread(context.Context, int) ([]comment.View, error) {
	return stub.views, stub.err
}

func newService(repository quote.Repository, comments quote.CommentReader) *quote.Service {
	return quote.NewService(repository, comments, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func signalLine() quote.Quote {
	return quote.Quote{Content: "Are you there?", Actor: "Lee Je-hoon", Episode: 1, DramaID: 1}
}

// # Tests

/*
TestService_AddMissingDrama writes nothing.
*/
func TestService_AddMissingDrama(t *testing.T) {
	repository := newMemoryRepository()
	service := newService(repository, stubComments{})

	input := signalLine()
	input.DramaID = 9
	result := service.Add(context.Background(), input)

	assert.Equal(t, outcome.StatusNotFound, result.Status)
	assert.Equal(t, []string{"Drama with ID 9 not found."}, result.Messages)
	assert.Empty(t, repository.quotes)
}

/*
TestService_FindIncludesTitleAndComments resolves joins at the service boundary.
*/
func TestService_FindIncludesTitleAndComments(t *testing.T) {
	views := []comment.View{{CommentID: 3, CommentText: "Chills", UserName: "Anonymous", QuoteID: 1}}
	service := newService(newMemoryRepository(), stubComments{views: views})

	created := service.Add(context.Background(), signalLine())
	require.Equal(t, outcome.StatusCreated, created.Status)
	assert.Equal(t, "Signal", created.Value().DramaTitle)

	found := service.Find(context.Background(), *created.CreatedID)
	require.Equal(t, outcome.StatusFound, found.Status)
	assert.Equal(t, "Signal", found.Value().DramaTitle)
	assert.Equal(t, views, found.Value().Comments)

	broken := newService(newMemoryRepository(), stubComments{err: errors.New("timeout")})
	broken.Add(context.Background(), signalLine())
	assert.Equal(t, outcome.StatusError, broken.Find(context.Background(), 1).Status)
}

/*
TestService_Update checks the quote first, then the target drama.
*/
func TestService_Update(t *testing.T) {
	repository := newMemoryRepository()
	service := newService(repository, stubComments{})
	id := *service.Add(context.Background(), signalLine()).CreatedID

	missingBoth := quote.Quote{ID: 50, Content: "x", Actor: "y", Episode: 1, DramaID: 9}
	assert.Equal(t, []string{"Quote with ID 50 not found."}, service.Update(context.Background(), missingBoth).Messages)

	moveToMissing := signalLine()
	moveToMissing.ID = id
	moveToMissing.DramaID = 9
	assert.Equal(t, []string{"Drama with ID 9 not found."}, service.Update(context.Background(), moveToMissing).Messages)
	assert.Equal(t, 1, repository.quotes[id].DramaID)

	move := signalLine()
	move.ID = id
	move.DramaID = 2
	moved := service.Update(context.Background(), move)
	require.Equal(t, outcome.StatusUpdated, moved.Status)
	assert.Equal(t, "Kingdom", moved.Value().DramaTitle)

	repository.stale = true
	assert.Equal(t, "An error occurred updating the record", service.Update(context.Background(), move).Message())
}

/*
TestService_ListForDrama distinguishes Success from NotFound.
*/
func TestService_ListForDrama(t *testing.T) {
	service := newService(newMemoryRepository(), stubComments{})
	service.Add(context.Background(), signalLine())

	hit := service.ListForDrama(context.Background(), 1)
	assert.Equal(t, outcome.StatusSuccess, hit.Status)
	assert.Len(t, hit.Value(), 1)

	miss := service.ListForDrama(context.Background(), 2)
	assert.Equal(t, outcome.StatusNotFound, miss.Status)
	assert.Equal(t, []string{"No quotes found for the specified drama ID."}, miss.Messages)
}

/*
TestHandler_Routes covers the public reads and the admin gate.
*/
func TestHandler_Routes(t *testing.T) {
	repository := newMemoryRepository()
	service := newService(repository, stubComments{})
	service.Add(context.Background(), signalLine())

	tests := []struct {
		name   string
		role   sec.UserRole
		method string
		path   string
		body   string
		code   int
	}{
		{"list", "", http.MethodGet, "/api/Quote/QuoteList", "", http.StatusOK},
		{"find", "", http.MethodGet, "/api/Quote/FindQuote/1", "", http.StatusOK},
		{"for_drama_empty", "", http.MethodGet, "/api/Quote/ListForQuotes/2", "", http.StatusNotFound},
		{"add_member", sec.RoleMember, http.MethodPost, "/api/Quote/AddQuote", `{"content":"a","actor":"b","episode":1,"drama_id":1}`, http.StatusForbidden},
		{"add_missing_drama", sec.RoleAdmin, http.MethodPost, "/api/Quote/AddQuote", `{"content":"a","actor":"b","episode":1,"drama_id":9}`, http.StatusNotFound},
		{"add_bad_episode", sec.RoleAdmin, http.MethodPost, "/api/Quote/AddQuote", `{"content":"a","actor":"b","episode":0,"drama_id":1}`, http.StatusBadRequest},
		{"add", sec.RoleAdmin, http.MethodPost, "/api/Quote/AddQuote", `{"content":"a","actor":"b","episode":1,"drama_id":1}`, http.StatusCreated},
		{"update_mismatch", sec.RoleAdmin, http.MethodPut, "/api/Quote/UpdateQuote/1", `{"quote_id":2,"content":"a","actor":"b","episode":1,"drama_id":1}`, http.StatusBadRequest},
		{"delete_missing", sec.RoleAdmin, http.MethodDelete, "/api/Quote/DeleteQuote/77", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := chi.NewRouter()
			router.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
					if tt.role != "" {
						request = request.WithContext(ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: "u-1", Role: string(tt.role)}))
					}
					next.ServeHTTP(writer, request)
				})
			})
			router.Mount("/api/Quote", quote.NewHandler(service).Routes())

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))

			assert.Equal(t, tt.code, recorder.Code, recorder.Body.String())
		})
	}
}
