// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package quotemood_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/opinion/internal/catalog/quotemood"
	"github.com/taibuivan/opinion/internal/platform/ctxutil"
	"github.com/taibuivan/opinion/internal/platform/dberr"
	"github.com/taibuivan/opinion/internal/platform/outcome"
	"github.com/taibuivan/opinion/internal/platform/sec"
)

type quoteRow struct {
	content, actor, title string
}

// memoryRepository evaluates the join in Go with the same exact-match rule.
type memoryRepository struct {
	quotes map[int]quoteRow
	moods  map[int]string
	tags   map[quotemood.Tag]bool
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		quotes: map[int]quoteRow{
			1: {"Are you there?", "Lee Je-hoon", "Signal"},
			2: {"Hunger is the enemy.", "Ju Ji-hoon", "Kingdom"},
		},
		moods: map[int]string{1: "witty", 2: "chilling"},
		tags:  map[quotemood.Tag]bool{},
	}
}

func (repository *memoryRepository) QuotesForMood(_ context.Context, label string) ([]quotemood.QuoteOnMood, error) {
	out := make([]quotemood.QuoteOnMood, 0)
	for quoteID := 1; quoteID <= len(repository.quotes); quoteID++ {
		for moodID, moodType := range repository.moods {
			if moodType == label && repository.tags[quotemood.Tag{QuoteID: quoteID, MoodID: moodID}] {
				row := repository.quotes[quoteID]
				out = append(out, quotemood.QuoteOnMood{QuoteID: quoteID, Content: row.content, Actor: row.actor, Type: moodType, Title: row.title})
			}
		}
	}
	return out, nil
}

func (repository *memoryRepository) MoodsForQuote(_ context.Context, quoteID int) ([]quotemood.MoodTag, error) {
	if _, ok := repository.quotes[quoteID]; !ok {
		return nil, dberr.ErrNotFound
	}
	out := make([]quotemood.MoodTag, 0)
	for moodID := 1; moodID <= len(repository.moods); moodID++ {
		if repository.tags[quotemood.Tag{QuoteID: quoteID, MoodID: moodID}] {
			out = append(out, quotemood.MoodTag{MoodID: moodID, Type: repository.moods[moodID]})
		}
	}
	return out, nil
}

func (repository *memoryRepository) Tag(_ context.Context, tag quotemood.Tag) error {
	if _, ok := repository.quotes[tag.QuoteID]; !ok {
		return quotemood.ErrQuoteMissing
	}
	if _, ok := repository.moods[tag.MoodID]; !ok {
		return quotemood.ErrMoodMissing
	}
	if repository.tags[tag] {
		return quotemood.ErrDuplicateTag
	}
	repository.tags[tag] = true
	return nil
}

func (repository *memoryRepository) Untag(_ context.Context, tag quotemood.Tag) error {
	if !repository.tags[tag] {
		return dberr.ErrNotFound
	}
	delete(repository.tags, tag)
	return nil
}

func newService(repository quotemood.Repository) *quotemood.Service {
	return quotemood.NewService(repository, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestService_QuotesForMood matches the label exactly and case-sensitively.
*/
func TestService_QuotesForMood(t *testing.T) {
	service := newService(newMemoryRepository())
	ctx := context.Background()
	require.Equal(t, outcome.StatusCreated, service.Tag(ctx, quotemood.Tag{QuoteID: 1, MoodID: 1}).Status)
	require.Equal(t, outcome.StatusCreated, service.Tag(ctx, quotemood.Tag{QuoteID: 2, MoodID: 2}).Status)

	witty := service.QuotesForMood(ctx, "witty")
	require.Equal(t, outcome.StatusSuccess, witty.Status)
	assert.Equal(t, []quotemood.QuoteOnMood{{QuoteID: 1, Content: "Are you there?", Actor: "Lee Je-hoon", Type: "witty", Title: "Signal"}}, witty.Value())

	for _, label := range []string{"Witty", "WITTY", "wit", "romantic"} {
		result := service.QuotesForMood(ctx, label)
		assert.Equal(t, outcome.StatusNotFound, result.Status, label)
		assert.Equal(t, []string{"No quotes found for the specified mood."}, result.Messages)
	}
}

/*
TestService_Tagging covers missing sides, duplicates and removal.
*/
func TestService_Tagging(t *testing.T) {
	repository := newMemoryRepository()
	service := newService(repository)
	ctx := context.Background()

	assert.Equal(t, []string{"Quote not found."}, service.Tag(ctx, quotemood.Tag{QuoteID: 9, MoodID: 1}).Messages)
	assert.Equal(t, []string{"Mood not found."}, service.Tag(ctx, quotemood.Tag{QuoteID: 1, MoodID: 9}).Messages)
	assert.Empty(t, repository.tags)

	require.Equal(t, outcome.StatusCreated, service.Tag(ctx, quotemood.Tag{QuoteID: 1, MoodID: 2}).Status)

	duplicate := service.Tag(ctx, quotemood.Tag{QuoteID: 1, MoodID: 2})
	assert.Equal(t, outcome.StatusError, duplicate.Status)
	assert.Equal(t, "Quote is already tagged with this mood", duplicate.Message())

	moods := service.MoodsForQuote(ctx, 1)
	require.Equal(t, outcome.StatusFound, moods.Status)
	assert.Equal(t, []quotemood.MoodTag{{MoodID: 2, Type: "chilling"}}, moods.Value())
	assert.Equal(t, outcome.StatusNotFound, service.MoodsForQuote(ctx, 9).Status)

	assert.Equal(t, outcome.StatusDeleted, service.Untag(ctx, quotemood.Tag{QuoteID: 1, MoodID: 2}).Status)
	assert.Equal(t, outcome.StatusNotFound, service.Untag(ctx, quotemood.Tag{QuoteID: 1, MoodID: 2}).Status)
}

/*
TestHandler_Routes checks the label path parameter and the admin gate.
*/
func TestHandler_Routes(t *testing.T) {
	repository := newMemoryRepository()
	repository.tags[quotemood.Tag{QuoteID: 1, MoodID: 1}] = true
	service := newService(repository)

	tests := []struct {
		name   string
		role   sec.UserRole
		method string
		path   string
		body   string
		code   int
	}{
		{"by_label", "", http.MethodGet, "/api/QuoteMood/ListQuotesOnMood/witty", "", http.StatusOK},
		{"by_label_case", "", http.MethodGet, "/api/QuoteMood/ListQuotesOnMood/Witty", "", http.StatusNotFound},
		{"moods_for_quote", "", http.MethodGet, "/api/QuoteMood/ListMoodsForQuote/1", "", http.StatusOK},
		{"tag_anonymous", "", http.MethodPost, "/api/QuoteMood/AddTag", `{"quote_id":2,"mood_id":1}`, http.StatusUnauthorized},
		{"tag_admin", sec.RoleAdmin, http.MethodPost, "/api/QuoteMood/AddTag", `{"quote_id":2,"mood_id":1}`, http.StatusCreated},
		{"tag_duplicate", sec.RoleAdmin, http.MethodPost, "/api/QuoteMood/AddTag", `{"quote_id":2,"mood_id":1}`, http.StatusInternalServerError},
		{"untag_member", sec.RoleMember, http.MethodDelete, "/api/QuoteMood/RemoveTag/2/1", "", http.StatusForbidden},
		{"untag_admin", sec.RoleAdmin, http.MethodDelete, "/api/QuoteMood/RemoveTag/2/1", "", http.StatusOK},
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
			router.Mount("/api/QuoteMood", quotemood.NewHandler(service).Routes())

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))

			assert.Equal(t, tt.code, recorder.Code, recorder.Body.String())
		})
	}
}
