// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/opinion/internal/platform/dberr"
	"github.com/taibuivan/opinion/internal/platform/outcome"
	"github.com/taibuivan/opinion/internal/platform/sec"
	"github.com/taibuivan/opinion/internal/social/comment"
	"github.com/taibuivan/opinion/internal/users/auth"
	"github.com/taibuivan/opinion/pkg/pointer"
)

const (
	authorID = "0190f6a4-7c1e-7b3a-9d2f-000000000001"
	memberID = "0190f6a4-7c1e-7b3a-9d2f-000000000002"
	adminID  = "0190f6a4-7c1e-7b3a-9d2f-000000000003"
	ghostID  = "0190f6a4-7c1e-7b3a-9d2f-000000000004"
)

// # Fakes

// memoryRepository keeps insertion order so tests prove the service sorts.
type memoryRepository struct {
	quotes   map[int]comment.QuoteSummary
	comments []*comment.Comment
	nextID   int

	writeErr error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		quotes: map[int]comment.QuoteSummary{
			1: {QuoteID: 1, Content: "I'll wait for you.", Actor: "Kim Hye-soo", Episode: 4, DramaID: 1, DramaTitle: "Signal"},
		},
		nextID: 1,
	}
}

func (repository *memoryRepository) Create(_ context.Context, c *comment.Comment) error {
	if repository.writeErr != nil {
		return repository.writeErr
	}
	c.ID = repository.nextID
	repository.nextID++
	stored := *c
	repository.comments = append(repository.comments, &stored)
	return nil
}

func (repository *memoryRepository) Find(_ context.Context, id int) (*comment.Comment, error) {
	for _, c := range repository.comments {
		if c.ID == id {
			found := *c
			return &found, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repository *memoryRepository) ListByQuote(_ context.Context, quoteID int) ([]*comment.Comment, error) {
	out := make([]*comment.Comment, 0)
	for _, c := range repository.comments {
		if c.QuoteID == quoteID {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (repository *memoryRepository) UpdateText(_ context.Context, id int, text string) error {
	if repository.writeErr != nil {
		return repository.writeErr
	}
	for _, c := range repository.comments {
		if c.ID == id {
			c.Text = text
			return nil
		}
	}
	return dberr.ErrNotFound
}

func (repository *memoryRepository) Delete(_ context.Context, id int) error {
	if repository.writeErr != nil {
		return repository.writeErr
	}
	for i, c := range repository.comments {
		if c.ID == id {
			repository.comments = append(repository.comments[:i], repository.comments[i+1:]...)
			return nil
		}
	}
	return dberr.ErrNotFound
}

func (repository *memoryRepository) FindQuote(_ context.Context, quoteID int) (*comment.QuoteSummary, error) {
	if q, ok := repository.quotes[quoteID]; ok {
		return &q, nil
	}
	return nil, dberr.ErrNotFound
}

type mockDirectory struct {
	mock.Mock
}

func (m *mockDirectory) FindUserByID(ctx context.Context, id string) (*auth.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*auth.User)
	return user, args.Error(1)
}

func (m *mockDirectory) IsInRole(ctx context.Context, user *auth.User, role sec.UserRole) (bool, error) {
	args := m.Called(ctx, user, role)
	return args.Bool(0), args.Error(1)
}

func (m *mockDirectory) GetDisplayName(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

// standardDirectory knows an author, a member and an admin.
func standardDirectory() *mockDirectory {
	directory := &mockDirectory{}
	users := map[string]*auth.User{
		authorID: {ID: authorID, Username: "author", Role: sec.RoleMember},
		memberID: {ID: memberID, Username: "member", Role: sec.RoleMember},
		adminID:  {ID: adminID, Username: "admin", Role: sec.RoleAdmin},
	}

	for id, user := range users {
		directory.On("FindUserByID", mock.Anything, id).Return(user, nil).Maybe()
		directory.On("IsInRole", mock.Anything, user, sec.RoleAdmin).Return(user.Role == sec.RoleAdmin, nil).Maybe()
		directory.On("GetDisplayName", mock.Anything, id).Return(user.Username, nil).Maybe()
	}
	directory.On("FindUserByID", mock.Anything, ghostID).Return(nil, auth.ErrUserNotFound).Maybe()
	directory.On("GetDisplayName", mock.Anything, ghostID).Return("", auth.ErrUserNotFound).Maybe()

	return directory
}

func newService(repository comment.Repository, directory comment.UserDirectory) *comment.Service {
	return comment.NewService(repository, directory, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// # Tests

/*
TestService_MutationMatrix covers the NotFound / Forbidden / success split
for both update and delete.
*/
func TestService_MutationMatrix(t *testing.T) {
	tests := []struct {
		name      string
		author    *string
		target    int
		acting    string
		wantState outcome.Status
	}{
		{"missing_comment_as_admin", pointer.To(authorID), 99, adminID, outcome.StatusNotFound},
		{"missing_comment_as_author", pointer.To(authorID), 99, authorID, outcome.StatusNotFound},
		{"author", pointer.To(authorID), 1, authorID, ""},
		{"admin_not_author", pointer.To(authorID), 1, adminID, ""},
		{"member_not_author", pointer.To(authorID), 1, memberID, outcome.StatusForbidden},
		{"unknown_acting_user", pointer.To(authorID), 1, ghostID, outcome.StatusForbidden},
		{"system_comment_member", nil, 1, memberID, outcome.StatusForbidden},
		{"system_comment_admin", nil, 1, adminID, ""},
	}

	for _, tt := range tests {
		for _, operation := range []string{"update", "delete"} {
			t.Run(tt.name+"/"+operation, func(t *testing.T) {
				repository := newMemoryRepository()
				service := newService(repository, standardDirectory())
				require.Equal(t, outcome.StatusCreated, service.Add(context.Background(), "Original", 1, tt.author).Status)

				var result outcome.Status
				want := tt.wantState
				if operation == "update" {
					result = service.Update(context.Background(), tt.target, "Edited", tt.acting).Status
					if want == "" {
						want = outcome.StatusUpdated
					}
				} else {
					result = service.Delete(context.Background(), tt.target, tt.acting).Status
					if want == "" {
						want = outcome.StatusDeleted
					}
				}

				assert.Equal(t, want, result)

				if want == outcome.StatusForbidden || want == outcome.StatusNotFound {
					require.Len(t, repository.comments, 1)
					assert.Equal(t, "Original", repository.comments[0].Text)
				}
			})
		}
	}
}

/*
TestService_ListByQuoteNewestFirst orders t3, t2, t1 regardless of storage order.
*/
func TestService_ListByQuoteNewestFirst(t *testing.T) {
	repository := newMemoryRepository()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tick := 0
	service := newService(repository, standardDirectory()).WithClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	})

	for _, text := range []string{"t1", "t2", "t3"} {
		require.Equal(t, outcome.StatusCreated, service.Add(context.Background(), text, 1, pointer.To(authorID)).Status)
	}

	result := service.ListByQuote(context.Background(), 1)
	require.Equal(t, outcome.StatusFound, result.Status)

	texts := []string{}
	for _, view := range result.Value() {
		texts = append(texts, view.CommentText)
	}
	assert.Equal(t, []string{"t3", "t2", "t1"}, texts)
	assert.Equal(t, "2026-03-01 09:03:00", result.Value()[0].CreatedAt)
}

/*
TestService_AddMissingQuote writes nothing.
*/
func TestService_AddMissingQuote(t *testing.T) {
	repository := newMemoryRepository()
	service := newService(repository, standardDirectory())

	result := service.Add(context.Background(), "Hello", 42, pointer.To(authorID))

	assert.Equal(t, outcome.StatusNotFound, result.Status)
	assert.Equal(t, []string{"Quote not found."}, result.Messages)
	assert.Empty(t, repository.comments)
}

/*
TestService_AddReturnsThread refreshes the thread and applies the defaults.
*/
func TestService_AddReturnsThread(t *testing.T) {
	repository := newMemoryRepository()
	service := newService(repository, standardDirectory())

	service.Add(context.Background(), "First", 1, pointer.To(ghostID))
	result := service.Add(context.Background(), "", 1, nil)

	require.Equal(t, outcome.StatusCreated, result.Status)
	assert.Equal(t, 2, *result.CreatedID)
	assert.Equal(t, []string{"Comment added successfully."}, result.Messages)

	thread := result.Value()
	assert.Equal(t, "Signal", thread.Quote.DramaTitle)
	require.Len(t, thread.Comments, 2)
	assert.Equal(t, comment.DefaultText, thread.Comments[0].CommentText)
	assert.Equal(t, comment.AnonymousName, thread.Comments[0].UserName)
	assert.Equal(t, comment.AnonymousName, thread.Comments[1].UserName)
}

/*
TestService_Get resolves the author name.
*/
func TestService_Get(t *testing.T) {
	service := newService(newMemoryRepository(), standardDirectory())
	service.Add(context.Background(), "Hello", 1, pointer.To(authorID))

	found := service.Get(context.Background(), 1)
	require.Equal(t, outcome.StatusFound, found.Status)
	assert.Equal(t, "author", found.Value().UserName)
	assert.Equal(t, authorID, *found.Value().UserID)

	assert.Equal(t, outcome.StatusNotFound, service.Get(context.Background(), 2).Status)
}

/*
TestService_Failures maps persistence and directory failures to Error.
*/
func TestService_Failures(t *testing.T) {
	t.Run("persist", func(t *testing.T) {
		repository := newMemoryRepository()
		service := newService(repository, standardDirectory())
		service.Add(context.Background(), "Hello", 1, pointer.To(authorID))
		repository.writeErr = errors.New("disk full")

		update := service.Update(context.Background(), 1, "Edited", authorID)
		assert.Equal(t, outcome.StatusError, update.Status)
		assert.Contains(t, update.Messages, "disk full")

		remove := service.Delete(context.Background(), 1, adminID)
		assert.Equal(t, outcome.StatusError, remove.Status)
	})

	t.Run("directory", func(t *testing.T) {
		directory := &mockDirectory{}
		directory.On("FindUserByID", mock.Anything, memberID).Return(nil, errors.New("identity provider down"))
		directory.On("GetDisplayName", mock.Anything, mock.Anything).Return("author", nil).Maybe()

		repository := newMemoryRepository()
		service := newService(repository, directory)
		service.Add(context.Background(), "Hello", 1, pointer.To(authorID))

		result := service.Delete(context.Background(), 1, memberID)

		assert.Equal(t, outcome.StatusError, result.Status)
		assert.Len(t, repository.comments, 1)
		directory.AssertExpectations(t)
	})
}

/*
TestService_OwnerSkipsDirectory never consults roles for the author.
*/
func TestService_OwnerSkipsDirectory(t *testing.T) {
	directory := &mockDirectory{}
	directory.On("GetDisplayName", mock.Anything, authorID).Return("author", nil)

	service := newService(newMemoryRepository(), directory)
	service.Add(context.Background(), "Hello", 1, pointer.To(authorID))

	result := service.Update(context.Background(), 1, "Edited", authorID)

	assert.Equal(t, outcome.StatusUpdated, result.Status)
	assert.Equal(t, "Edited", result.Value().CommentText)
	directory.AssertNotCalled(t, "FindUserByID", mock.Anything, mock.Anything)
	directory.AssertNotCalled(t, "IsInRole", mock.Anything, mock.Anything, mock.Anything)
}
