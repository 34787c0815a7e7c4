// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/opinion/internal/platform/apperr"
	"github.com/taibuivan/opinion/internal/platform/constants"
	"github.com/taibuivan/opinion/internal/platform/dberr"
	"github.com/taibuivan/opinion/internal/platform/sec"
	"github.com/taibuivan/opinion/internal/users/auth"
)

// # Fakes

type memoryUsers struct {
	byID map[string]*auth.User
}

func (users *memoryUsers) FindByID(_ context.Context, id string) (*auth.User, error) {
	if user, ok := users.byID[id]; ok {
		return user, nil
	}
	return nil, dberr.ErrNotFound
}

func (users *memoryUsers) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	for _, user := range users.byID {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (users *memoryUsers) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	for _, user := range users.byID {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (users *memoryUsers) Create(_ context.Context, user *auth.User) error {
	users.byID[user.ID] = user
	return nil
}

func (users *memoryUsers) UpdateRole(ctx context.Context, email string, role string) error {
	user, err := users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	user.Role = sec.UserRole(role)
	return nil
}

type memorySessions struct {
	mu     sync.Mutex
	byHash map[string]*auth.Session
}

func (sessions *memorySessions) Create(_ context.Context, session *auth.Session) error {
	sessions.mu.Lock()
	defer sessions.mu.Unlock()
	sessions.byHash[session.TokenHash] = session
	return nil
}

func (sessions *memorySessions) Consume(_ context.Context, tokenHash string) (*auth.Session, error) {
	sessions.mu.Lock()
	defer sessions.mu.Unlock()
	session, ok := sessions.byHash[tokenHash]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	delete(sessions.byHash, tokenHash)
	return session, nil
}

func (sessions *memorySessions) Revoke(_ context.Context, tokenHash string) error {
	sessions.mu.Lock()
	defer sessions.mu.Unlock()
	delete(sessions.byHash, tokenHash)
	return nil
}

type stubTokens struct{}

func (stubTokens) GenerateAccessToken(userID, _, role string, _ time.Duration) (string, error) {
	return "access." + userID + "." + role, nil
}

func newFixture() (*auth.Service, *memoryUsers, *memorySessions) {
	users := &memoryUsers{byID: map[string]*auth.User{}}
	sessions := &memorySessions{byHash: map[string]*auth.Session{}}
	service := auth.NewService(users, sessions, stubTokens{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return service, users, sessions
}

func register(t *testing.T, service *auth.Service, username string) *auth.User {
	t.Helper()
	user, err := service.Register(context.Background(), auth.RegisterInput{
		Username: username,
		Email:    username + "@opinion.app",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	return user
}

// # Tests

/*
TestService_Register creates members and rejects duplicates with 409.
*/
func TestService_Register(t *testing.T) {
	service, _, _ := newFixture()

	user := register(t, service, "minji")
	assert.Equal(t, sec.RoleMember, user.Role)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)

	_, err := service.Register(context.Background(), auth.RegisterInput{Username: "other", Email: "minji@opinion.app", Password: "correct-horse"})
	require.Error(t, err)
	assert.Equal(t, 409, apperr.As(err).HTTPStatus)

	_, err = service.Register(context.Background(), auth.RegisterInput{Username: "minji", Email: "new@opinion.app", Password: "correct-horse"})
	require.Error(t, err)
	assert.Equal(t, 409, apperr.As(err).HTTPStatus)
}

/*
TestService_Login accepts email or username and hides which part was wrong.
*/
func TestService_Login(t *testing.T) {
	service, _, sessions := newFixture()
	user := register(t, service, "minji")

	for _, login := range []string{"minji", "minji@opinion.app"} {
		session, err := service.Login(context.Background(), auth.LoginInput{Login: login, Password: "correct-horse"})
		require.NoError(t, err)
		assert.Equal(t, "access."+user.ID+".member", session.AccessToken)
		assert.Contains(t, sessions.byHash, sec.HashToken(session.RefreshToken))
	}

	_, wrongPassword := service.Login(context.Background(), auth.LoginInput{Login: "minji", Password: "nope"})
	_, unknownUser := service.Login(context.Background(), auth.LoginInput{Login: "ghost", Password: "correct-horse"})
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

/*
TestService_RefreshRotates revokes the old refresh token.
*/
func TestService_RefreshRotates(t *testing.T) {
	service, _, sessions := newFixture()
	register(t, service, "minji")

	first, err := service.Login(context.Background(), auth.LoginInput{Login: "minji", Password: "correct-horse"})
	require.NoError(t, err)

	second, err := service.RefreshSession(context.Background(), first.RefreshToken, "test", "127.0.0.1")
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.Len(t, sessions.byHash, 1)

	_, err = service.RefreshSession(context.Background(), first.RefreshToken, "test", "127.0.0.1")
	assert.Error(t, err)

	require.NoError(t, service.Logout(context.Background(), second.RefreshToken))
	assert.Empty(t, sessions.byHash)
}

/*
TestService_RefreshConcurrentReplay lets exactly one of several simultaneous
refreshes with the same token win.
*/
func TestService_RefreshConcurrentReplay(t *testing.T) {
	service, _, sessions := newFixture()
	register(t, service, "minji")

	first, err := service.Login(context.Background(), auth.LoginInput{Login: "minji", Password: "correct-horse"})
	require.NoError(t, err)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		start     = make(chan struct{})
		successes atomic.Int32
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, err := service.RefreshSession(context.Background(), first.RefreshToken, "test", "127.0.0.1"); err == nil {
				successes.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	assert.Len(t, sessions.byHash, 1)
}

/*
TestService_PromoteAdmin elevates an existing account only.
*/
func TestService_PromoteAdmin(t *testing.T) {
	service, users, _ := newFixture()
	user := register(t, service, "admin")

	require.NoError(t, service.PromoteAdmin(context.Background(), "admin@opinion.app"))
	assert.Equal(t, sec.RoleAdmin, users.byID[user.ID].Role)

	err := service.PromoteAdmin(context.Background(), "ghost@opinion.app")
	assert.True(t, errors.Is(err, auth.ErrUserNotFound))
}

/*
TestDirectory resolves names and roles, treating malformed ids as unknown.
*/
func TestDirectory(t *testing.T) {
	service, users, _ := newFixture()
	member := register(t, service, "minji")
	users.byID[member.ID].DisplayName = "Min-ji"
	admin := register(t, service, "root")
	require.NoError(t, service.PromoteAdmin(context.Background(), "root@opinion.app"))

	directory := auth.NewDirectory(users)
	ctx := context.Background()

	name, err := directory.GetDisplayName(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, "Min-ji", name)

	name, err = directory.GetDisplayName(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "root", name)

	_, err = directory.FindUserByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)

	found, err := directory.FindUserByID(ctx, admin.ID)
	require.NoError(t, err)
	isAdmin, err := directory.IsInRole(ctx, found, sec.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = directory.IsInRole(ctx, users.byID[member.ID], sec.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

/*
TestHandler_LoginSetsCookies issues both session cookies.
*/
func TestHandler_LoginSetsCookies(t *testing.T) {
	service, _, _ := newFixture()
	register(t, service, "minji")
	router := auth.NewHandler(service, false).Routes()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"login":"minji","password":"correct-horse"}`)))

	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	names := map[string]bool{}
	for _, cookie := range recorder.Result().Cookies() {
		names[cookie.Name] = cookie.HttpOnly
	}
	assert.True(t, names[constants.AccessTokenCookieName])
	assert.True(t, names[constants.RefreshTokenCookieName])

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"x","email":"bad","password":"1"}`)))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
