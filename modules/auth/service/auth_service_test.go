package service

import (
	"context"
	"testing"
	"time"

	"room-booking-api/core/config"
	"room-booking-api/core/errors"
	"room-booking-api/modules/auth/dto"
	"room-booking-api/modules/auth/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

// fakeCache implements cache.Cache in memory.
type fakeCache struct {
	blacklist map[string]bool
	attempts  map[string]int
	idem      map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		blacklist: make(map[string]bool),
		attempts:  make(map[string]int),
		idem:      make(map[string]string),
	}
}

func (f *fakeCache) AddToTokenBlacklist(_ context.Context, token string) error {
	f.blacklist[token] = true
	return nil
}

func (f *fakeCache) IsTokenBlacklisted(_ context.Context, token string) (bool, error) {
	return f.blacklist[token], nil
}

func (f *fakeCache) IncrementLoginAttempt(_ context.Context, key string) error {
	f.attempts[key]++
	return nil
}

func (f *fakeCache) IsLoginBlocked(_ context.Context, key string) (int, error) {
	return f.attempts[key], nil
}

func (f *fakeCache) Expire(context.Context, string, time.Duration) error { return nil }
func (f *fakeCache) Del(context.Context, string) error                   { return nil }

func (f *fakeCache) ClaimIdempotencyKey(_ context.Context, key, bookingID string) (bool, string, error) {
	if holder, ok := f.idem[key]; ok {
		return false, holder, nil
	}
	f.idem[key] = bookingID
	return true, "", nil
}

func (f *fakeCache) ReleaseIdempotencyKey(_ context.Context, key string) error {
	delete(f.idem, key)
	return nil
}

func (f *fakeCache) Close() error { return nil }

func testAuthService(t *testing.T) (AuthServiceInterface, *fakeUserRepo, *fakeCache) {
	t.Helper()
	config.Set(&config.Config{
		Auth: config.AuthConfig{JWTSecret: "test-secret", AccessTokenMinutes: 30},
	})
	repo := newFakeUserRepo()
	c := newFakeCache()
	return NewAuthService(repo, c), repo, c
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, _ := testAuthService(t)

	user, appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Email:    "Alice@Example.COM",
		FullName: "Alice Liddell",
		Password: "correct-horse",
	})
	require.Nil(t, appErr)
	assert.Equal(t, "alice@example.com", user.Email, "email is normalized")
	assert.False(t, user.IsManager)

	login, appErr := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "alice",
		Password: "correct-horse",
	})
	require.Nil(t, appErr)
	assert.NotEmpty(t, login.AccessToken)
	assert.Equal(t, "Bearer", login.TokenType)
	assert.Equal(t, user.ID, login.User.ID)
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := testAuthService(t)

	_, appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "bob", Email: "bob@example.com", Password: "short",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)

	_, appErr = svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "", Email: "x@example.com", Password: "long-enough",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestRegisterDuplicate(t *testing.T) {
	svc, _, _ := testAuthService(t)

	_, appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "carol", Email: "carol@example.com", Password: "long-enough",
	})
	require.Nil(t, appErr)

	_, appErr = svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "carol", Email: "other@example.com", Password: "long-enough",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrAlreadyExists, appErr.Code)

	_, appErr = svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "carol2", Email: "carol@example.com", Password: "long-enough",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrAlreadyExists, appErr.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, c := testAuthService(t)

	_, appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "dave", Email: "dave@example.com", Password: "long-enough",
	})
	require.Nil(t, appErr)

	_, appErr = svc.Login(context.Background(), &dto.LoginRequest{Username: "dave", Password: "wrong"})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
	assert.Equal(t, 1, c.attempts["dave"])

	// Unknown users get the same error, so usernames cannot be probed.
	_, appErr = svc.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "whatever"})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
}

func TestLoginBlockedAfterTooManyAttempts(t *testing.T) {
	svc, _, c := testAuthService(t)

	_, appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "erin", Email: "erin@example.com", Password: "long-enough",
	})
	require.Nil(t, appErr)

	c.attempts["erin"] = 5

	_, appErr = svc.Login(context.Background(), &dto.LoginRequest{Username: "erin", Password: "long-enough"})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _, _ := testAuthService(t)

	_, appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "frank", Email: "frank@example.com", Password: "long-enough",
	})
	require.Nil(t, appErr)

	login, appErr := svc.Login(context.Background(), &dto.LoginRequest{Username: "frank", Password: "long-enough"})
	require.Nil(t, appErr)

	claims, appErr := svc.ValidateAccessToken(context.Background(), login.AccessToken)
	require.Nil(t, appErr)
	assert.Equal(t, "frank", claims.Username)

	require.Nil(t, svc.Logout(context.Background(), login.AccessToken))

	_, appErr = svc.ValidateAccessToken(context.Background(), login.AccessToken)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
}

func TestValidateAccessTokenGarbage(t *testing.T) {
	svc, _, _ := testAuthService(t)

	_, appErr := svc.ValidateAccessToken(context.Background(), "not.a.jwt")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
}
