package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtshop/internal/domain"
	"gtshop/internal/infrastructure/localstore"
	"gtshop/internal/repository"
	"gtshop/pkg/errs"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	store, err := localstore.Open("")
	require.NoError(t, err)
	return CreateAuthService(
		repository.CreateUserRepository(store),
		repository.CreateSessionRepository(store),
		"admin123",
		0,
	)
}

func TestRegisterThenSignIn(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	session, err := svc.Register(ctx, "player@example.com", "secret1", "player")
	require.NoError(t, err)
	assert.Equal(t, "player@example.com", session.Email)
	assert.Equal(t, "player", session.DisplayName)
	assert.NotEmpty(t, session.UID)

	current, found, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, session.UID, current.UID)

	require.NoError(t, svc.SignOut(ctx))

	again, err := svc.SignIn(ctx, "player@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, session.UID, again.UID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "player@example.com", "secret1", "player")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "player@example.com", "other99", "other")
	assert.ErrorIs(t, err, errs.ErrEmailAlreadyInUse)
}

func TestRegisterDefaultsUsernameToEmailLocalPart(t *testing.T) {
	svc := newAuthService(t)

	session, err := svc.Register(context.Background(), "noname@example.com", "secret1", "")
	require.NoError(t, err)
	assert.Equal(t, "noname", session.DisplayName)
}

func TestSignInWrongPassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "player@example.com", "secret1", "player")
	require.NoError(t, err)
	require.NoError(t, svc.SignOut(ctx))

	_, err = svc.SignIn(ctx, "player@example.com", "wrong")
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)

	_, found, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	assert.False(t, found, "failed sign-in must not create a session")
}

func TestSignInUnknownEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.SignIn(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
}

func TestSignOutClearsSessionAndAdminFlag(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "player@example.com", "secret1", "player")
	require.NoError(t, err)
	require.NoError(t, svc.AdminLogin(ctx, "admin123"))

	require.NoError(t, svc.SignOut(ctx))

	_, found, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	admin, err := svc.AdminSession(ctx)
	require.NoError(t, err)
	assert.False(t, admin)
}

func TestAdminLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	err := svc.AdminLogin(ctx, "nope")
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)

	admin, err := svc.AdminSession(ctx)
	require.NoError(t, err)
	assert.False(t, admin)

	require.NoError(t, svc.AdminLogin(ctx, "admin123"))
	admin, err = svc.AdminSession(ctx)
	require.NoError(t, err)
	assert.True(t, admin)
}

func TestIsAdminFollowsUserRole(t *testing.T) {
	store, err := localstore.Open("")
	require.NoError(t, err)
	userRepo := repository.CreateUserRepository(store)
	svc := CreateAuthService(userRepo, repository.CreateSessionRepository(store), "admin123", 0)
	ctx := context.Background()

	require.NoError(t, userRepo.Add(ctx, domain.User{
		UID:      "admin",
		Email:    "admin@growtopia.com",
		Password: "admin123",
		Role:     domain.RoleAdmin,
	}))

	admin, err := svc.IsAdmin(ctx)
	require.NoError(t, err)
	assert.False(t, admin, "no session, no admin")

	_, err = svc.Register(ctx, "player@example.com", "secret1", "player")
	require.NoError(t, err)
	admin, err = svc.IsAdmin(ctx)
	require.NoError(t, err)
	assert.False(t, admin)

	_, err = svc.SignIn(ctx, "admin@growtopia.com", "admin123")
	require.NoError(t, err)
	admin, err = svc.IsAdmin(ctx)
	require.NoError(t, err)
	assert.True(t, admin)
}

func TestUsersListing(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "first@example.com", "secret1", "first")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "second@example.com", "secret1", "second")
	require.NoError(t, err)

	users, err := svc.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, user := range users {
		assert.Equal(t, domain.RoleUser, user.Role)
		assert.NotEmpty(t, user.UID)
	}
	for i := 1; i < len(users); i++ {
		assert.False(t, users[i-1].CreatedAt.Before(users[i].CreatedAt), "listing is newest first")
	}
}

func TestSubscribeObserver(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	var observed []*domain.Session
	svc.Subscribe(func(session *domain.Session) {
		observed = append(observed, session)
	})
	require.Len(t, observed, 1, "observer runs immediately on subscribe")
	assert.Nil(t, observed[0])

	session, err := svc.Register(ctx, "player@example.com", "secret1", "player")
	require.NoError(t, err)
	require.Len(t, observed, 2)
	require.NotNil(t, observed[1])
	assert.Equal(t, session.UID, observed[1].UID)

	require.NoError(t, svc.SignOut(ctx))
	require.Len(t, observed, 3)
	assert.Nil(t, observed[2])
}

func TestSimulatedLatencyHonorsContext(t *testing.T) {
	store, err := localstore.Open("")
	require.NoError(t, err)
	svc := CreateAuthService(
		repository.CreateUserRepository(store),
		repository.CreateSessionRepository(store),
		"admin123",
		time.Second,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = svc.SignIn(ctx, "player@example.com", "secret1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
