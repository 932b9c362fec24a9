package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight-admin/internal/dto"
	"freight-admin/internal/entities"
	"freight-admin/pkg/config"
	apperrors "freight-admin/pkg/errors"
	"freight-admin/pkg/service"
	"freight-admin/pkg/types"
	"freight-admin/pkg/utils"
)

type authFixture struct {
	h      *harness
	svc    AuthServiceInterface
	tokens TokenStoreInterface
	jwt    service.JWTService
	user   entities.User
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	h := newHarness(t)
	seedCatalog(h.store)
	cache, _ := newTestCache(t)

	roleID := h.store.nextID()
	h.store.roles[roleID] = entities.Role{RoleID: roleID, RoleName: "DISPATCH", ActiveStatus: types.ActiveStatusYes}
	h.store.rolePerms[roleID] = []uint64{1}

	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)
	user := entities.User{
		UserID:       h.store.nextID(),
		UserName:     "dispatch",
		Email:        "dispatch@example.com",
		PasswordHash: hash,
		RoleID:       roleID,
		RoleName:     "DISPATCH",
		ActiveStatus: types.ActiveStatusYes,
	}
	h.store.users[user.UserID] = user

	jwtSvc := service.NewJWTService("access-secret", "refresh-secret", time.Minute, time.Hour)
	tokens := NewTokenStore(cache)
	perms := NewAuthPermissionService(h.permRepo, cache, h.logger, testTTL)
	cfg := &config.AuthConfig{MaxLoginAttempts: 3, LockoutDuration: time.Minute}

	return &authFixture{
		h:      h,
		svc:    NewAuthService(h.userRepo, cache, tokens, jwtSvc, perms, h.logger, cfg),
		tokens: tokens,
		jwt:    jwtSvc,
		user:   user,
	}
}

func TestLogin_IssuesTokens(t *testing.T) {
	f := newAuthFixture(t)

	resp, err := f.svc.Login(context.Background(), dto.LoginDTO{LoginUserName: "dispatch", Password: "correct-horse"})
	require.NoError(t, err)

	assert.Equal(t, f.user.UserID, resp.User.UserID)
	claims, err := f.jwt.ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, f.user.RoleID, claims.RoleID)
	assert.Equal(t, "dispatch@example.com", claims.Email)

	refresh, err := f.jwt.ValidateRefreshToken(resp.RefreshToken)
	require.NoError(t, err)
	owner, err := f.tokens.Owner(context.Background(), refresh.ID)
	require.NoError(t, err)
	assert.Equal(t, f.user.UserID, owner)
}

func TestLogin_UniformFailure(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Login(context.Background(), dto.LoginDTO{LoginUserName: "dispatch", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = f.svc.Login(context.Background(), dto.LoginDTO{LoginUserName: "ghost", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_LocksOutAfterMaxAttempts(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.svc.Login(ctx, dto.LoginDTO{LoginUserName: "dispatch", Password: "wrong"})
		require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}

	_, err := f.svc.Login(ctx, dto.LoginDTO{LoginUserName: "DISPATCH", Password: "correct-horse"})
	assert.ErrorIs(t, err, apperrors.ErrAccountLocked, "the counter is keyed case-insensitively")
}

func TestLogin_SuccessResetsCounter(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, _ = f.svc.Login(ctx, dto.LoginDTO{LoginUserName: "dispatch", Password: "wrong"})
	}
	_, err := f.svc.Login(ctx, dto.LoginDTO{LoginUserName: "dispatch", Password: "correct-horse"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, _ = f.svc.Login(ctx, dto.LoginDTO{LoginUserName: "dispatch", Password: "wrong"})
	}
	_, err = f.svc.Login(ctx, dto.LoginDTO{LoginUserName: "dispatch", Password: "correct-horse"})
	assert.NoError(t, err)
}

func TestLogin_InactiveUser(t *testing.T) {
	f := newAuthFixture(t)
	u := f.h.store.users[f.user.UserID]
	u.ActiveStatus = types.ActiveStatusNo
	f.h.store.users[u.UserID] = u

	_, err := f.svc.Login(context.Background(), dto.LoginDTO{LoginUserName: "dispatch", Password: "correct-horse"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefresh_RotatesAndRevokesPresentedToken(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	first, err := f.svc.Login(ctx, dto.LoginDTO{LoginUserName: "dispatch", Password: "correct-horse"})
	require.NoError(t, err)

	second, err := f.svc.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	_, err = f.svc.Refresh(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)

	_, err = f.svc.Refresh(ctx, second.AccessToken)
	assert.Error(t, err, "an access token is not a refresh token")
}

func TestRefresh_ConcurrentReuseIssuesOnePair(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	first, err := f.svc.Login(ctx, dto.LoginDTO{LoginUserName: "dispatch", Password: "correct-horse"})
	require.NoError(t, err)

	const callers = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		issued   int
		rejected int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Refresh(ctx, first.RefreshToken)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				issued++
			} else if assert.ErrorIs(t, err, apperrors.ErrTokenRevoked) {
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, issued)
	assert.Equal(t, callers-1, rejected)
}

func TestLogout_RevokesEverySession(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	a, err := f.svc.Login(ctx, dto.LoginDTO{LoginUserName: "dispatch", Password: "correct-horse"})
	require.NoError(t, err)
	b, err := f.svc.Login(ctx, dto.LoginDTO{LoginUserName: "dispatch", Password: "correct-horse"})
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(ctx, f.user.UserID))

	_, err = f.svc.Refresh(ctx, a.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
	_, err = f.svc.Refresh(ctx, b.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestRevokeToken_OnlyThatSession(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	a, err := f.svc.Login(ctx, dto.LoginDTO{LoginUserName: "dispatch", Password: "correct-horse"})
	require.NoError(t, err)
	b, err := f.svc.Login(ctx, dto.LoginDTO{LoginUserName: "dispatch", Password: "correct-horse"})
	require.NoError(t, err)

	require.NoError(t, f.svc.RevokeToken(ctx, a.RefreshToken))

	_, err = f.svc.Refresh(ctx, a.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
	_, err = f.svc.Refresh(ctx, b.RefreshToken)
	assert.NoError(t, err)
}

func TestMe_IncludesRolePermissions(t *testing.T) {
	f := newAuthFixture(t)

	me, err := f.svc.Me(context.Background(), f.user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "dispatch", me.UserName)
	assert.Equal(t, []string{"canViewUser"}, me.Permissions)
}
