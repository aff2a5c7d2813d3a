package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"terraverde/config"
	"terraverde/internal/domain/entity"
	domainerrors "terraverde/internal/domain/errors"
	"terraverde/internal/domain/repository"
	"terraverde/internal/domain/service"
	mockRepo "terraverde/internal/mocks/repository"
	mockService "terraverde/internal/mocks/service"
	"terraverde/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	tokenService *mockService.MockTokenService
	oauthService *mockService.MockOAuthAuthService
	cfg          *config.Config
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockService.NewMockTokenService(t)
	oauthService := mockService.NewMockOAuthAuthService(t)
	cfg := &config.Config{}
	cfg.SecretKey.Refresh = "refresh-secret"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authService := NewAuthService(userRepo, tokenService, oauthService, cfg, logger)

	return authServiceFixtures{
		service:      authService,
		userRepo:     userRepo,
		tokenService: tokenService,
		oauthService: oauthService,
		cfg:          cfg,
	}
}

func TestAuthService_GoogleSignIn_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.oauthService.EXPECT().VerifyIDToken(ctx, "valid-id-token").
		Return(&service.OAuthUser{
			ID:          "google-oid-1",
			Email:       "ana@example.com",
			Name:        "Ana",
			LoginMethod: "google",
		}, nil)
	fx.userRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			// Simulate the persisted state the repository reads back.
			user.ID = 7
			user.Role = entity.RoleUser
			user.AccessLevel = entity.AccessFree
		}).
		Return(nil)
	fx.tokenService.EXPECT().GenerateTokens(uint(7), "user").
		Return("access-token", "refresh-token", nil)

	result, err := fx.service.GoogleSignIn(ctx, &usecase.GoogleSignInInput{IDToken: "valid-id-token"})

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.User.ID)
	assert.Equal(t, "google-oid-1", result.User.OpenID)
	assert.Equal(t, "access-token", result.AccessToken)
	assert.Equal(t, "refresh-token", result.RefreshToken)
}

func TestAuthService_GoogleSignIn_RejectedToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.oauthService.EXPECT().VerifyIDToken(ctx, "bad-token").
		Return(nil, errors.New("token expired"))

	_, err := fx.service.GoogleSignIn(ctx, &usecase.GoogleSignInInput{IDToken: "bad-token"})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_TOKEN", appErr.ErrorCode())
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.tokenService.EXPECT().ValidateToken("old-refresh", "refresh-secret").
		Return(&jwt.Token{Claims: jwt.MapClaims{"sub": "7"}}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, uint(7)).
		Return(&entity.User{ID: 7, Role: entity.RoleUser}, nil)
	fx.tokenService.EXPECT().GenerateTokens(uint(7), "user").
		Return("new-access", "new-refresh", nil)

	result, err := fx.service.RefreshToken(ctx, "old-refresh")

	require.NoError(t, err)
	assert.Equal(t, "new-access", result.AccessToken)
	assert.Equal(t, "new-refresh", result.RefreshToken)
}

func TestAuthService_RefreshToken_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().ValidateToken("forged", "refresh-secret").
		Return(nil, errors.New("signature invalid"))

	_, err := fx.service.RefreshToken(context.Background(), "forged")

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_TOKEN", appErr.ErrorCode())
}

func TestAuthService_RefreshToken_SubjectGone(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.tokenService.EXPECT().ValidateToken("orphaned", "refresh-secret").
		Return(&jwt.Token{Claims: jwt.MapClaims{"sub": "404"}}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, uint(404)).
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.RefreshToken(ctx, "orphaned")

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "USER_NOT_FOUND", appErr.ErrorCode())
}
