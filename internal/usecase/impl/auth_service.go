// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strconv"

	"terraverde/config"
	"terraverde/internal/domain/entity"
	domainerrors "terraverde/internal/domain/errors"
	"terraverde/internal/domain/repository"
	"terraverde/internal/domain/service"
	"terraverde/internal/errors"
	"terraverde/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	oauthService service.OAuthAuthService
	cfg          *config.Config
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	userRepo repository.UserRepository,
	tokenService service.TokenService,
	oauthService service.OAuthAuthService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		userRepo:     userRepo,
		tokenService: tokenService,
		oauthService: oauthService,
		cfg:          cfg,
		logger:       logger,
	}
}

// GoogleSignIn verifies the provider token, upserts the account and issues a
// session token pair.
func (srv *authService) GoogleSignIn(ctx context.Context, input *usecase.GoogleSignInInput) (*usecase.AuthResult, error) {
	identity, err := srv.oauthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.logger.Warn("Google ID token rejected", "error", err)

		return nil, domainerrors.ErrInvalidToken.WrapMessage("failed to verify Google ID token")
	}

	user := &entity.User{
		OpenID:      identity.ID,
		Name:        identity.Name,
		Email:       identity.Email,
		LoginMethod: identity.LoginMethod,
		PictureURL:  identity.Picture,
	}
	if err := srv.userRepo.Upsert(ctx, user); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert user on sign-in")
	}

	result, err := srv.issueTokens(user)
	if err != nil {
		return nil, err
	}

	srv.logger.Info("user signed in", "userID", user.ID, "loginMethod", user.LoginMethod)

	return result, nil
}

// RefreshToken exchanges a refresh token for a new pair. The refresh token
// is stateless; its subject claim identifies the user.
func (srv *authService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.AuthResult, error) {
	token, err := srv.tokenService.ValidateToken(refreshToken, srv.cfg.SecretKey.Refresh)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("failed to validate refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("unexpected refresh token claims")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("refresh token missing subject")
	}

	userID, err := strconv.ParseUint(subject, 10, 64)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("malformed refresh token subject")
	}

	user, err := srv.userRepo.FindByID(ctx, uint(userID))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("refresh token subject no longer exists")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load user for refresh")
	}

	return srv.issueTokens(user)
}

func (srv *authService) issueTokens(user *entity.User) (*usecase.AuthResult, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session tokens")
	}

	return &usecase.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
