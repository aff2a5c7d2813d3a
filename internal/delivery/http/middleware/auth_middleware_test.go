package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"terraverde/config"
	mockservice "terraverde/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixtures struct {
	middleware *AuthMiddleware
	tokenSvc   *mockservice.MockTokenService
}

func createTestAuthMiddleware(t *testing.T) *authMiddlewareFixtures {
	tokenSvc := mockservice.NewMockTokenService(t)
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"

	return &authMiddlewareFixtures{
		middleware: NewAuthMiddleware(tokenSvc, cfg),
		tokenSvc:   tokenSvc,
	}
}

// serveGuarded runs req through an echo route guarded by Authenticate (and
// RequireRole when requiredRole is non-empty), with the central error
// handler installed so guard failures render the standard envelope. The
// returned bool reports whether the handler behind the guards ran.
func serveGuarded(fx *authMiddlewareFixtures, requiredRole string, req *http.Request) (*httptest.ResponseRecorder, *bool) {
	e := echo.New()
	errorMw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.HTTPErrorHandler = errorMw.HandleHTTPError

	handlerCalled := false
	guards := []echo.MiddlewareFunc{fx.middleware.Authenticate}
	if requiredRole != "" {
		guards = append(guards, fx.middleware.RequireRole(requiredRole))
	}
	e.GET("/guarded", func(c echo.Context) error {
		handlerCalled = true

		return c.NoContent(http.StatusOK)
	}, guards...)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec, &handlerCalled
}

func signedToken(role string) *jwt.Token {
	return &jwt.Token{
		Valid:  true,
		Claims: jwt.MapClaims{"sub": "7", "role": role},
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	rec, handlerCalled := serveGuarded(fx, "", req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
	assert.False(t, *handlerCalled)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Token not-a-bearer")
	rec, handlerCalled := serveGuarded(fx, "", req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
	assert.False(t, *handlerCalled)
}

func TestAuthenticate_RejectedToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	fx.tokenSvc.EXPECT().
		ValidateToken("expired-token", "access-secret").
		Return(nil, errors.New("token is expired"))

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec, handlerCalled := serveGuarded(fx, "", req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
	assert.False(t, *handlerCalled)
}

func TestAuthenticate_ValidToken_SetsCallerContext(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	fx.tokenSvc.EXPECT().
		ValidateToken("good-token", "access-secret").
		Return(signedToken("user"), nil)

	e := echo.New()
	e.GET("/guarded", func(c echo.Context) error {
		userID, ok := CallerID(c)
		require.True(t, ok)
		assert.Equal(t, uint(7), userID)
		assert.False(t, CallerIsAdmin(c))

		return c.NoContent(http.StatusOK)
	}, fx.middleware.Authenticate)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_RejectsUserOnAdminRoute(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	fx.tokenSvc.EXPECT().
		ValidateToken("user-token", "access-secret").
		Return(signedToken("user"), nil)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	rec, handlerCalled := serveGuarded(fx, "admin", req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
	assert.False(t, *handlerCalled)
}

func TestRequireRole_AdminPassesThrough(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	fx.tokenSvc.EXPECT().
		ValidateToken("admin-token", "access-secret").
		Return(signedToken("admin"), nil)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rec, handlerCalled := serveGuarded(fx, "admin", req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *handlerCalled)
}
