package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/healthcare-scheduler/internal/config"
)

type fakeDenylist struct {
	revoked map[string]bool
	err     error
}

func (f *fakeDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.revoked[jti], nil
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret"}
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func authRouter(cfg *config.Config, revoked TokenRevocationChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", AuthMiddleware(cfg, revoked), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet(ContextUserID).(uint),
			"role":    c.MustGet(ContextUserRole).(string),
		})
	})
	return r
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	cfg := testConfig()
	r := authRouter(cfg, nil)

	token := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":  float64(42),
		"role": "patient",
		"jti":  "abc",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
	assert.Contains(t, w.Body.String(), `"role":"patient"`)
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := authRouter(testConfig(), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsBadSignature(t *testing.T) {
	r := authRouter(testConfig(), nil)

	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub":  float64(42),
		"role": "patient",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	cfg := testConfig()
	r := authRouter(cfg, nil)

	token := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":  float64(42),
		"role": "patient",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsRevokedToken(t *testing.T) {
	cfg := testConfig()
	denylist := &fakeDenylist{revoked: map[string]bool{"gone": true}}
	r := authRouter(cfg, denylist)

	token := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":  float64(42),
		"role": "patient",
		"jti":  "gone",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareFailsClosedWhenDenylistUnavailable(t *testing.T) {
	cfg := testConfig()
	denylist := &fakeDenylist{err: errors.New("connection refused")}
	r := authRouter(cfg, denylist)

	token := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":  float64(42),
		"role": "patient",
		"jti":  "abc",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	// An unanswerable revocation check must not admit the token.
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/patients-only",
		func(c *gin.Context) { c.Set(ContextUserRole, "professional"); c.Next() },
		RequireRole("patient"),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/patients-only", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}
