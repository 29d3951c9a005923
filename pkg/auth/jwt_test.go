package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *JWTService {
	t.Helper()
	s, err := NewJWTService("segredo-de-teste", time.Hour)
	require.NoError(t, err)
	return s
}

func testUser() *user.User {
	return &user.User{ID: "u1", Name: "Ana", Email: "ana@doceria.com", Role: user.RoleAdmin, Approved: true}
}

func TestGenerateAndValidate(t *testing.T) {
	s := newService(t)
	token, expiresAt, err := s.GenerateToken(testUser())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "administrador", claims.Role)
}

func TestMissingKey(t *testing.T) {
	_, err := NewJWTService("", time.Hour)
	assert.ErrorIs(t, err, ErrMissingJWTKey)
}

func TestExpiredTokenCanBeRefreshed(t *testing.T) {
	s := newService(t)
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := s.GenerateToken(testUser())
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)

	refreshed, _, claims, err := s.RefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	_, err = s.ValidateToken(refreshed)
	assert.NoError(t, err)
}

func TestTokenFromOtherKeyIsRejected(t *testing.T) {
	other, err := NewJWTService("outra-chave", time.Hour)
	require.NoError(t, err)
	token, _, err := other.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = newService(t).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, _, _, err = newService(t).RefreshToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := newService(t)

	r := gin.New()
	r.GET("/admin", JWTAuthMiddleware(s), RoleAuthMiddleware(string(user.RoleAdmin)), func(c *gin.Context) {
		c.String(http.StatusOK, CurrentUserID(c))
	})
	r.GET("/kitchen", JWTAuthMiddleware(s), RoleAuthMiddleware(string(user.RoleKitchen)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	token, _, err := s.GenerateToken(testUser())
	require.NoError(t, err)

	do := func(path, header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusUnauthorized, do("/admin", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do("/admin", "Token "+token).Code)
	assert.Equal(t, http.StatusUnauthorized, do("/admin", "Bearer lixo").Code)

	ok := do("/admin", "Bearer "+token)
	assert.Equal(t, http.StatusOK, ok.Code)
	assert.Equal(t, "u1", ok.Body.String())

	assert.Equal(t, http.StatusForbidden, do("/kitchen", "Bearer "+token).Code)
}
