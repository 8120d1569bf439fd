package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"joigo-tour-backend/config"
	"joigo-tour-backend/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthTest(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.Cfg.JWT = config.JWTConfig{
		SecretKey:   "test-secret",
		ExpireHours: 1,
	}
}

func performRequest(handler gin.HandlerFunc, middlewares []gin.HandlerFunc, authHeader string) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/probe", append(middlewares, handler)...)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRoundTrip(t *testing.T) {
	setupAuthTest(t)

	token, err := GenerateToken("user-1", model.RoleMember)
	require.NoError(t, err)

	var gotUserID, gotRole string
	handler := func(c *gin.Context) {
		gotUserID = c.GetString(ContextUserID)
		gotRole = c.GetString(ContextRole)
		c.Status(http.StatusOK)
	}

	w := performRequest(handler, []gin.HandlerFunc{AuthMiddleware()}, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", gotUserID)
	assert.Equal(t, model.RoleMember, gotRole)
}

func TestAuthMiddlewareRejectsBadCredentials(t *testing.T) {
	setupAuthTest(t)

	handler := func(c *gin.Context) { c.Status(http.StatusOK) }

	w := performRequest(handler, []gin.HandlerFunc{AuthMiddleware()}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(handler, []gin.HandlerFunc{AuthMiddleware()}, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(handler, []gin.HandlerFunc{AuthMiddleware()}, "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuthMiddlewareAllowsAnonymous(t *testing.T) {
	setupAuthTest(t)

	handler := func(c *gin.Context) {
		assert.Nil(t, UserIDFrom(c))
		c.Status(http.StatusOK)
	}

	w := performRequest(handler, []gin.HandlerFunc{OptionalAuthMiddleware()}, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminMiddleware(t *testing.T) {
	setupAuthTest(t)

	handler := func(c *gin.Context) { c.Status(http.StatusOK) }

	memberToken, err := GenerateToken("user-1", model.RoleMember)
	require.NoError(t, err)
	adminToken, err := GenerateToken("user-2", model.RoleAdmin)
	require.NoError(t, err)

	chain := []gin.HandlerFunc{AuthMiddleware(), AdminMiddleware()}

	w := performRequest(handler, chain, "Bearer "+memberToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performRequest(handler, chain, "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
