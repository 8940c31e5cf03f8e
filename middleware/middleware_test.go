package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RemowRamms/Flower-catalog/auth"
	"github.com/RemowRamms/Flower-catalog/middleware"
	"github.com/RemowRamms/Flower-catalog/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func protectedRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", handler, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func get(r *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestValidateToken(t *testing.T) {
	r := protectedRouter(middleware.ValidateToken(secret))

	w := get(r, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(r, map[string]string{"Authorization": "Bearer not-a-token"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := auth.IssueToken(models.User{ID: "u1", Role: models.RoleCustomer}, secret)
	require.NoError(t, err)

	w = get(r, map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusOK, w.Code)

	// Signed with a different secret
	other, err := auth.IssueToken(models.User{ID: "u1"}, "other-secret")
	require.NoError(t, err)
	w = get(r, map[string]string{"Authorization": "Bearer " + other})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	r := protectedRouter(middleware.RequireAdmin(secret, "api-key"))

	w := get(r, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(r, map[string]string{"X-API-KEY": "api-key"})
	require.Equal(t, http.StatusOK, w.Code)

	w = get(r, map[string]string{"X-API-KEY": "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	customer, err := auth.IssueToken(models.User{ID: "u1", Role: models.RoleCustomer}, secret)
	require.NoError(t, err)
	w = get(r, map[string]string{"Authorization": "Bearer " + customer})
	require.Equal(t, http.StatusForbidden, w.Code)

	adminToken, err := auth.IssueToken(models.User{ID: "u2", Role: models.RoleAdmin}, secret)
	require.NoError(t, err)
	w = get(r, map[string]string{"Authorization": "Bearer " + adminToken})
	require.Equal(t, http.StatusOK, w.Code)
}
