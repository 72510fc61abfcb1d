package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mitrabahan/backend/pkg/helpers"
)

func init() { gin.SetMode(gin.TestMode) }

func protectedRouter(jwt *helpers.JWTManager, roles ...string) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{Auth(jwt)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"account_id": c.GetString(CtxAccountIDKey),
			"role":       c.GetString(CtxRoleKey),
			"email":      c.GetString(CtxEmailKey),
		})
	})
	r.GET("/p", handlers...)
	return r
}

func TestAuthMissingToken(t *testing.T) {
	t.Parallel()
	jwt := &helpers.JWTManager{Secret: []byte("s"), TTL: time.Hour}
	r := protectedRouter(jwt)

	for _, header := range []string{"", "Basic abc", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/p", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthInvalidToken(t *testing.T) {
	t.Parallel()
	jwt := &helpers.JWTManager{Secret: []byte("s"), TTL: time.Hour}
	other := &helpers.JWTManager{Secret: []byte("different"), TTL: time.Hour}
	token, _, err := other.Generate("acct-1", "a@example.com", "supplier")
	require.NoError(t, err)

	r := protectedRouter(jwt)
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthInjectsIdentity(t *testing.T) {
	t.Parallel()
	jwt := &helpers.JWTManager{Secret: []byte("s"), TTL: time.Hour}
	token, _, err := jwt.Generate("acct-7", "s@example.com", "supplier")
	require.NoError(t, err)

	r := protectedRouter(jwt)
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", "bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"account_id":"acct-7"`)
	require.Contains(t, w.Body.String(), `"role":"supplier"`)
	require.Contains(t, w.Body.String(), `"email":"s@example.com"`)
}

func TestRequireRole(t *testing.T) {
	t.Parallel()
	jwt := &helpers.JWTManager{Secret: []byte("s"), TTL: time.Hour}
	r := protectedRouter(jwt, "supplier", "admin")

	serve := func(role string) int {
		token, _, err := jwt.Generate("acct-1", "x@example.com", role)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/p", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, serve("supplier"))
	require.Equal(t, http.StatusOK, serve("admin"))
	require.Equal(t, http.StatusForbidden, serve("manufacturer"))
	require.Equal(t, http.StatusForbidden, serve("customer"))
}
