package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newIdentityRouter(cfg *IdentityConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	g.Use(Identity(cfg))
	g.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c))
	})
	g.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return g
}

func doRequest(g *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func TestIdentityValidToken(t *testing.T) {
	g := newIdentityRouter(&IdentityConfig{
		Tokens: map[string]string{"token-a": "alice", "token-b": "bob"},
	})

	w := doRequest(g, "/whoami", "Bearer token-a")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())

	w = doRequest(g, "/whoami", "Bearer token-b")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bob", w.Body.String())
}

func TestIdentityRejectsBadTokens(t *testing.T) {
	g := newIdentityRouter(&IdentityConfig{
		Tokens: map[string]string{"token-a": "alice"},
	})

	for name, header := range map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic token-a",
		"unknown token":  "Bearer token-z",
		"bare token":     "token-a",
	} {
		w := doRequest(g, "/whoami", header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
	}
}

func TestIdentityHealthzStaysOpen(t *testing.T) {
	g := newIdentityRouter(&IdentityConfig{
		Tokens: map[string]string{"token-a": "alice"},
	})

	w := doRequest(g, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIdentityDevMode(t *testing.T) {
	g := newIdentityRouter(&IdentityConfig{DevUser: "local-dev"})

	w := doRequest(g, "/whoami", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "local-dev", w.Body.String())
}
