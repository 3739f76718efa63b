package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCORSRouter(config CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS(config))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func TestCORSEchoesMatchedOriginOnly(t *testing.T) {
	r := newCORSRouter(CORSConfig{
		AllowOrigins: []string{"https://clinic-a.example", "https://clinic-b.example"},
		AllowMethods: []string{http.MethodGet},
		AllowHeaders: []string{"Authorization"},
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://clinic-a.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "https://clinic-a.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSOmitsHeaderForUnknownOrigin(t *testing.T) {
	r := newCORSRouter(CORSConfig{
		AllowOrigins: []string{"https://clinic-a.example"},
		AllowMethods: []string{http.MethodGet},
		AllowHeaders: []string{"Authorization"},
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSWildcard(t *testing.T) {
	r := newCORSRouter(DefaultCORSConfig())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight(t *testing.T) {
	r := newCORSRouter(CORSConfig{
		AllowOrigins: []string{"https://clinic-a.example"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Authorization"},
	})

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://clinic-a.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://clinic-a.example", w.Header().Get("Access-Control-Allow-Origin"))
}
