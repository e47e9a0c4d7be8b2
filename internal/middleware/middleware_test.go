package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Jeomhps/projet-IAC/bola-go/internal/handlers/common"
)

func newRouter(log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), RequestLogger(log), Metrics())
	r.GET("/users/:userId", func(c *gin.Context) {
		c.Set(common.ContextUserKey, c.Param("userId"))
		c.String(http.StatusOK, "ok")
	})
	r.GET("/forbidden", func(c *gin.Context) {
		c.String(http.StatusForbidden, "no")
	})
	return r
}

func Test_RequestID(t *testing.T) {
	router := newRouter(zap.NewNop())

	t.Run("should keep caller supplied id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/alice", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	})

	t.Run("should generate an id when missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/alice", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
		require.NoError(t, err)
	})
}

func Test_RequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	router := newRouter(zap.New(core))

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/alice", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/forbidden", nil))

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	require.Equal(t, zap.InfoLevel, entries[0].Level)
	require.Equal(t, "/users/alice", first["path"])
	require.Equal(t, "alice", first["user"])
	require.EqualValues(t, http.StatusOK, first["status"])

	second := entries[1].ContextMap()
	require.Equal(t, zap.WarnLevel, entries[1].Level)
	require.Equal(t, "-", second["user"])
}
