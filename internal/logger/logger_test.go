package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("parses level", func(t *testing.T) {
		log := New("debug", false)
		assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
	})

	t.Run("falls back to info for unknown level", func(t *testing.T) {
		log := New("loud", true)
		assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
	})

	t.Run("empty level is info", func(t *testing.T) {
		log := New("", false)
		assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
	})
}

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	log.Info().Msg("test message")

	assert.Contains(t, buf.String(), "test message")
}

func TestFromContext(t *testing.T) {
	t.Run("returns stored logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		ctx := WithContext(context.Background(), NewWithWriter(buf))

		FromContext(ctx).Info().Msg("test")

		assert.NotZero(t, buf.Len())
	})

	t.Run("returns default logger when none stored", func(t *testing.T) {
		log := FromContext(context.Background())
		assert.NotEqual(t, zerolog.Disabled, log.GetLevel())
	})
}

func TestFromContextOr(t *testing.T) {
	t.Run("prefers the stored logger", func(t *testing.T) {
		stored, fallback := &bytes.Buffer{}, &bytes.Buffer{}
		ctx := WithContext(context.Background(), NewWithWriter(stored))

		FromContextOr(ctx, NewWithWriter(fallback)).Warn().Msg("upstream slow")

		assert.Contains(t, stored.String(), "upstream slow")
		assert.Zero(t, fallback.Len())
	})

	t.Run("uses the fallback without a stored logger", func(t *testing.T) {
		fallback := &bytes.Buffer{}

		FromContextOr(context.Background(), NewWithWriter(fallback)).Warn().Msg("upstream slow")

		assert.Contains(t, fallback.String(), "upstream slow")
	})
}

func TestForComponent(t *testing.T) {
	buf := &bytes.Buffer{}
	log := ForComponent(NewWithWriter(buf), "source")

	log.Info().Msg("fetched")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "source", entry["component"])
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	buf := &bytes.Buffer{}
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(RequestIDKey, "req-123")
		c.Next()
	})
	router.Use(Middleware(NewWithWriter(buf)))
	router.GET("/ping", func(c *gin.Context) {
		FromContext(c.Request.Context()).Debug().Msg("handler")
		c.Status(http.StatusTeapot)
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusTeapot, resp.Code)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	assert.Equal(t, "HTTP request", entry["message"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "/ping", entry["path"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
	assert.Equal(t, "req-123", entry["request_id"])
}
