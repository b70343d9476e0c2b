package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transactionapi/internal/apperror"
)

// TestGetWelcome tests the GET / endpoint
func TestGetWelcome(t *testing.T) {
	resp := makeRequest("GET", "/", nil)

	assertStatusCode(t, http.StatusOK, resp.Code)

	var welcome WelcomeResponse
	assertNoError(t, parseJSONResponse(resp, &welcome))
	assert.Equal(t, "1.0.0", welcome.Version)
	assert.Equal(t, "/health", welcome.Endpoints["health"])
	assert.Equal(t, "/api-docs", welcome.Endpoints["docs"])
}

// TestGetHealth tests the GET /health endpoint
func TestGetHealth(t *testing.T) {
	resp := makeRequest("GET", "/health", nil)

	assertStatusCode(t, http.StatusOK, resp.Code)

	var health HealthResponse
	assertNoError(t, parseJSONResponse(resp, &health))
	assert.Equal(t, "OK", health.Status)
	assert.NotEmpty(t, health.Timestamp)
	assert.GreaterOrEqual(t, health.Uptime, 0.0)
	assert.NotZero(t, health.Memory.Sys)
	assert.Equal(t, "local", health.Source)
}

// TestAPIDocs tests the swagger endpoints
func TestAPIDocs(t *testing.T) {
	t.Run("should serve the raw document", func(t *testing.T) {
		resp := makeRequest("GET", "/api-docs.json", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var doc map[string]interface{}
		assertNoError(t, parseJSONResponse(resp, &doc))
		assert.Equal(t, "2.0", doc["swagger"])

		paths, ok := doc["paths"].(map[string]interface{})
		require.True(t, ok)
		assert.Contains(t, paths, "/api/transactions/count")
		assert.Contains(t, paths, "/api/transactions/sum")
	})

	t.Run("should serve the swagger ui", func(t *testing.T) {
		resp := makeRequest("GET", "/api-docs/index.html", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "swagger")
	})
}

// TestNotFound tests the handling of unknown routes
func TestNotFound(t *testing.T) {
	resp := makeRequest("GET", "/api/unknown?x=1", nil)

	assertStatusCode(t, http.StatusNotFound, resp.Code)

	var errorResp ErrorResponse
	assertNoError(t, parseJSONResponse(resp, &errorResp))
	assert.False(t, errorResp.Success)
	assert.Equal(t, apperror.CodeNotFound, errorResp.Error)
	assert.Equal(t, "Route /api/unknown?x=1 not found", errorResp.Message)
	assert.Equal(t, http.StatusNotFound, errorResp.StatusCode)
}

// TestMiddleware tests request IDs, CORS and panic recovery
func TestMiddleware(t *testing.T) {
	t.Run("should generate a request id", func(t *testing.T) {
		resp := makeRequest("GET", "/health", nil)

		assert.Len(t, resp.Header().Get(requestIDHeader), 36)
	})

	t.Run("should keep the caller's request id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/health", nil)
		req.Header.Set(requestIDHeader, "trace-abc")
		resp := httptest.NewRecorder()

		testRouter.ServeHTTP(resp, req)

		assert.Equal(t, "trace-abc", resp.Header().Get(requestIDHeader))
	})

	t.Run("should answer CORS preflight for allowed origins", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/api/transactions", nil)
		req.Header.Set("Origin", "http://localhost:3001")
		req.Header.Set("Access-Control-Request-Method", "GET")
		resp := httptest.NewRecorder()

		testRouter.ServeHTTP(resp, req)

		assertStatusCode(t, http.StatusNoContent, resp.Code)
		assert.Equal(t, "http://localhost:3001", resp.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("should reject other origins", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/health", nil)
		req.Header.Set("Origin", "http://evil.test")
		resp := httptest.NewRecorder()

		testRouter.ServeHTTP(resp, req)

		assertStatusCode(t, http.StatusForbidden, resp.Code)
	})

	t.Run("should recover from panics with the error envelope", func(t *testing.T) {
		router := gin.New()
		router.Use(requestID(), recovery())
		router.GET("/boom", func(c *gin.Context) {
			panic("kaboom")
		})

		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest("GET", "/boom", nil))

		assertStatusCode(t, http.StatusInternalServerError, resp.Code)

		var errorResp ErrorResponse
		assertNoError(t, parseJSONResponse(resp, &errorResp))
		assert.Equal(t, apperror.CodeInternal, errorResp.Error)
		assert.Equal(t, "Internal server error", errorResp.Message)
	})
}
