package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success_RecordHTTPMetrics", func(t *testing.T) {
		provider, err := NewProvider("test_app")
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, provider.Shutdown(context.Background()))
		}()

		router := gin.New()
		router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "test_app"))
		router.POST("/v1/cards/validate", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"valid": true})
		})
		router.GET("/v1/audit-records", func(c *gin.Context) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		})

		for range 3 {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/cards/validate", strings.NewReader("{}"))
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/audit-records", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/missing", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)

		output := scrape(t, provider)
		assertMetricLine(
			t,
			output,
			`test_app_http_requests_total`,
			`method="POST".*path="/v1/cards/validate".*status_code="200"`,
			`3`,
		)
		assertMetricLine(
			t,
			output,
			`test_app_http_requests_total`,
			`method="GET".*path="/v1/audit-records".*status_code="500"`,
			`1`,
		)
		assertMetricLine(t, output, `test_app_http_requests_total`, `path="unknown".*status_code="404"`, `1`)
		assert.Contains(t, output, "test_app_http_requests_in_flight")
	})
}

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "RoutePattern", input: "/v1/cards/validate", expected: "/v1/cards/validate"},
		{name: "EmptyPath", input: "", expected: "unknown"},
		{name: "RootPath", input: "/", expected: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizePath(tt.input))
		})
	}
}
