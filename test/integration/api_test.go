// Package integration provides end-to-end tests for the cardcheck API against the
// CSV, PostgreSQL and MySQL audit stores.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auditDTO "github.com/allisson/cardcheck/internal/audit/http/dto"
	cardDTO "github.com/allisson/cardcheck/internal/card/http/dto"
	"github.com/allisson/cardcheck/internal/app"
	"github.com/allisson/cardcheck/internal/config"
	"github.com/allisson/cardcheck/internal/testutil"
)

const (
	validVisa   = "4111111111111111"
	invalidVisa = "4111111111111112"
	visaDigest  = "6099154214406cce6105a4688ab66533d3a55d1d7dd393cbccf22b487a22d922"
)

// integrationTestContext holds the running server and the container behind it.
type integrationTestContext struct {
	container    *app.Container
	server       *httptest.Server
	auditLogPath string
	cancel       context.CancelFunc
}

// makeRequest performs an HTTP request and returns the response and body.
func (ctx *integrationTestContext) makeRequest(
	t *testing.T,
	method, path, contentType string,
	body io.Reader,
) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, ctx.server.URL+path, body)
	require.NoError(t, err, "failed to create request")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	//nolint:gosec // controlled test environment with localhost URLs
	resp, err := client.Do(req)
	require.NoError(t, err, "failed to perform request")

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	if closeErr := resp.Body.Close(); closeErr != nil {
		t.Logf("Warning: failed to close response body: %v", closeErr)
	}

	return resp, respBody
}

func (ctx *integrationTestContext) postJSON(t *testing.T, path string, v any) (*http.Response, []byte) {
	t.Helper()

	payload, err := json.Marshal(v)
	require.NoError(t, err, "failed to marshal request body")
	return ctx.makeRequest(t, http.MethodPost, path, "application/json", bytes.NewReader(payload))
}

// setupIntegrationTest builds the container for the given audit driver and serves
// its router through httptest.
func setupIntegrationTest(t *testing.T, auditDriver string) *integrationTestContext {
	t.Helper()

	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		ServerHost:           "localhost",
		ServerPort:           8080,
		LogLevel:             "error",
		AuditEnabled:         true,
		AuditDriver:          auditDriver,
		AuditHashAlgorithm:   "sha3-256",
		DBMaxOpenConnections: 10,
		DBMaxIdleConnections: 5,
		DBConnMaxLifetime:    time.Hour,
		MetricsEnabled:       true,
		MetricsNamespace:     "cardcheck_integration",
	}

	switch auditDriver {
	case config.AuditDriverPostgres:
		testutil.SkipIfNoPostgres(t)
		db := testutil.SetupPostgresDB(t)
		testutil.TeardownDB(t, db)
		cfg.DBConnectionString = testutil.GetPostgresTestDSN()
	case config.AuditDriverMySQL:
		testutil.SkipIfNoMySQL(t)
		db := testutil.SetupMySQLDB(t)
		testutil.TeardownDB(t, db)
		cfg.DBConnectionString = testutil.GetMySQLTestDSN()
	default:
		cfg.AuditLogPath = filepath.Join(t.TempDir(), "validation_audit.csv")
	}

	container := app.NewContainer(cfg)

	serverCtx, cancel := context.WithCancel(context.Background())
	httpSrv, err := container.HTTPServer(serverCtx)
	require.NoError(t, err, "failed to get HTTP server")

	handler := httpSrv.GetHandler()
	require.NotNil(t, handler, "handler should not be nil after SetupRouter")

	return &integrationTestContext{
		container:    container,
		server:       httptest.NewServer(handler),
		auditLogPath: cfg.AuditLogPath,
		cancel:       cancel,
	}
}

// teardownIntegrationTest cleans up all resources.
func teardownIntegrationTest(t *testing.T, ctx *integrationTestContext) {
	t.Helper()

	if ctx.server != nil {
		ctx.server.Close()
	}
	ctx.cancel()

	if err := ctx.container.Shutdown(context.Background()); err != nil {
		t.Logf("Warning: container shutdown error: %v", err)
	}
}

// TestIntegration_Health_BasicChecks tests the liveness and readiness probes.
func TestIntegration_Health_BasicChecks(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testCases := []struct {
		name        string
		auditDriver string
		component   string
	}{
		{"CSV", config.AuditDriverCSV, "audit_log"},
		{"PostgreSQL", config.AuditDriverPostgres, "database"},
		{"MySQL", config.AuditDriverMySQL, "database"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := setupIntegrationTest(t, tc.auditDriver)
			defer teardownIntegrationTest(t, ctx)

			resp, body := ctx.makeRequest(t, http.MethodGet, "/health", "", nil)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.JSONEq(t, `{"status":"healthy"}`, string(body))

			resp, body = ctx.makeRequest(t, http.MethodGet, "/ready", "", nil)
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			var response struct {
				Status     string            `json:"status"`
				Components map[string]string `json:"components"`
			}
			require.NoError(t, json.Unmarshal(body, &response))
			assert.Equal(t, "ready", response.Status)
			assert.Equal(t, "ok", response.Components[tc.component])
		})
	}
}

// TestIntegration_Validation_CompleteFlow validates single numbers and batches,
// then reads the resulting audit trail back.
func TestIntegration_Validation_CompleteFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testCases := []struct {
		name        string
		auditDriver string
	}{
		{"CSV", config.AuditDriverCSV},
		{"PostgreSQL", config.AuditDriverPostgres},
		{"MySQL", config.AuditDriverMySQL},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := setupIntegrationTest(t, tc.auditDriver)
			defer teardownIntegrationTest(t, ctx)

			t.Run("01_ValidateValidNumber", func(t *testing.T) {
				resp, body := ctx.postJSON(t, "/v1/cards/validate", map[string]any{"card_number": validVisa})
				require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

				var response cardDTO.ValidateCardResponse
				require.NoError(t, json.Unmarshal(body, &response))
				assert.True(t, response.Valid)
				assert.True(t, response.Audited)
				assert.Equal(t, "Visa", response.Brand)
				assert.Equal(t, "411111******1111", response.MaskedNumber)
			})

			t.Run("02_ValidateInvalidNumber", func(t *testing.T) {
				resp, body := ctx.postJSON(t, "/v1/cards/validate", map[string]any{"card_number": invalidVisa})
				require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

				var response cardDTO.ValidateCardResponse
				require.NoError(t, json.Unmarshal(body, &response))
				assert.False(t, response.Valid)
				assert.True(t, response.Audited)
			})

			t.Run("03_ValidateWithoutAudit", func(t *testing.T) {
				resp, body := ctx.postJSON(t, "/v1/cards/validate", map[string]any{
					"card_number": "378282246310005",
					"audit":       false,
				})
				require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

				var response cardDTO.ValidateCardResponse
				require.NoError(t, json.Unmarshal(body, &response))
				assert.True(t, response.Valid)
				assert.False(t, response.Audited)
				assert.Equal(t, "American Express", response.Brand)
			})

			t.Run("04_MalformedNumberIsRejected", func(t *testing.T) {
				resp, _ := ctx.postJSON(t, "/v1/cards/validate", map[string]any{"card_number": "4111-1111-1111-1111"})
				assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
			})

			t.Run("05_ValidateBatch", func(t *testing.T) {
				batch := "name,card_number\nalice,5555555555554444\nbob, 4111111111111112 \ncarol,12ab\n"
				resp, body := ctx.makeRequest(
					t,
					http.MethodPost,
					"/v1/cards/validate-batch?audit=true",
					"text/csv",
					strings.NewReader(batch),
				)
				require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

				var response cardDTO.ValidateBatchResponse
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, 3, response.Summary.Total)
				assert.Equal(t, 1, response.Summary.Valid)
				assert.Equal(t, 1, response.Summary.Invalid)
				assert.Equal(t, 1, response.Summary.Errors)
				require.Len(t, response.Results, 3)
				assert.Equal(t, "Mastercard", response.Results[0].Brand)
				assert.NotContains(t, string(body), "5555555555554444")
			})

			t.Run("06_ListAuditRecords", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/audit-records?limit=100", "", nil)
				require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

				var response auditDTO.ListAuditRecordsResponse
				require.NoError(t, json.Unmarshal(body, &response))

				// two single validations plus two well-formed batch rows
				require.Len(t, response.Data, 4)
				assert.Equal(t, visaDigest, response.Data[0].CardHash)
				assert.True(t, response.Data[0].IsValid)
				assert.False(t, response.Data[1].IsValid)
				assert.Equal(t, "Mastercard", response.Data[2].CardType)
				assert.NotContains(t, string(body), validVisa)
			})

			if tc.auditDriver == config.AuditDriverCSV {
				t.Run("07_CSVLogHoldsOnlyDigests", func(t *testing.T) {
					content, err := os.ReadFile(ctx.auditLogPath)
					require.NoError(t, err)

					lines := strings.Split(strings.TrimSpace(string(content)), "\n")
					require.Len(t, lines, 5)
					assert.Equal(t, "timestamp,card_hash,is_valid,card_type,card_length", lines[0])
					assert.NotContains(t, string(content), validVisa)
					assert.NotContains(t, string(content), "5555555555554444")
				})
			}
		})
	}
}
