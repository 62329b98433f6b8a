package router_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volumetrico/internal/config"
	"volumetrico/internal/handler"
	"volumetrico/internal/router"
	"volumetrico/internal/service"
	"volumetrico/internal/validator/report"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{MaxUploadBytes: 1 << 20},
		Validation: config.ValidationConfig{
			CheckFileName:  false,
			StrictTopLevel: true,
			MaxReportBytes: 1 << 20,
		},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
		CORS:    config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

func newServer(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := testConfig()
	reg := prometheus.NewRegistry()
	svc := service.NewValidationService(report.NewEngine(), nil, &cfg.Validation, service.NewMetrics(reg))
	return router.Setup(cfg,
		handler.NewValidationHandler(svc, cfg.Server.MaxUploadBytes),
		handler.NewHealthHandler(false),
		reg,
	)
}

func upload(t *testing.T, r *gin.Engine, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, _ = part.Write(content)
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/reports/validate", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newServer(t)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestValidate_RejectsNonJSONUpload(t *testing.T) {
	w := upload(t, newServer(t), "reporte.pdf", []byte("%PDF-1.4"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "UNSUPPORTED_FILE_TYPE", resp.Error.Code)
}

func TestValidate_ReportsDefects(t *testing.T) {
	r := newServer(t)
	w := upload(t, r, "reporte.json", []byte(`{"Version": "1.0", "Extra": true}`))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Report struct {
				Valid      bool `json:"valid"`
				ErrorCount int  `json:"error_count"`
				Errors     []struct {
					Type  string `json:"type_error"`
					Error string `json:"error"`
				} `json:"errors"`
			} `json:"report"`
			JSONData string `json:"json_data"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.False(t, resp.Data.Report.Valid)
	assert.Equal(t, len(resp.Data.Report.Errors), resp.Data.Report.ErrorCount)
	assert.Contains(t, resp.Data.JSONData, "\"Extra\": true")

	metrics := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	r.ServeHTTP(metrics, req)
	assert.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), `volumetrico_reports_validated_total{outcome="invalid"} 1`)
}

func TestValidate_MalformedJSON(t *testing.T) {
	w := upload(t, newServer(t), "reporte.json", []byte(`{"Version": `))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_JSON")
}

func TestValidateObject_StorageDisabled(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/reports/validate-object", bytes.NewBufferString(`{"key":"a.json"}`))
	req.Header.Set("Content-Type", "application/json")
	newServer(t).ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestValidate_SampleReports(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.json"))
	require.NoError(t, err)
	r := newServer(t)
	for _, p := range paths {
		t.Run(filepath.Base(p), func(t *testing.T) {
			content, err := os.ReadFile(p)
			require.NoError(t, err)
			w := upload(t, r, filepath.Base(p), content)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}
