package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/docextract/backend/internal/config"
	"github.com/docextract/backend/internal/extract"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name string
		want log.Lvl
	}{
		{"debug", log.DEBUG},
		{"INFO", log.INFO},
		{" warn ", log.WARN},
		{"warning", log.WARN},
		{"error", log.ERROR},
		{"off", log.OFF},
		{"", log.INFO},
		{"verbose", log.INFO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logLevel(tt.name))
		})
	}
}

func testServer(t *testing.T) *echo.Echo {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Advanced.EnableRequestLogging = false
	e, err := newServer(cfg, "test")
	require.NoError(t, err)
	return e
}

const uploadBody = "--B\r\n" +
	"Content-Disposition: form-data; name=\"file\"; filename=\"invoice.pdf\"\r\n" +
	"Content-Type: application/pdf\r\n" +
	"\r\n" +
	"%PDF-1.7\r\n" +
	"--B--\r\n"

func postUpload(e *echo.Echo) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/extract", strings.NewReader(uploadBody))
	req.Header.Set(echo.HeaderContentType, "multipart/form-data; boundary=B")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func getIndex(e *echo.Echo) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec
}

func TestServer_IndexUnaffectedByUploads(t *testing.T) {
	e := testServer(t)

	before := getIndex(e)
	require.Equal(t, http.StatusOK, before.Code)
	assert.Contains(t, before.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, postUpload(e).Code)
	}

	after := getIndex(e)
	assert.Equal(t, http.StatusOK, after.Code)
	assert.Equal(t, before.Body.String(), after.Body.String())
}

func TestServer_UploadRoundTrip(t *testing.T) {
	e := testServer(t)

	first := postUpload(e)
	second := postUpload(e)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)

	var a, b struct {
		FileName     string            `json:"fileName"`
		ContentType  string            `json:"contentType"`
		SizeBytes    int64             `json:"sizeBytes"`
		UploadedAt   string            `json:"uploadedAt"`
		SampleFields map[string]string `json:"sampleFields"`
	}
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))

	assert.Equal(t, "invoice.pdf", a.FileName)
	assert.Equal(t, "application/pdf", a.ContentType)
	assert.Equal(t, int64(len(uploadBody)), a.SizeBytes)
	assert.Equal(t, a.SampleFields, b.SampleFields)

	ta, err := time.Parse(extract.TimestampLayout, a.UploadedAt)
	require.NoError(t, err)
	tb, err := time.Parse(extract.TimestampLayout, b.UploadedAt)
	require.NoError(t, err)
	assert.False(t, tb.Before(ta))
}

func TestServer_StaticAssets(t *testing.T) {
	e := testServer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/nope.css", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}

func TestNewServer_BadAssetDirectory(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Web.StaticDirectory = "/does/not/exist"

	_, err := newServer(cfg, "test")
	assert.Error(t, err)
}
