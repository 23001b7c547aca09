package api

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/docextract/backend/internal/config"
	"github.com/docextract/backend/internal/extract"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// formPart describes one part of a multipart test body.
type formPart struct {
	name        string
	filename    string
	noFilename  bool // omit the filename parameter entirely
	contentType string
	body        string
}

func filePart(filename, contentType, body string) formPart {
	return formPart{name: fileField, filename: filename, contentType: contentType, body: body}
}

func multipartBody(t *testing.T, parts ...formPart) (*bytes.Buffer, string) {
	t.Helper()
	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)
	for _, p := range parts {
		h := make(textproto.MIMEHeader)
		disposition := fmt.Sprintf(`form-data; name=%q`, p.name)
		if !p.noFilename {
			disposition += fmt.Sprintf(`; filename=%q`, p.filename)
		}
		h.Set("Content-Disposition", disposition)
		if p.contentType != "" {
			h.Set("Content-Type", p.contentType)
		}
		pw, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = pw.Write([]byte(p.body))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func newExtractRequest(t *testing.T, parts ...formPart) *http.Request {
	t.Helper()
	body, contentType := multipartBody(t, parts...)
	req := httptest.NewRequest(http.MethodPost, "/api/extract", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	return req
}

// newTestEcho builds an Echo instance with the production middleware and API routes.
func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Advanced.EnableRequestLogging = false

	e := echo.New()
	SetupMiddleware(e, cfg)
	RegisterRoutes(e, NewHandlers(&Dependencies{
		Extractor: extract.NewExtractor(),
		Version:   "test",
	}))
	return e
}
