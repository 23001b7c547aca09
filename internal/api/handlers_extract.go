// handlers_extract.go - Document extraction handlers
package api

import (
	"net/http"
	"strings"

	"github.com/docextract/backend/internal/extract"
	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"
)

// MIMEApplicationMsgpack is the media type clients send in Accept to get msgpack.
const MIMEApplicationMsgpack = "application/msgpack"

// ExtractHandlerImpl implements the ExtractHandler interface
type ExtractHandlerImpl struct {
	extractor *extract.Extractor
}

// NewExtractHandler creates a new extract handler instance
func NewExtractHandler(extractor *extract.Extractor) ExtractHandler {
	if extractor == nil {
		extractor = extract.NewExtractor()
	}
	return &ExtractHandlerImpl{
		extractor: extractor,
	}
}

// HandleExtract accepts a multipart upload with a "file" part and returns its
// metadata together with the extracted fields. Nothing is stored.
func (h *ExtractHandlerImpl) HandleExtract(c echo.Context) error {
	req, err := parseExtractRequest(c.Request())
	if err != nil {
		return err
	}

	meta := h.extractor.Describe(req.File, req.ContentLength)
	c.Logger().Debugf("extract: file=%q type=%s size=%d", meta.FileName, meta.ContentType, meta.SizeBytes)

	if wantsMsgpack(c) {
		data, err := msgpack.Marshal(meta)
		if err != nil {
			return NewInternalError("failed to encode msgpack", err)
		}
		return c.Blob(http.StatusOK, MIMEApplicationMsgpack, data)
	}

	return c.JSON(http.StatusOK, meta)
}

// wantsMsgpack reports whether the client asked for msgpack instead of JSON.
func wantsMsgpack(c echo.Context) bool {
	for _, accept := range strings.Split(c.Request().Header.Get(echo.HeaderAccept), ",") {
		mt, _, _ := strings.Cut(accept, ";")
		if strings.EqualFold(strings.TrimSpace(mt), MIMEApplicationMsgpack) {
			return true
		}
	}
	return false
}
