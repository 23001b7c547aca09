// request.go - Typed parsing of extract requests
package api

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/docextract/backend/internal/models"
)

// fileField is the multipart form field carrying the upload.
const fileField = "file"

// extractRequest is the typed view of a POST /api/extract request.
type extractRequest struct {
	File          models.UploadedFile
	ContentLength int64
}

// parseExtractRequest streams the multipart body until it reaches the first
// part named "file" that carries a filename parameter. Only that part's
// headers are consulted; its content is left unread.
//
// A part named "file" without a filename parameter is an ordinary form
// value and is skipped. A body that is not multipart has no file part.
func parseExtractRequest(r *http.Request) (*extractRequest, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
			return nil, NewMissingFileError()
		}
		return nil, fmt.Errorf("opening multipart body: %w", err)
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, NewMissingFileError()
		}
		if err != nil {
			return nil, fmt.Errorf("reading multipart body: %w", err)
		}

		if part.FormName() != fileField {
			continue
		}

		filename, ok := dispositionFilename(part.Header.Get("Content-Disposition"))
		if !ok {
			continue
		}
		if filename == "" {
			return nil, NewEmptyFilenameError()
		}

		return &extractRequest{
			File: models.UploadedFile{
				Name:        filename,
				ContentType: mediaType(part.Header.Get("Content-Type")),
			},
			ContentLength: r.ContentLength,
		}, nil
	}
}

// dispositionFilename returns the raw filename parameter of a
// Content-Disposition header and whether it was present at all.
// multipart.Part.FileName cannot tell an absent filename from an empty one.
func dispositionFilename(header string) (string, bool) {
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return "", false
	}
	name, ok := params["filename"]
	return name, ok
}

// mediaType strips parameters from a Content-Type value and lower-cases it.
// An empty result means the part declared no type.
func mediaType(header string) string {
	mt, _, _ := strings.Cut(header, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}
