// Package extract builds the extraction result returned for an uploaded document.
//
// No document content is inspected yet: every upload yields the same sample
// invoice fields, alongside metadata taken from the request.
package extract

import (
	"time"

	"github.com/docextract/backend/internal/models"
)

// TimestampLayout formats UploadedAt as an ISO-8601 UTC timestamp with a trailing Z.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// sampleFields must never be handed out directly; callers get a copy.
var sampleFields = map[string]string{
	"invoiceId": "INV-001234",
	"vendor":    "Contoso Ltd.",
	"total":     "$1,234.56",
	"dueDate":   "2025-11-30",
}

// SampleFields returns a fresh copy of the fixed sample record.
func SampleFields() map[string]string {
	fields := make(map[string]string, len(sampleFields))
	for k, v := range sampleFields {
		fields[k] = v
	}
	return fields
}

// Extractor turns an upload into UploadMetadata. It holds no per-request state
// and is safe for concurrent use.
type Extractor struct {
	now func() time.Time
}

// NewExtractor creates an Extractor that stamps results with the wall clock.
func NewExtractor() *Extractor {
	return NewExtractorWithClock(time.Now)
}

// NewExtractorWithClock creates an Extractor with a custom clock.
func NewExtractorWithClock(now func() time.Time) *Extractor {
	if now == nil {
		now = time.Now
	}
	return &Extractor{now: now}
}

// Describe builds the response record for file. contentLength is the request's
// declared Content-Length (the whole multipart body, not the file alone);
// unknown or non-positive values are reported as 0.
func (x *Extractor) Describe(file models.UploadedFile, contentLength int64) *models.UploadMetadata {
	contentType := file.ContentType
	if contentType == "" {
		contentType = models.UnknownContentType
	}

	size := contentLength
	if size < 0 {
		size = 0
	}

	return &models.UploadMetadata{
		FileName:     file.Name,
		ContentType:  contentType,
		SizeBytes:    size,
		UploadedAt:   x.now().UTC().Format(TimestampLayout),
		SampleFields: SampleFields(),
	}
}
