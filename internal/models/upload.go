package models

// UnknownContentType is reported when an uploaded part declares no MIME type.
const UnknownContentType = "unknown"

// UploadedFile is the part of a multipart upload the extractor looks at.
// The file bytes are never read.
type UploadedFile struct {
	Name        string
	ContentType string
}

// UploadMetadata describes an upload together with the fields "extracted" from it.
// It lives for a single request.
type UploadMetadata struct {
	FileName     string            `json:"fileName" msgpack:"fileName"`
	ContentType  string            `json:"contentType" msgpack:"contentType"`
	SizeBytes    int64             `json:"sizeBytes" msgpack:"sizeBytes"`
	UploadedAt   string            `json:"uploadedAt" msgpack:"uploadedAt"`
	SampleFields map[string]string `json:"sampleFields" msgpack:"sampleFields"`
}
