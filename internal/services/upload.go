package services

import (
	"context"
	"io"
)

// UploadRelay forwards a file body to an external host and returns a durable
// link to it. Previously uploaded objects are never removed.
type UploadRelay interface {
	Name() string
	Upload(ctx context.Context, filename, mimeType string, body io.Reader) (string, error)
}

type UploadInput struct {
	Filename string
	MimeType string
	Body     io.Reader
}
