package service

import "context"

// ObjectStorage uploads image payloads and returns a public URL to persist
// on the owning row. The payload arrives base64-encoded from the client.
type ObjectStorage interface {
	// UploadBase64 decodes the payload, stores it under a key derived from
	// filename, and returns the public URL.
	UploadBase64(ctx context.Context, payload, filename, contentType string) (string, error)
}
