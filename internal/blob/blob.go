// Package blob stores resume files and hands back shareable links.
package blob

import "context"

// Store uploads a file and returns a public-read link to it.
type Store interface {
	Upload(ctx context.Context, name, mimeType string, data []byte) (string, error)
}

// Discard accepts uploads and drops them. Used when no Drive credentials
// are configured, typically in local development.
type Discard struct{}

func (Discard) Upload(ctx context.Context, name, mimeType string, data []byte) (string, error) {
	return "N/A", nil
}
