package storage

import "context"

// PageStore persists rendered landing pages and derives their public URLs.
type PageStore interface {
	Write(ctx context.Context, name string, data []byte, contentType string) error
	PublicURL(name string) string
}
