package service

import "context"

// ExportStorage stores exported plan documents.
type ExportStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Close() error
}
