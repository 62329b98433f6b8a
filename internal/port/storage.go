package port

import (
	"context"
	"time"
)

// ObjectInfo describes one stored report.
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// ReportSource abstracts the read-only object storage reports are fetched from.
type ReportSource interface {
	// Download returns the object's bytes. A missing key yields domain.ErrNotFound
	// and an object larger than the configured limit yields domain.ErrFileTooLarge.
	Download(ctx context.Context, key string) ([]byte, error)
	// List returns the .json objects under prefix in key order.
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
}
