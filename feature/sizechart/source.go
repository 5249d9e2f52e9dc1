package sizechart

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"size-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// Config holds the size chart source settings.
type Config struct {
	// Source is file or storage.
	Source string `mapstructure:"source" default:"file"`
	// Path is the local CSV file used by the file source.
	Path string `mapstructure:"path" default:"./size_chart.csv"`
	// Object is the object name inside the storage bucket.
	Object string `mapstructure:"object" default:"size_chart.csv"`
}

// Source opens the raw size chart.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	String() string
}

// FileSource reads the chart from the local filesystem.
type FileSource struct {
	Path string
}

func (s FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open size chart: %w", err)
	}
	return f, nil
}

func (s FileSource) String() string {
	return "file:" + s.Path
}

// StorageSource reads the chart from an object storage bucket.
type StorageSource struct {
	Client storage.Client
	Bucket string
	Object string
}

func (s StorageSource) Open(ctx context.Context) (io.ReadCloser, error) {
	exists, err := s.Client.BucketExists(ctx, s.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", s.Bucket)
	}
	obj, err := s.Client.GetObject(ctx, s.Bucket, s.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get size chart object %s: %w", s.Object, err)
	}
	return obj, nil
}

func (s StorageSource) String() string {
	return "storage:" + s.Bucket + "/" + s.Object
}

// NewSource builds the configured source. client may be nil for the file source.
func NewSource(cfg Config, client storage.Client, bucket string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Source)) {
	case "", "file":
		if cfg.Path == "" {
			return nil, fmt.Errorf("size chart path is required for the file source")
		}
		return FileSource{Path: cfg.Path}, nil
	case "storage":
		if client == nil {
			return nil, fmt.Errorf("storage client is required for the storage source")
		}
		return StorageSource{Client: client, Bucket: bucket, Object: cfg.Object}, nil
	default:
		return nil, fmt.Errorf("unknown size chart source: %s", cfg.Source)
	}
}
