// Package storage defines the object-storage gateway used to persist and list images.
// Swap implementations by changing the concrete type injected at startup: Azure Blob
// for the hosted deployment, MinIO for any S3-compatible provider.
package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/lanternfly/service/internal/config"
)

// Gateway is a single object container with public-read objects.
type Gateway interface {
	// EnsureContainer creates the container with public-read objects. An existing
	// container is not an error.
	EnsureContainer(ctx context.Context) error
	// Put writes reader under name, replacing any existing object of that name.
	// size is the exact byte count, or -1 if unknown.
	Put(ctx context.Context, name string, reader io.Reader, size int64, contentType string) error
	// List returns the names of every object in the container.
	List(ctx context.Context) ([]string, error)
	// PublicURL constructs the browser-accessible URL for a given name.
	PublicURL(name string) string
}

// New builds the Gateway selected by cfg.StorageDriver. It does not contact the
// backend; call EnsureContainer for that.
func New(cfg *config.Config) (Gateway, error) {
	switch cfg.StorageDriver {
	case config.DriverAzure:
		return NewAzureStorage(cfg.AzureConnectionString, cfg.Container, cfg.ContainerURL())
	case config.DriverS3:
		return NewMinioStorage(
			cfg.StorageEndpoint,
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			cfg.Container,
			cfg.ContainerURL(),
			cfg.StorageUseSSL,
		)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// ObjectURL joins a container base URL and a percent-encoded object name.
// Each "/"-separated segment is escaped on its own so virtual directories stay
// as path separators.
func ObjectURL(base, name string) string {
	segments := strings.Split(name, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.TrimRight(base, "/") + "/" + strings.Join(segments, "/")
}
