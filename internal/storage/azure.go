package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
)

// AzureStorage implements Gateway on an Azure Blob Storage container.
type AzureStorage struct {
	client     *azblob.Client
	container  string
	publicBase string
}

// NewAzureStorage creates a blob client from an account connection string.
// publicBase is the container URL, e.g. "https://acct.blob.core.windows.net/images".
func NewAzureStorage(connectionString, containerName, publicBase string) (*AzureStorage, error) {
	client, err := azblob.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("create azure blob client: %w", err)
	}
	return &AzureStorage{
		client:     client,
		container:  containerName,
		publicBase: publicBase,
	}, nil
}

// EnsureContainer creates the container with anonymous read access on blobs.
func (s *AzureStorage) EnsureContainer(ctx context.Context) error {
	_, err := s.client.CreateContainer(ctx, s.container, &azblob.CreateContainerOptions{
		Access: to.Ptr(container.PublicAccessTypeBlob),
	})
	if err != nil && !containerExists(err) {
		return fmt.Errorf("create container %q: %w", s.container, err)
	}
	return nil
}

// Put uploads reader as a block blob, overwriting any blob of the same name.
func (s *AzureStorage) Put(ctx context.Context, name string, reader io.Reader, _ int64, contentType string) error {
	_, err := s.client.UploadStream(ctx, s.container, name, reader, &azblob.UploadStreamOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: to.Ptr(contentType)},
	})
	if err != nil {
		return fmt.Errorf("upload blob %q: %w", name, err)
	}
	return nil
}

// List walks every page of the flat blob listing.
func (s *AzureStorage) List(ctx context.Context) ([]string, error) {
	var names []string
	pager := s.client.NewListBlobsFlatPager(s.container, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list blobs in %q: %w", s.container, err)
		}
		if page.Segment == nil {
			continue
		}
		for _, item := range page.Segment.BlobItems {
			if item != nil && item.Name != nil {
				names = append(names, *item.Name)
			}
		}
	}
	return names, nil
}

// PublicURL returns the anonymous-read URL of a blob.
func (s *AzureStorage) PublicURL(name string) string {
	return ObjectURL(s.publicBase, name)
}

func containerExists(err error) bool {
	return bloberror.HasCode(err, bloberror.ContainerAlreadyExists)
}
