package arm

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
)

// BlobsClient is a minimal interface for the azure blob service client
type BlobsClient interface {
	CreateContainer(ctx context.Context, containerName string, o *azblob.CreateContainerOptions) (azblob.CreateContainerResponse, error)
	UploadBuffer(ctx context.Context, containerName string, blobName string, buffer []byte, o *azblob.UploadBufferOptions) (azblob.UploadBufferResponse, error)
	URL() string
	BlobsClientAddons
}

// BlobsClientAddons contains addons for BlobsClient
type BlobsClientAddons interface {
	SetContainerAccessPolicy(ctx context.Context, containerName string, access *container.PublicAccessType) error
}

type blobsClient struct {
	*azblob.Client
}

var _ BlobsClient = &blobsClient{}

// NewBlobsClientFromConnectionString creates a new BlobsClient authorized by a storage account key
func NewBlobsClientFromConnectionString(connectionString string, options *Options) (BlobsClient, error) {
	azBlobOptions := &azblob.ClientOptions{}
	if options.ClientOptions != nil {
		azBlobOptions.ClientOptions = options.ClientOptions.ClientOptions
	}

	client, err := azblob.NewClientFromConnectionString(connectionString, azBlobOptions)
	if err != nil {
		return nil, err
	}

	return &blobsClient{Client: client}, nil
}

// SetContainerAccessPolicy replaces the anonymous access level of a container, nil makes it private
func (c *blobsClient) SetContainerAccessPolicy(ctx context.Context, containerName string, access *container.PublicAccessType) error {
	_, err := c.Client.ServiceClient().NewContainerClient(containerName).SetAccessPolicy(ctx, &container.SetAccessPolicyOptions{
		Access: access,
	})
	return err
}
