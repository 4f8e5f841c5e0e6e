//go:generate mockgen -destination=../../mocks/mock_provider.go -package=mocks github.com/optum/vmdeploy/pkg/cloud Provider

package cloud

import (
	"context"
	"errors"
)

var (
	// ErrLocationConflict is returned when the resource group already exists in another region
	ErrLocationConflict = errors.New("resource group exists in a different location")
	// ErrNameUnavailable is returned when a storage account name is taken in the global namespace
	ErrNameUnavailable = errors.New("storage account name is not available")
	// ErrDeploymentFailed is returned when a deployment reaches a terminal state other than Succeeded
	ErrDeploymentFailed = errors.New("deployment failed")
	// ErrNotAuthenticated is returned when a management call is made before Authenticate
	ErrNotAuthenticated = errors.New("provider is not authenticated")
	// ErrNoSubscription is returned when no enabled subscription can be selected
	ErrNoSubscription = errors.New("no enabled subscription available")
)

// Provider is the cloud management surface vmdeploy orchestrates. Every method blocks until the
// cloud reports the outcome of the operation.
type Provider interface {
	Authenticate(ctx context.Context) error
	SelectSubscription(ctx context.Context) (Subscription, error)
	CreateResourceGroup(ctx context.Context, name string, location string) (ResourceGroup, error)
	CreateStorageAccount(ctx context.Context, group ResourceGroup, name string) (StorageAccount, error)
	GetAccountKeys(ctx context.Context, account StorageAccount) ([]AccountKey, error)
	CreateContainer(ctx context.Context, connectionString string, name string) (Container, error)
	SetContainerPermissions(ctx context.Context, connectionString string, container Container, access PublicAccess) error
	UploadBlob(ctx context.Context, connectionString string, container Container, blobName string, data []byte) (Blob, error)
	Deploy(ctx context.Context, request DeploymentRequest) (DeploymentResult, error)
	DeleteResourceGroup(ctx context.Context, name string) error
}
