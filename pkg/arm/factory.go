//go:generate mockgen -destination=../../mocks/mock_armclients.go -package=mocks github.com/optum/vmdeploy/pkg/arm ClientFactory,SubscriptionsClient,ResourceGroupsClient,DeploymentsClient,AccountsClient,BlobsClient

package arm

// ClientFactory builds the Azure clients. Management plane clients are scoped to a subscription,
// the blob client to a storage account connection string.
type ClientFactory interface {
	Subscriptions() (SubscriptionsClient, error)
	ResourceGroups(subscriptionID string) (ResourceGroupsClient, error)
	Deployments(subscriptionID string) (DeploymentsClient, error)
	Accounts(subscriptionID string) (AccountsClient, error)
	Blobs(connectionString string) (BlobsClient, error)
}

// SDKClientFactory implements ClientFactory with the Azure SDK for Go
type SDKClientFactory struct {
	Options *Options
}

var _ ClientFactory = &SDKClientFactory{}

// NewSDKClientFactory creates a new SDKClientFactory
func NewSDKClientFactory(options *Options) *SDKClientFactory {
	return &SDKClientFactory{Options: options}
}

func (f *SDKClientFactory) Subscriptions() (SubscriptionsClient, error) {
	return NewSubscriptionsClient(f.Options)
}

func (f *SDKClientFactory) ResourceGroups(subscriptionID string) (ResourceGroupsClient, error) {
	return NewResourceGroupsClient(subscriptionID, f.Options)
}

func (f *SDKClientFactory) Deployments(subscriptionID string) (DeploymentsClient, error) {
	return NewDeploymentsClient(subscriptionID, f.Options)
}

func (f *SDKClientFactory) Accounts(subscriptionID string) (AccountsClient, error) {
	return NewAccountsClient(subscriptionID, f.Options)
}

func (f *SDKClientFactory) Blobs(connectionString string) (BlobsClient, error) {
	return NewBlobsClientFromConnectionString(connectionString, f.Options)
}
