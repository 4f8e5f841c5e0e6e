package arm

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// ResourceGroupsClient is a minimal interface for azure ResourceGroupsClient
type ResourceGroupsClient interface {
	Get(ctx context.Context, resourceGroupName string, options *armresources.ResourceGroupsClientGetOptions) (armresources.ResourceGroupsClientGetResponse, error)
	CreateOrUpdate(ctx context.Context, resourceGroupName string, parameters armresources.ResourceGroup, options *armresources.ResourceGroupsClientCreateOrUpdateOptions) (armresources.ResourceGroupsClientCreateOrUpdateResponse, error)
	ResourceGroupsClientAddons
}

// ResourceGroupsClientAddons contains addons for ResourceGroupsClient
type ResourceGroupsClientAddons interface {
	DeleteAndWait(ctx context.Context, resourceGroupName string, options *armresources.ResourceGroupsClientBeginDeleteOptions) error
}

type resourceGroupsClient struct {
	*armresources.ResourceGroupsClient
	options *Options
}

var _ ResourceGroupsClient = &resourceGroupsClient{}

// NewResourceGroupsClient creates a new ResourceGroupsClient
func NewResourceGroupsClient(subscriptionID string, options *Options) (ResourceGroupsClient, error) {
	clientFactory, err := armresources.NewClientFactory(subscriptionID, options.Credential, options.ClientOptions)
	if err != nil {
		return nil, err
	}

	return &resourceGroupsClient{ResourceGroupsClient: clientFactory.NewResourceGroupsClient(), options: options}, nil
}

func (c *resourceGroupsClient) DeleteAndWait(ctx context.Context, resourceGroupName string, options *armresources.ResourceGroupsClientBeginDeleteOptions) error {
	poller, err := c.ResourceGroupsClient.BeginDelete(ctx, resourceGroupName, options)
	if err != nil {
		return err
	}
	_, err = poller.PollUntilDone(ctx, c.options.pollUntilDoneOptions())
	return err
}
