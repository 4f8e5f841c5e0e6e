package arm

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// DeploymentsClient is a minimal interface for azure DeploymentsClient
type DeploymentsClient interface {
	Get(ctx context.Context, resourceGroupName string, deploymentName string, options *armresources.DeploymentsClientGetOptions) (armresources.DeploymentsClientGetResponse, error)
	DeploymentsClientAddons
}

// DeploymentsClientAddons contains addons for DeploymentsClient
type DeploymentsClientAddons interface {
	CreateOrUpdateAndWait(ctx context.Context, resourceGroupName string, deploymentName string, parameters armresources.Deployment, options *armresources.DeploymentsClientBeginCreateOrUpdateOptions) (armresources.DeploymentExtended, error)
}

type deploymentsClient struct {
	*armresources.DeploymentsClient
	options *Options
}

var _ DeploymentsClient = &deploymentsClient{}

// NewDeploymentsClient creates a new DeploymentsClient
func NewDeploymentsClient(subscriptionID string, options *Options) (DeploymentsClient, error) {
	clientFactory, err := armresources.NewClientFactory(subscriptionID, options.Credential, options.ClientOptions)
	if err != nil {
		return nil, err
	}

	return &deploymentsClient{DeploymentsClient: clientFactory.NewDeploymentsClient(), options: options}, nil
}

func (c *deploymentsClient) CreateOrUpdateAndWait(ctx context.Context, resourceGroupName string, deploymentName string, parameters armresources.Deployment, options *armresources.DeploymentsClientBeginCreateOrUpdateOptions) (armresources.DeploymentExtended, error) {
	poller, err := c.DeploymentsClient.BeginCreateOrUpdate(ctx, resourceGroupName, deploymentName, parameters, options)
	if err != nil {
		return armresources.DeploymentExtended{}, err
	}
	resp, err := poller.PollUntilDone(ctx, c.options.pollUntilDoneOptions())
	if err != nil {
		return armresources.DeploymentExtended{}, err
	}
	return resp.DeploymentExtended, nil
}
