package arm

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
)

// SubscriptionsClient is a minimal interface for azure SubscriptionsClient
type SubscriptionsClient interface {
	Get(ctx context.Context, subscriptionID string, options *armsubscriptions.ClientGetOptions) (armsubscriptions.ClientGetResponse, error)
	SubscriptionsClientAddons
}

// SubscriptionsClientAddons contains addons for SubscriptionsClient
type SubscriptionsClientAddons interface {
	List(ctx context.Context) ([]*armsubscriptions.Subscription, error)
}

type subscriptionsClient struct {
	*armsubscriptions.Client
}

var _ SubscriptionsClient = &subscriptionsClient{}

// NewSubscriptionsClient creates a new SubscriptionsClient
func NewSubscriptionsClient(options *Options) (SubscriptionsClient, error) {
	client, err := armsubscriptions.NewClient(options.Credential, options.ClientOptions)
	if err != nil {
		return nil, err
	}

	return &subscriptionsClient{Client: client}, nil
}

func (c *subscriptionsClient) List(ctx context.Context) (result []*armsubscriptions.Subscription, err error) {
	pager := c.Client.NewListPager(nil)

	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		result = append(result, page.Value...)
	}
	return result, nil
}
