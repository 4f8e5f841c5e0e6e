package arm

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
)

// AccountsClient is a minimal interface for azure storage AccountsClient
type AccountsClient interface {
	CheckNameAvailability(ctx context.Context, accountName armstorage.AccountCheckNameAvailabilityParameters, options *armstorage.AccountsClientCheckNameAvailabilityOptions) (armstorage.AccountsClientCheckNameAvailabilityResponse, error)
	ListKeys(ctx context.Context, resourceGroupName string, accountName string, options *armstorage.AccountsClientListKeysOptions) (armstorage.AccountsClientListKeysResponse, error)
	AccountsClientAddons
}

// AccountsClientAddons contains addons for AccountsClient
type AccountsClientAddons interface {
	CreateAndWait(ctx context.Context, resourceGroupName string, accountName string, parameters armstorage.AccountCreateParameters, options *armstorage.AccountsClientBeginCreateOptions) (armstorage.Account, error)
}

type accountsClient struct {
	*armstorage.AccountsClient
	options *Options
}

var _ AccountsClient = &accountsClient{}

// NewAccountsClient creates a new AccountsClient
func NewAccountsClient(subscriptionID string, options *Options) (AccountsClient, error) {
	clientFactory, err := armstorage.NewClientFactory(subscriptionID, options.Credential, options.ClientOptions)
	if err != nil {
		return nil, err
	}

	return &accountsClient{AccountsClient: clientFactory.NewAccountsClient(), options: options}, nil
}

func (c *accountsClient) CreateAndWait(ctx context.Context, resourceGroupName string, accountName string, parameters armstorage.AccountCreateParameters, options *armstorage.AccountsClientBeginCreateOptions) (armstorage.Account, error) {
	poller, err := c.AccountsClient.BeginCreate(ctx, resourceGroupName, accountName, parameters, options)
	if err != nil {
		return armstorage.Account{}, err
	}
	resp, err := poller.PollUntilDone(ctx, c.options.pollUntilDoneOptions())
	if err != nil {
		return armstorage.Account{}, err
	}
	return resp.Account, nil
}
