package cloud

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
	"github.com/briandowns/spinner"
	"github.com/optum/vmdeploy/pkg/arm"
	"github.com/optum/vmdeploy/pkg/auth"
	"github.com/sirupsen/logrus"
)

const storageAccountResourceType = "Microsoft.Storage/storageAccounts"

// AzureProvider implements Provider against Azure Resource Manager and Blob Storage
type AzureProvider struct {
	Authenticator auth.Authenticator
	Logger        *logrus.Entry
	// CloudName selects the sovereign cloud (AzurePublic, AzureChina, AzureGovernment)
	CloudName string
	// NewClientFactory builds the client factory once a credential is available
	NewClientFactory func(credential azcore.TokenCredential) arm.ClientFactory
	// ShowProgress renders a spinner on stderr while long running operations are polled
	ShowProgress bool

	factory      arm.ClientFactory
	subscription Subscription

	mu          sync.Mutex
	blobClients map[string]arm.BlobsClient
}

var _ Provider = &AzureProvider{}

// NewAzureProvider creates an AzureProvider that talks to the Azure SDK
func NewAzureProvider(authenticator auth.Authenticator, cloudName string, pollFrequency time.Duration, logger *logrus.Entry) *AzureProvider {
	return &AzureProvider{
		Authenticator: authenticator,
		Logger:        logger,
		CloudName:     cloudName,
		NewClientFactory: func(credential azcore.TokenCredential) arm.ClientFactory {
			return arm.NewSDKClientFactory(&arm.Options{
				Credential:    credential,
				ClientOptions: arm.NewClientOptions(cloudName),
				PollFrequency: pollFrequency,
			})
		},
	}
}

// Authenticate builds the credential and requests a management token with it
func (p *AzureProvider) Authenticate(ctx context.Context) error {
	credential, err := p.Authenticator.GetCredential(p.Logger)
	if err != nil {
		return err
	}

	_, err = credential.GetToken(ctx, policy.TokenRequestOptions{
		Scopes: []string{arm.ResourceManagerScope(p.CloudName)},
	})
	if err != nil {
		p.Logger.WithError(err).Error("Unable to authenticate. Token request was rejected")
		return err
	}

	p.factory = p.NewClientFactory(credential)

	return nil
}

// SelectSubscription uses the configured subscription, or the first enabled subscription visible to the credential
func (p *AzureProvider) SelectSubscription(ctx context.Context) (Subscription, error) {
	if p.factory == nil {
		return Subscription{}, ErrNotAuthenticated
	}

	client, err := p.factory.Subscriptions()
	if err != nil {
		return Subscription{}, err
	}

	preferred, err := p.Authenticator.GetSubscriptionID(p.Logger)
	if err != nil {
		return Subscription{}, err
	}

	var selected *armsubscriptions.Subscription

	if preferred != "" {
		resp, err := client.Get(ctx, preferred, nil)
		if err != nil {
			return Subscription{}, err
		}

		if !enabled(&resp.Subscription) {
			return Subscription{}, fmt.Errorf("%w: subscription %s is %s", ErrNoSubscription, preferred, deref((*string)(resp.State)))
		}

		selected = &resp.Subscription
	} else {
		subscriptions, err := client.List(ctx)
		if err != nil {
			return Subscription{}, err
		}

		for _, s := range subscriptions {
			if enabled(s) {
				selected = s
				break
			}
		}

		if selected == nil {
			return Subscription{}, ErrNoSubscription
		}
	}

	p.subscription = Subscription{
		ID:          deref(selected.SubscriptionID),
		DisplayName: deref(selected.DisplayName),
		TenantID:    deref(selected.TenantID),
	}

	p.Logger.WithField("subscriptionID", p.subscription.ID).Debugf("Selected subscription %s", p.subscription.DisplayName)

	return p.subscription, nil
}

// CreateResourceGroup creates the group, or reuses it when it already exists in the same location
func (p *AzureProvider) CreateResourceGroup(ctx context.Context, name string, location string) (ResourceGroup, error) {
	if p.subscription.ID == "" {
		return ResourceGroup{}, ErrNotAuthenticated
	}

	client, err := p.factory.ResourceGroups(p.subscription.ID)
	if err != nil {
		return ResourceGroup{}, err
	}

	existing, err := client.Get(ctx, name, nil)
	switch {
	case err == nil:
		existingLocation := deref(existing.Location)
		if !sameLocation(existingLocation, location) {
			return ResourceGroup{}, fmt.Errorf("%w: %s is in %s, requested %s", ErrLocationConflict, name, existingLocation, location)
		}

		p.Logger.Debugf("Resource group %s already exists in %s", name, existingLocation)

		return ResourceGroup{ID: deref(existing.ID), Name: name, Location: existingLocation, Existed: true}, nil
	case !arm.IsNotFoundError(err):
		return ResourceGroup{}, err
	}

	created, err := client.CreateOrUpdate(ctx, name, armresources.ResourceGroup{
		Location: to.Ptr(location),
	}, nil)
	if err != nil {
		if arm.HasErrorCode(err, "InvalidResourceGroupLocation") {
			return ResourceGroup{}, fmt.Errorf("%w: %v", ErrLocationConflict, err)
		}
		return ResourceGroup{}, err
	}

	return ResourceGroup{ID: deref(created.ID), Name: name, Location: deref(created.Location)}, nil
}

// CreateStorageAccount creates a StorageV2 account that allows public blob access
func (p *AzureProvider) CreateStorageAccount(ctx context.Context, group ResourceGroup, name string) (StorageAccount, error) {
	if p.subscription.ID == "" {
		return StorageAccount{}, ErrNotAuthenticated
	}

	client, err := p.factory.Accounts(p.subscription.ID)
	if err != nil {
		return StorageAccount{}, err
	}

	check, err := client.CheckNameAvailability(ctx, armstorage.AccountCheckNameAvailabilityParameters{
		Name: to.Ptr(name),
		Type: to.Ptr(storageAccountResourceType),
	}, nil)
	if err != nil {
		return StorageAccount{}, err
	}

	if check.NameAvailable == nil || !*check.NameAvailable {
		return StorageAccount{}, fmt.Errorf("%w: %s: %s", ErrNameUnavailable, name, deref(check.Message))
	}

	var account armstorage.Account
	err = p.longRunning(fmt.Sprintf("Waiting for storage account %s...", name), func() (err error) {
		account, err = client.CreateAndWait(ctx, group.Name, name, armstorage.AccountCreateParameters{
			Kind:     to.Ptr(armstorage.KindStorageV2),
			Location: to.Ptr(group.Location),
			SKU: &armstorage.SKU{
				Name: to.Ptr(armstorage.SKUNameStandardLRS),
			},
			Properties: &armstorage.AccountPropertiesCreateParameters{
				AllowBlobPublicAccess:  to.Ptr(true),
				EnableHTTPSTrafficOnly: to.Ptr(true),
				MinimumTLSVersion:      to.Ptr(armstorage.MinimumTLSVersionTLS12),
			},
		}, nil)
		return err
	})
	if err != nil {
		if arm.HasErrorCode(err, "StorageAccountAlreadyTaken") {
			return StorageAccount{}, fmt.Errorf("%w: %v", ErrNameUnavailable, err)
		}
		return StorageAccount{}, err
	}

	result := StorageAccount{
		ID:            deref(account.ID),
		Name:          name,
		ResourceGroup: group.Name,
		Location:      deref(account.Location),
	}

	if account.Properties != nil && account.Properties.PrimaryEndpoints != nil {
		result.BlobEndpoint = deref(account.Properties.PrimaryEndpoints.Blob)
	}

	return result, nil
}

// GetAccountKeys lists the access keys of the account in the order the service returns them
func (p *AzureProvider) GetAccountKeys(ctx context.Context, account StorageAccount) ([]AccountKey, error) {
	if p.subscription.ID == "" {
		return nil, ErrNotAuthenticated
	}

	client, err := p.factory.Accounts(p.subscription.ID)
	if err != nil {
		return nil, err
	}

	resp, err := client.ListKeys(ctx, account.ResourceGroup, account.Name, nil)
	if err != nil {
		return nil, err
	}

	keys := make([]AccountKey, 0, len(resp.Keys))
	for _, k := range resp.Keys {
		if k == nil || k.Value == nil {
			continue
		}
		keys = append(keys, AccountKey{Name: deref(k.KeyName), Value: *k.Value})
	}

	return keys, nil
}

// CreateContainer creates the container, an existing container is left as is
func (p *AzureProvider) CreateContainer(ctx context.Context, connectionString string, name string) (Container, error) {
	client, err := p.blobs(connectionString)
	if err != nil {
		return Container{}, err
	}

	_, err = client.CreateContainer(ctx, name, nil)
	if err != nil {
		if !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
			return Container{}, err
		}
		p.Logger.Debugf("Container %s already exists", name)
	}

	return Container{Name: name, URL: strings.TrimRight(client.URL(), "/") + "/" + name}, nil
}

// SetContainerPermissions applies access to the container, overwriting any previous level
func (p *AzureProvider) SetContainerPermissions(ctx context.Context, connectionString string, c Container, access PublicAccess) error {
	client, err := p.blobs(connectionString)
	if err != nil {
		return err
	}

	var level *container.PublicAccessType
	switch access {
	case PublicAccessBlob:
		level = to.Ptr(container.PublicAccessTypeBlob)
	case PublicAccessContainer:
		level = to.Ptr(container.PublicAccessTypeContainer)
	}

	return client.SetContainerAccessPolicy(ctx, c.Name, level)
}

// UploadBlob uploads data as a block blob, replacing any blob with the same name
func (p *AzureProvider) UploadBlob(ctx context.Context, connectionString string, c Container, blobName string, data []byte) (Blob, error) {
	client, err := p.blobs(connectionString)
	if err != nil {
		return Blob{}, err
	}

	_, err = client.UploadBuffer(ctx, c.Name, blobName, data, &azblob.UploadBufferOptions{
		HTTPHeaders: &blob.HTTPHeaders{
			BlobContentType: to.Ptr(contentType(blobName)),
		},
	})
	if err != nil {
		return Blob{}, err
	}

	return Blob{Container: c.Name, Name: blobName, URL: c.URL + "/" + blobName}, nil
}

// Deploy submits a linked-template deployment and waits for its terminal state
func (p *AzureProvider) Deploy(ctx context.Context, request DeploymentRequest) (DeploymentResult, error) {
	if p.subscription.ID == "" {
		return DeploymentResult{}, ErrNotAuthenticated
	}

	client, err := p.factory.Deployments(p.subscription.ID)
	if err != nil {
		return DeploymentResult{}, err
	}

	parameters := armresources.Deployment{
		Properties: &armresources.DeploymentProperties{
			Mode: to.Ptr(armresources.DeploymentMode(request.Mode)),
			TemplateLink: &armresources.TemplateLink{
				URI:            to.Ptr(request.TemplateURI),
				ContentVersion: to.Ptr(request.ContentVersion),
			},
			ParametersLink: &armresources.ParametersLink{
				URI:            to.Ptr(request.ParametersURI),
				ContentVersion: to.Ptr(request.ContentVersion),
			},
		},
	}

	var deployment armresources.DeploymentExtended
	err = p.longRunning(fmt.Sprintf("Waiting for deployment %s...", request.Name), func() (err error) {
		deployment, err = client.CreateOrUpdateAndWait(ctx, request.ResourceGroup, request.Name, parameters, nil)
		return err
	})
	if err != nil {
		// polling stops with an error when the deployment fails, read the record to tell a failed
		// deployment apart from a failed request
		current, getErr := client.Get(ctx, request.ResourceGroup, request.Name, nil)
		if getErr != nil {
			return DeploymentResult{}, err
		}

		result := toDeploymentResult(current.DeploymentExtended)
		if terminalFailure(result.ProvisioningState) {
			return result, fmt.Errorf("%w: %s is %s: %v", ErrDeploymentFailed, request.Name, result.ProvisioningState, err)
		}
		return result, err
	}

	result := toDeploymentResult(deployment)
	if result.ProvisioningState != string(armresources.ProvisioningStateSucceeded) {
		return result, fmt.Errorf("%w: %s is %s", ErrDeploymentFailed, request.Name, result.ProvisioningState)
	}

	return result, nil
}

// DeleteResourceGroup deletes the group and everything in it, waiting for the deletion to finish
func (p *AzureProvider) DeleteResourceGroup(ctx context.Context, name string) error {
	if p.subscription.ID == "" {
		return ErrNotAuthenticated
	}

	client, err := p.factory.ResourceGroups(p.subscription.ID)
	if err != nil {
		return err
	}

	err = p.longRunning(fmt.Sprintf("Waiting for resource group %s to be deleted...", name), func() error {
		return client.DeleteAndWait(ctx, name, nil)
	})
	if arm.IsNotFoundError(err) {
		p.Logger.Warnf("Resource group %s does not exist, nothing to delete", name)
		return nil
	}

	return err
}

func (p *AzureProvider) blobs(connectionString string) (arm.BlobsClient, error) {
	if p.factory == nil {
		return nil, ErrNotAuthenticated
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if client, ok := p.blobClients[connectionString]; ok {
		return client, nil
	}

	client, err := p.factory.Blobs(connectionString)
	if err != nil {
		return nil, err
	}

	if p.blobClients == nil {
		p.blobClients = map[string]arm.BlobsClient{}
	}
	p.blobClients[connectionString] = client

	return client, nil
}

func (p *AzureProvider) longRunning(suffix string, action func() error) error {
	if !p.ShowProgress {
		return action()
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + suffix
	s.Start()
	defer s.Stop()

	return action()
}

func toDeploymentResult(deployment armresources.DeploymentExtended) DeploymentResult {
	result := DeploymentResult{ID: deref(deployment.ID)}

	props := deployment.Properties
	if props == nil {
		return result
	}

	if props.ProvisioningState != nil {
		result.ProvisioningState = string(*props.ProvisioningState)
	}
	result.CorrelationID = deref(props.CorrelationID)

	for _, r := range props.OutputResources {
		if r != nil && r.ID != nil {
			result.OutputResources = append(result.OutputResources, *r.ID)
		}
	}

	if outputs, ok := props.Outputs.(map[string]interface{}); ok {
		result.Outputs = outputs
	}

	return result
}

func terminalFailure(state string) bool {
	return state == string(armresources.ProvisioningStateFailed) || state == string(armresources.ProvisioningStateCanceled)
}

func enabled(s *armsubscriptions.Subscription) bool {
	return s != nil && s.State != nil && *s.State == armsubscriptions.SubscriptionStateEnabled
}

func sameLocation(a, b string) bool {
	normalize := func(s string) string {
		return strings.ToLower(strings.ReplaceAll(s, " ", ""))
	}
	return normalize(a) == normalize(b)
}

func contentType(name string) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
