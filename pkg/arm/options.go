package arm

import (
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	azarm "github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// DefaultPollFrequency is how often long running operations are polled
const DefaultPollFrequency = 10 * time.Second

type Options struct {
	Credential    azcore.TokenCredential
	ClientOptions *azarm.ClientOptions
	PollFrequency time.Duration
}

// CloudConfiguration maps a cloud name (AzurePublic, AzureChina, AzureGovernment) to its SDK configuration
func CloudConfiguration(name string) cloud.Configuration {
	switch name {
	case "AzureChina":
		return cloud.AzureChina
	case "AzureGovernment":
		return cloud.AzureGovernment
	default:
		return cloud.AzurePublic
	}
}

// NewClientOptions returns client options targeting the named cloud
func NewClientOptions(cloudName string) *azarm.ClientOptions {
	return &azarm.ClientOptions{
		ClientOptions: policy.ClientOptions{
			Cloud: CloudConfiguration(cloudName),
		},
	}
}

// ResourceManagerScope returns the token scope of the management plane of the named cloud
func ResourceManagerScope(cloudName string) string {
	audience := CloudConfiguration(cloudName).Services[cloud.ResourceManager].Audience

	return strings.TrimRight(audience, "/") + "/.default"
}

func (o *Options) pollUntilDoneOptions() *runtime.PollUntilDoneOptions {
	frequency := o.PollFrequency
	if frequency <= 0 {
		frequency = DefaultPollFrequency
	}

	return &runtime.PollUntilDoneOptions{Frequency: frequency}
}
