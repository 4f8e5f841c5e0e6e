package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// use a single instance of Validate, it caches struct info
var validate = validator.New()

const maxStorageAccountNameLength = 24

// EnvPrefix is the prefix of every environment variable read into Config
const EnvPrefix = "VMDEPLOY"

// CredentialSource determines how the management credential is obtained
type CredentialSource string

const (
	// CredentialSourcePath reads an SDK auth file from AuthLocation
	CredentialSourcePath CredentialSource = "path"
	// CredentialSourceInlineSecret uses TenantID, ClientID and ClientSecret
	CredentialSourceInlineSecret CredentialSource = "inline-secret"
	// CredentialSourceManagedIdentity uses the host's managed identity
	CredentialSourceManagedIdentity CredentialSource = "managed-identity"
)

// Config struct is a representation of the environment variables and flags passed into vmdeploy.
// Fields tagged envconfig also read the bare AZURE_* variable, every other field is only read from
// its VMDEPLOY_ prefixed variable.
type Config struct {
	// Credentials
	CredentialSource        CredentialSource `split_words:"true" default:"path" validate:"oneof=path inline-secret managed-identity"`
	AuthLocation            string           `envconfig:"AZURE_AUTH_LOCATION"` // Path to the SDK auth file, used with the path source
	TenantID                string           `envconfig:"AZURE_TENANT_ID"`
	ClientID                string           `envconfig:"AZURE_CLIENT_ID"`
	ClientSecret            string           `envconfig:"AZURE_CLIENT_SECRET" json:"-"`
	ManagedIdentityClientID string           `split_words:"true"`                // Empty selects the system assigned identity
	SubscriptionID          string           `envconfig:"AZURE_SUBSCRIPTION_ID"` // Overrides the subscription found in the auth file
	Cloud                   string           `split_words:"true" default:"AzurePublic" validate:"oneof=AzurePublic AzureChina AzureGovernment"`

	// Resources
	ResourceGroup        string `split_words:"true" default:"myResourceGroup" validate:"required,max=90"`
	Location             string `split_words:"true" default:"centralus" validate:"required"`
	StorageAccountPrefix string `split_words:"true" default:"st" validate:"required,lowercase,alphanum,max=14"`
	StorageSuffixLength  int    `split_words:"true" default:"10" validate:"min=6,max=20"`
	StorageNameAttempts  int    `split_words:"true" default:"3" validate:"min=1"`
	ContainerName        string `split_words:"true" default:"templates" validate:"required,lowercase,min=3,max=63"`
	EndpointSuffix       string `split_words:"true"` // Derived from Cloud when empty

	// Deployment
	TemplateFile       string `split_words:"true" default:"CreateVMTemplate.json" validate:"required"`
	ParametersFile     string `split_words:"true" default:"Parameters.json" validate:"required"`
	TemplateBlobName   string `split_words:"true" default:"CreateVMTemplate.json" validate:"required"`
	ParametersBlobName string `split_words:"true" default:"Parameters.json" validate:"required"`
	DeploymentName     string `split_words:"true" default:"myDeployment" validate:"required,max=64"`
	ContentVersion     string `split_words:"true" default:"1.0.0.0" validate:"required"`
	UploadConcurrency  int    `split_words:"true" default:"1" validate:"min=1,max=2"`
	WorkDir            string `split_words:"true" default:".vmdeploy"` // Artifacts are staged here before upload

	// Teardown
	SelfDestroy                 bool `split_words:"true"` // Tear down without prompting once the deployment finishes
	TeardownOnDeploymentFailure bool `split_words:"true"` // By default a failed deployment is left in place for diagnosis

	LogLevel string `split_words:"true" default:"info"`
}

// GetConfig retrieves a deployment config from the environment
func GetConfig() (Config, error) {
	return Load(nil, nil)
}

// Normalize lower cases the fields Azure treats case-insensitively and fills derived values
func (cfg *Config) Normalize() {
	cfg.Location = strings.ToLower(strings.ReplaceAll(cfg.Location, " ", ""))
	cfg.CredentialSource = CredentialSource(strings.ToLower(string(cfg.CredentialSource)))

	if cfg.EndpointSuffix == "" {
		cfg.EndpointSuffix = StorageEndpointSuffix(cfg.Cloud)
	}
}

// Validate checks the struct tags and the cross field rules of the config
func (cfg Config) Validate() error {
	return validate.Struct(cfg)
}

// StorageEndpointSuffix returns the storage DNS suffix of a named cloud
func StorageEndpointSuffix(cloudName string) string {
	switch cloudName {
	case "AzureChina":
		return "core.chinacloudapi.cn"
	case "AzureGovernment":
		return "core.usgovcloudapi.net"
	default:
		return "core.windows.net"
	}
}

// InputValidation enforces the fields each credential source depends on
func InputValidation(sl validator.StructLevel) {
	input := sl.Current().Interface().(Config)

	switch input.CredentialSource {
	case CredentialSourcePath:
		if input.AuthLocation == "" {
			sl.ReportError(input.AuthLocation, "AZURE_AUTH_LOCATION", "AuthLocation", "required-with-path-credentials", "")
		}
	case CredentialSourceInlineSecret:
		if input.TenantID == "" {
			sl.ReportError(input.TenantID, "AZURE_TENANT_ID", "TenantID", "required-with-inline-secret", "")
		}
		if input.ClientID == "" {
			sl.ReportError(input.ClientID, "AZURE_CLIENT_ID", "ClientID", "required-with-inline-secret", "")
		}
		if input.ClientSecret == "" {
			sl.ReportError(input.ClientSecret, "AZURE_CLIENT_SECRET", "ClientSecret", "required-with-inline-secret", "")
		}
	}

	if len(input.StorageAccountPrefix)+input.StorageSuffixLength > maxStorageAccountNameLength {
		sl.ReportError(input.StorageSuffixLength, "STORAGE_SUFFIX_LENGTH", "StorageSuffixLength", "storage-account-name-too-long", "")
	}

	if input.TemplateBlobName == input.ParametersBlobName {
		sl.ReportError(input.ParametersBlobName, "PARAMETERS_BLOB_NAME", "ParametersBlobName", "distinct-from-template-blob", "")
	}
}

func init() {
	validate.RegisterStructValidation(InputValidation, Config{})
}
