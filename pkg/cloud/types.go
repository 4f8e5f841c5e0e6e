package cloud

// Subscription is the subscription every management call is scoped to
type Subscription struct {
	ID          string
	DisplayName string
	TenantID    string
}

// ResourceGroup is a named, located container of resources
type ResourceGroup struct {
	ID       string
	Name     string
	Location string
	// Existed is true when the group was found rather than created
	Existed bool
}

// StorageAccount is a storage account inside a resource group
type StorageAccount struct {
	ID            string
	Name          string
	ResourceGroup string
	Location      string
	BlobEndpoint  string
}

// AccountKey is one of the access keys of a storage account
type AccountKey struct {
	Name  string
	Value string `json:"-"`
}

// Container is a blob container inside a storage account
type Container struct {
	Name string
	URL  string
}

// Blob is an uploaded blob
type Blob struct {
	Container string
	Name      string
	URL       string
}

// PublicAccess is the anonymous read level of a blob container
type PublicAccess int

const (
	// PublicAccessNone keeps the container private to the account owner
	PublicAccessNone PublicAccess = iota
	// PublicAccessBlob allows anonymous reads of blobs but not listing
	PublicAccessBlob
	// PublicAccessContainer allows anonymous reads and listing
	PublicAccessContainer
)

func (p PublicAccess) String() string {
	return [...]string{"none", "blob", "container"}[p]
}

// DeploymentMode is the template deployment mode
type DeploymentMode string

const (
	// Incremental leaves resources not named in the template untouched
	Incremental DeploymentMode = "Incremental"
	// Complete deletes resources not named in the template
	Complete DeploymentMode = "Complete"
)

// DeploymentRequest describes a linked-template deployment
type DeploymentRequest struct {
	ResourceGroup  string
	Name           string
	TemplateURI    string
	ParametersURI  string
	ContentVersion string
	Mode           DeploymentMode
}

// DeploymentResult is the terminal state of a deployment
type DeploymentResult struct {
	ID                string
	ProvisioningState string
	CorrelationID     string
	OutputResources   []string
	Outputs           map[string]interface{}
}
