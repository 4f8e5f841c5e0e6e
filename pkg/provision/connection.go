package provision

import (
	"fmt"
	"net/url"
)

// ConnectionString builds a storage account connection string authorized by an account key
func ConnectionString(accountName string, accountKey string, endpointSuffix string) string {
	return fmt.Sprintf("DefaultEndpointsProtocol=https;AccountName=%s;AccountKey=%s;EndpointSuffix=%s", accountName, accountKey, endpointSuffix)
}

// BlobURL returns the public https address of a blob
func BlobURL(accountName string, endpointSuffix string, containerName string, blobName string) string {
	u := url.URL{
		Scheme: "https",
		Host:   fmt.Sprintf("%s.blob.%s", accountName, endpointSuffix),
		Path:   "/" + containerName + "/" + blobName,
	}

	return u.String()
}
