package arm

import (
	"errors"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// IsNotFoundError checks if the error is an error from azure SDK and 404 NotFound error.
func IsNotFoundError(err error) bool {
	var azErr *azcore.ResponseError
	return errors.As(err, &azErr) && azErr.StatusCode == http.StatusNotFound
}

// HasErrorCode checks if the error is an error from azure SDK carrying one of the given error codes.
func HasErrorCode(err error, codes ...string) bool {
	var azErr *azcore.ResponseError
	if !errors.As(err, &azErr) {
		return false
	}

	for _, code := range codes {
		if azErr.ErrorCode == code {
			return true
		}
	}
	return false
}
