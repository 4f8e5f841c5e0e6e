// Package naming generates names for resources that live in a global namespace.
package naming

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
)

const storageAccountAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

var storageAccountNameRegexp = regexp.MustCompile(`^[a-z0-9]{3,24}$`)

// StorageAccountName returns prefix followed by length random lowercase alphanumeric characters
func StorageAccountName(prefix string, length int) (string, error) {
	name := prefix + randomString(length)

	if !ValidStorageAccountName(name) {
		return "", fmt.Errorf("generated storage account name %q is invalid, names must be 3-24 lowercase letters or digits", name)
	}

	return name, nil
}

// ValidStorageAccountName reports whether name satisfies the storage account naming rules
func ValidStorageAccountName(name string) bool {
	return storageAccountNameRegexp.MatchString(name)
}

func randomString(length int) string {
	max := big.NewInt(int64(len(storageAccountAlphabet)))
	b := make([]byte, length)

	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		b[i] = storageAccountAlphabet[n.Int64()]
	}

	return string(b)
}
