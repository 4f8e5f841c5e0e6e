package naming_test

import (
	"regexp"
	"testing"

	"github.com/optum/vmdeploy/pkg/naming"
	"github.com/stretchr/testify/require"
)

func TestStorageAccountName_ShouldMatchPattern(t *testing.T) {
	t.Parallel()
	pattern := regexp.MustCompile(`^st[a-z0-9]{10}$`)

	for i := 0; i < 100; i++ {
		name, err := naming.StorageAccountName("st", 10)

		require.NoError(t, err)
		require.Regexp(t, pattern, name)
	}
}

func TestStorageAccountName_ShouldBeDistinctAcrossGenerations(t *testing.T) {
	t.Parallel()
	names := map[string]struct{}{}

	for i := 0; i < 1000; i++ {
		name, err := naming.StorageAccountName("st", 10)
		require.NoError(t, err)

		names[name] = struct{}{}
	}

	require.Len(t, names, 1000)
}

func TestStorageAccountName_ShouldRejectNamesOutsideTheRules(t *testing.T) {
	t.Parallel()

	_, err := naming.StorageAccountName("st", 30)
	require.Error(t, err)

	_, err = naming.StorageAccountName("ST", 10)
	require.Error(t, err)
}

func TestValidStorageAccountName(t *testing.T) {
	t.Parallel()
	tests := map[string]bool{
		"st0123456789":              true,
		"abc":                       true,
		"ab":                        false,
		"st-0123":                   false,
		"StAccount":                 false,
		"st01234567890123456789012": false,
	}

	for in, expected := range tests {
		require.Equal(t, expected, naming.ValidStorageAccountName(in), "ValidStorageAccountName(%q)", in)
	}
}
