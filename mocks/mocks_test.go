package mocks_test

import (
	"go/build"
	"os"
	"strings"
	"testing"

	"github.com/optum/vmdeploy/mocks"
	"github.com/optum/vmdeploy/pkg/arm"
	"github.com/optum/vmdeploy/pkg/auth"
	"github.com/optum/vmdeploy/pkg/cloud"
	"github.com/optum/vmdeploy/pkg/provision"
	"github.com/stretchr/testify/require"
)

var (
	_ arm.ClientFactory        = (*mocks.MockClientFactory)(nil)
	_ arm.SubscriptionsClient  = (*mocks.MockSubscriptionsClient)(nil)
	_ arm.ResourceGroupsClient = (*mocks.MockResourceGroupsClient)(nil)
	_ arm.DeploymentsClient    = (*mocks.MockDeploymentsClient)(nil)
	_ arm.AccountsClient       = (*mocks.MockAccountsClient)(nil)
	_ arm.BlobsClient          = (*mocks.MockBlobsClient)(nil)
	_ auth.Authenticator       = (*mocks.MockAuthenticator)(nil)
	_ cloud.Provider           = (*mocks.MockProvider)(nil)
	_ provision.Confirmer      = (*mocks.MockConfirmer)(nil)
)

// File names ending in _<GOOS>.go or _<GOARCH>.go are silently dropped on other platforms
func TestMockFiles_ShouldBuildOnEveryPlatform(t *testing.T) {
	entries, err := os.ReadDir(".")
	require.NoError(t, err)

	platforms := [][2]string{
		{"linux", "amd64"},
		{"linux", "arm64"},
		{"darwin", "arm64"},
		{"windows", "amd64"},
	}

	for _, platform := range platforms {
		ctx := build.Default
		ctx.GOOS, ctx.GOARCH = platform[0], platform[1]

		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
				continue
			}

			match, err := ctx.MatchFile(".", name)
			require.NoError(t, err)
			require.True(t, match, "%s is excluded on %s/%s", name, ctx.GOOS, ctx.GOARCH)
		}
	}
}
