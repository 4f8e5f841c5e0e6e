package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"regexp"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/optum/vmdeploy/mocks"
	"github.com/optum/vmdeploy/pkg/artifacts"
	"github.com/optum/vmdeploy/pkg/cloud"
	"github.com/optum/vmdeploy/pkg/config"
	"github.com/optum/vmdeploy/pkg/provision"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

type stubLoader struct{}

func (stubLoader) Load(_ context.Context, sources ...artifacts.Source) ([]artifacts.Artifact, error) {
	result := make([]artifacts.Artifact, 0, len(sources))
	for _, s := range sources {
		result = append(result, artifacts.Artifact{Name: s.Name, Data: []byte("{}")})
	}
	return result, nil
}

// resetFlags clears values left behind by previous executions of the shared command tree
func resetFlags(t *testing.T, cmds ...*cobra.Command) {
	t.Helper()

	for _, c := range cmds {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
}

// clearEnv unsets every variable the config reads so the host environment cannot leak into a run
func clearEnv(t *testing.T) {
	t.Helper()

	for _, s := range config.Settings() {
		for _, name := range s.Variables() {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}
}

func stubProvider(t *testing.T, provider cloud.Provider) {
	t.Helper()

	original := newProvider
	originalLoader := newLoader
	newProvider = func(config.Config, *logrus.Entry) cloud.Provider { return provider }
	newLoader = func(config.Config, *logrus.Entry) provision.ArtifactLoader { return stubLoader{} }

	t.Cleanup(func() {
		newProvider = original
		newLoader = originalLoader
	})
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t, rootCmd, deployCmd, destroyCmd, nameCmd, versionCmd)

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), err
}

func Test_VersionCommand(t *testing.T) {
	out, err := execute(t, "version")

	require.NoError(t, err)
	require.Equal(t, "vmdeploy "+Version+"\n", out)
}

func Test_NameCommand(t *testing.T) {
	out, err := execute(t, "name")
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^st[a-z0-9]{10}\n$`), out)

	out, err = execute(t, "name", "--prefix=vm", "--length=6")
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^vm[a-z0-9]{6}\n$`), out)

	_, err = execute(t, "name", "--prefix=UPPER")
	require.Error(t, err)
}

func Test_DeployCommand_ShouldRunWithFlagsAndSelfDestroy(t *testing.T) {
	clearEnv(t)
	t.Setenv("AZURE_AUTH_LOCATION", "my.azureauth")
	t.Setenv("LOG_DISABLE_COLORS", "true")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockProvider(ctrl)
	stubProvider(t, provider)

	group := cloud.ResourceGroup{Name: "flagGroup", Location: "westus2"}
	account := cloud.StorageAccount{Name: "stabc", ResourceGroup: "flagGroup"}
	container := cloud.Container{Name: "templates"}

	gomock.InOrder(
		provider.EXPECT().Authenticate(gomock.Any()).Return(nil),
		provider.EXPECT().SelectSubscription(gomock.Any()).Return(cloud.Subscription{ID: "sub"}, nil),
		provider.EXPECT().CreateResourceGroup(gomock.Any(), "flagGroup", "westus2").Return(group, nil),
		provider.EXPECT().CreateStorageAccount(gomock.Any(), group, gomock.Any()).Return(account, nil),
		provider.EXPECT().GetAccountKeys(gomock.Any(), account).Return([]cloud.AccountKey{{Name: "key1", Value: "a2V5"}}, nil),
		provider.EXPECT().CreateContainer(gomock.Any(), gomock.Any(), "templates").Return(container, nil),
		provider.EXPECT().SetContainerPermissions(gomock.Any(), gomock.Any(), container, cloud.PublicAccessContainer).Return(nil),
		provider.EXPECT().UploadBlob(gomock.Any(), gomock.Any(), container, "CreateVMTemplate.json", gomock.Any()).Return(cloud.Blob{}, nil),
		provider.EXPECT().UploadBlob(gomock.Any(), gomock.Any(), container, "Parameters.json", gomock.Any()).Return(cloud.Blob{}, nil),
		provider.EXPECT().Deploy(gomock.Any(), gomock.Any()).Return(cloud.DeploymentResult{ProvisioningState: "Succeeded"}, nil),
		provider.EXPECT().DeleteResourceGroup(gomock.Any(), "flagGroup").Return(nil),
	)

	_, err := execute(t, "deploy", "--resource-group=flagGroup", "--location=West US 2", "--self-destroy")

	require.NoError(t, err)
}

func Test_DeployCommand_ShouldFailOnInvalidConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("AZURE_AUTH_LOCATION", "my.azureauth")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stubProvider(t, mocks.NewMockProvider(ctrl))

	_, err := execute(t, "deploy", "--credential-source=keyring")

	require.Error(t, err)
}

func Test_DeployCommand_ShouldReturnProviderErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("AZURE_AUTH_LOCATION", "my.azureauth")
	t.Setenv("LOG_DISABLE_COLORS", "true")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockProvider(ctrl)
	stubProvider(t, provider)

	provider.EXPECT().Authenticate(gomock.Any()).Return(errors.New("AADSTS7000215: invalid client secret"))

	_, err := execute(t, "deploy", "--self-destroy")

	require.Error(t, err)
	require.Contains(t, err.Error(), "AADSTS7000215")
}

func Test_DestroyCommand_ShouldDeleteConfiguredGroup(t *testing.T) {
	clearEnv(t)
	t.Setenv("AZURE_AUTH_LOCATION", "my.azureauth")
	t.Setenv("LOG_DISABLE_COLORS", "true")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockProvider(ctrl)
	stubProvider(t, provider)

	gomock.InOrder(
		provider.EXPECT().Authenticate(gomock.Any()).Return(nil),
		provider.EXPECT().SelectSubscription(gomock.Any()).Return(cloud.Subscription{ID: "sub"}, nil),
		provider.EXPECT().DeleteResourceGroup(gomock.Any(), "myResourceGroup").Return(nil),
	)

	_, err := execute(t, "destroy", "--yes")

	require.NoError(t, err)
}

func Test_DestroyCommand_ShouldIgnoreUnprefixedResourceGroup(t *testing.T) {
	clearEnv(t)
	t.Setenv("AZURE_AUTH_LOCATION", "my.azureauth")
	t.Setenv("LOG_DISABLE_COLORS", "true")
	t.Setenv("RESOURCE_GROUP", "someoneElsesGroup")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockProvider(ctrl)
	stubProvider(t, provider)

	gomock.InOrder(
		provider.EXPECT().Authenticate(gomock.Any()).Return(nil),
		provider.EXPECT().SelectSubscription(gomock.Any()).Return(cloud.Subscription{ID: "sub"}, nil),
		provider.EXPECT().DeleteResourceGroup(gomock.Any(), "myResourceGroup").Return(nil),
	)

	_, err := execute(t, "destroy", "--yes")

	require.NoError(t, err)
}
