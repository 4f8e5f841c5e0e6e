package provision_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/optum/vmdeploy/mocks"
	"github.com/optum/vmdeploy/pkg/artifacts"
	"github.com/optum/vmdeploy/pkg/cloud"
	"github.com/optum/vmdeploy/pkg/config"
	"github.com/optum/vmdeploy/pkg/provision"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

var logger *logrus.Entry

const (
	stubAccountName = "stabcdefghij"
	stubKey         = "c3R1YmtleQ=="
	stubConnection  = "DefaultEndpointsProtocol=https;AccountName=stabcdefghij;AccountKey=c3R1YmtleQ==;EndpointSuffix=core.windows.net"
	stubContainer   = "https://stabcdefghij.blob.core.windows.net/templates"
)

var (
	stubTemplate   = []byte(`{"$schema":"deploymentTemplate.json#"}`)
	stubParameters = []byte(`{"$schema":"deploymentParameters.json#"}`)
	stubGroup      = cloud.ResourceGroup{ID: "rg-id", Name: "myResourceGroup", Location: "centralus"}
	stubAccount    = cloud.StorageAccount{Name: stubAccountName, ResourceGroup: "myResourceGroup", Location: "centralus"}
	stubTarget     = cloud.Container{Name: "templates", URL: stubContainer}
)

func TestMain(m *testing.M) {
	logs := logrus.New()
	logs.SetReportCaller(true)
	logger = logs.WithField("environment", "unittest")

	os.Exit(m.Run())
}

type stubLoader struct {
	err     error
	sources []artifacts.Source
}

func (l *stubLoader) Load(_ context.Context, sources ...artifacts.Source) ([]artifacts.Artifact, error) {
	l.sources = sources
	if l.err != nil {
		return nil, l.err
	}

	return []artifacts.Artifact{
		{Name: sources[0].Name, Source: sources[0].Location, Data: stubTemplate},
		{Name: sources[1].Name, Source: sources[1].Location, Data: stubParameters},
	}, nil
}

func stubConfig() config.Config {
	cfg := config.Config{
		CredentialSource:     config.CredentialSourcePath,
		AuthLocation:         "my.azureauth",
		Cloud:                "AzurePublic",
		ResourceGroup:        "myResourceGroup",
		Location:             "centralus",
		StorageAccountPrefix: "st",
		StorageSuffixLength:  10,
		StorageNameAttempts:  3,
		ContainerName:        "templates",
		TemplateFile:         "CreateVMTemplate.json",
		ParametersFile:       "Parameters.json",
		TemplateBlobName:     "CreateVMTemplate.json",
		ParametersBlobName:   "Parameters.json",
		DeploymentName:       "myDeployment",
		ContentVersion:       "1.0.0.0",
		UploadConcurrency:    1,
	}
	cfg.Normalize()

	return cfg
}

func newSut(cfg config.Config, provider cloud.Provider, confirmer provision.Confirmer) *provision.Provisioner {
	sut := provision.NewProvisioner(cfg, provider, &stubLoader{}, confirmer, logger)
	sut.NewName = func(prefix string, length int) (string, error) {
		return stubAccountName, nil
	}
	return sut
}

func expectedRequest() cloud.DeploymentRequest {
	return cloud.DeploymentRequest{
		ResourceGroup:  "myResourceGroup",
		Name:           "myDeployment",
		TemplateURI:    stubContainer + "/CreateVMTemplate.json",
		ParametersURI:  stubContainer + "/Parameters.json",
		ContentVersion: "1.0.0.0",
		Mode:           cloud.Incremental,
	}
}

// expectThroughContainer records the calls from authenticate up to set-permissions
func expectThroughContainer(provider *mocks.MockProvider) []*gomock.Call {
	return []*gomock.Call{
		provider.EXPECT().Authenticate(gomock.Any()).Return(nil),
		provider.EXPECT().SelectSubscription(gomock.Any()).Return(cloud.Subscription{ID: "sub", DisplayName: "stub"}, nil),
		provider.EXPECT().CreateResourceGroup(gomock.Any(), "myResourceGroup", "centralus").Return(stubGroup, nil),
		provider.EXPECT().CreateStorageAccount(gomock.Any(), stubGroup, stubAccountName).Return(stubAccount, nil),
		provider.EXPECT().GetAccountKeys(gomock.Any(), stubAccount).Return([]cloud.AccountKey{{Name: "key1", Value: stubKey}, {Name: "key2", Value: "other"}}, nil),
		provider.EXPECT().CreateContainer(gomock.Any(), stubConnection, "templates").Return(stubTarget, nil),
		provider.EXPECT().SetContainerPermissions(gomock.Any(), stubConnection, stubTarget, cloud.PublicAccessContainer).Return(nil),
	}
}

func expectUploads(provider *mocks.MockProvider) []*gomock.Call {
	return []*gomock.Call{
		provider.EXPECT().UploadBlob(gomock.Any(), stubConnection, stubTarget, "CreateVMTemplate.json", stubTemplate).
			Return(cloud.Blob{Container: "templates", Name: "CreateVMTemplate.json", URL: stubContainer + "/CreateVMTemplate.json"}, nil),
		provider.EXPECT().UploadBlob(gomock.Any(), stubConnection, stubTarget, "Parameters.json", stubParameters).
			Return(cloud.Blob{Container: "templates", Name: "Parameters.json", URL: stubContainer + "/Parameters.json"}, nil),
	}
}

func TestRun_ShouldCallProviderInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockProvider(ctrl)
	confirmer := mocks.NewMockConfirmer(ctrl)

	calls := expectThroughContainer(provider)
	calls = append(calls, expectUploads(provider)...)
	calls = append(calls,
		provider.EXPECT().Deploy(gomock.Any(), expectedRequest()).Return(cloud.DeploymentResult{ProvisioningState: "Succeeded"}, nil),
		confirmer.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(true, nil),
		provider.EXPECT().DeleteResourceGroup(gomock.Any(), "myResourceGroup").Return(nil).Times(1),
	)
	gomock.InOrder(calls...)

	result, err := newSut(stubConfig(), provider, confirmer).Run(context.Background())

	require.NoError(t, err)
	require.Equal(t, provision.TeardownCompleted, result.Teardown)
	require.Equal(t, stubContainer+"/CreateVMTemplate.json", result.TemplateURL)
	require.Equal(t, stubContainer+"/Parameters.json", result.ParametersURL)
	require.Len(t, result.Blobs, 2)

	var steps []provision.Step
	for _, record := range result.Steps {
		require.Equal(t, provision.Success, record.Result, "step %s", record.Step)
		steps = append(steps, record.Step)
	}
	require.Equal(t, []provision.Step{
		provision.StepLoadArtifacts,
		provision.StepAuthenticate,
		provision.StepSelectSubscription,
		provision.StepCreateGroup,
		provision.StepCreateStorage,
		provision.StepGetKeys,
		provision.StepCreateContainer,
		provision.StepSetPermissions,
		provision.StepUpload,
		provision.StepDeploy,
		provision.StepConfirm,
		provision.StepDeleteGroup,
	}, steps)
}

func TestRun_ShouldStageArtifactsUnderBlobNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockProvider(ctrl)
	loader := &stubLoader{err: os.ErrNotExist}

	cfg := stubConfig()
	cfg.TemplateFile = "templates/vm.json"

	sut := newSut(cfg, provider, provision.AutoConfirmer{})
	sut.Loader = loader

	_, err := sut.Run(context.Background())

	require.ErrorIs(t, err, os.ErrNotExist)
	require.Equal(t, []artifacts.Source{
		{Name: "CreateVMTemplate.json", Location: "templates/vm.json"},
		{Name: "Parameters.json", Location: "Parameters.json"},
	}, loader.sources)
}

func TestRun_ShouldAbortOnAuthenticationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockProvider(ctrl)
	provider.EXPECT().Authenticate(gomock.Any()).Return(errors.New("invalid client secret"))

	result, err := newSut(stubConfig(), provider, provision.AutoConfirmer{}).Run(context.Background())

	require.Error(t, err)
	require.Contains(t, err.Error(), "authenticate")
	require.Equal(t, provision.TeardownPending, result.Teardown)
}

func TestRun_ShouldAbortOnLocationConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockProvider(ctrl)
	gomock.InOrder(
		provider.EXPECT().Authenticate(gomock.Any()).Return(nil),
		provider.EXPECT().SelectSubscription(gomock.Any()).Return(cloud.Subscription{ID: "sub"}, nil),
		provider.EXPECT().CreateResourceGroup(gomock.Any(), "myResourceGroup", "centralus").
			Return(cloud.ResourceGroup{}, fmt.Errorf("%w: myResourceGroup is in westeurope", cloud.ErrLocationConflict)),
	)

	_, err := newSut(stubConfig(), provider, provision.AutoConfirmer{}).Run(context.Background())

	require.ErrorIs(t, err, cloud.ErrLocationConflict)
}

func TestRun_ShouldProceedWhenGroupExistsInSameLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockProvider(ctrl)
	existing := stubGroup
	existing.Existed = true

	provider.EXPECT().Authenticate(gomock.Any()).Return(nil)
	provider.EXPECT().SelectSubscription(gomock.Any()).Return(cloud.Subscription{ID: "sub"}, nil)
	provider.EXPECT().CreateResourceGroup(gomock.Any(), "myResourceGroup", "centralus").Return(existing, nil)
	provider.EXPECT().CreateStorageAccount(gomock.Any(), existing, stubAccountName).Return(stubAccount, nil)
	provider.EXPECT().GetAccountKeys(gomock.Any(), stubAccount).Return(nil, nil)

	result, err := newSut(stubConfig(), provider, provision.AutoConfirmer{}).Run(context.Background())

	require.ErrorIs(t, err, provision.ErrNoAccountKeys)
	require.True(t, result.ResourceGroup.Existed)
}

func TestRun_ShouldRetryStorageAccountNameCollisions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockProvider(ctrl)
	provider.EXPECT().Authenticate(gomock.Any()).Return(nil)
	provider.EXPECT().SelectSubscription(gomock.Any()).Return(cloud.Subscription{ID: "sub"}, nil)
	provider.EXPECT().CreateResourceGroup(gomock.Any(), gomock.Any(), gomock.Any()).Return(stubGroup, nil)
	gomock.InOrder(
		provider.EXPECT().CreateStorageAccount(gomock.Any(), stubGroup, "st0000000000").Return(cloud.StorageAccount{}, cloud.ErrNameUnavailable),
		provider.EXPECT().CreateStorageAccount(gomock.Any(), stubGroup, "st0000000001").Return(stubAccount, nil),
	)
	provider.EXPECT().GetAccountKeys(gomock.Any(), stubAccount).Return([]cloud.AccountKey{}, nil)

	generated := 0
	sut := newSut(stubConfig(), provider, provision.AutoConfirmer{})
	sut.NewName = func(prefix string, length int) (string, error) {
		name := fmt.Sprintf("%s%010d", prefix, generated)
		generated++
		return name, nil
	}

	result, err := sut.Run(context.Background())

	require.ErrorIs(t, err, provision.ErrNoAccountKeys)
	require.Equal(t, 2, generated)
	require.Equal(t, stubAccountName, result.StorageAccount.Name)
}

func TestRun_ShouldGiveUpAfterConfiguredNameAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockProvider(ctrl)
	provider.EXPECT().Authenticate(gomock.Any()).Return(nil)
	provider.EXPECT().SelectSubscription(gomock.Any()).Return(cloud.Subscription{ID: "sub"}, nil)
	provider.EXPECT().CreateResourceGroup(gomock.Any(), gomock.Any(), gomock.Any()).Return(stubGroup, nil)
	provider.EXPECT().CreateStorageAccount(gomock.Any(), gomock.Any(), gomock.Any()).Return(cloud.StorageAccount{}, cloud.ErrNameUnavailable).Times(3)

	_, err := newSut(stubConfig(), provider, provision.AutoConfirmer{}).Run(context.Background())

	require.ErrorIs(t, err, cloud.ErrNameUnavailable)
}

func TestRun_ShouldNotRetryOtherStorageErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockProvider(ctrl)
	provider.EXPECT().Authenticate(gomock.Any()).Return(nil)
	provider.EXPECT().SelectSubscription(gomock.Any()).Return(cloud.Subscription{ID: "sub"}, nil)
	provider.EXPECT().CreateResourceGroup(gomock.Any(), gomock.Any(), gomock.Any()).Return(stubGroup, nil)
	provider.EXPECT().CreateStorageAccount(gomock.Any(), gomock.Any(), gomock.Any()).Return(cloud.StorageAccount{}, errors.New("quota exceeded")).Times(1)

	_, err := newSut(stubConfig(), provider, provision.AutoConfirmer{}).Run(context.Background())

	require.Error(t, err)
	require.Contains(t, err.Error(), "quota exceeded")
}

func TestRun_ShouldNotDeployWhenFirstUploadFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockProvider(ctrl)
	confirmer := mocks.NewMockConfirmer(ctrl)

	calls := expectThroughContainer(provider)
	calls = append(calls,
		provider.EXPECT().UploadBlob(gomock.Any(), stubConnection, stubTarget, "CreateVMTemplate.json", stubTemplate).
			Return(cloud.Blob{}, errors.New("connection reset")),
	)
	gomock.InOrder(calls...)

	result, err := newSut(stubConfig(), provider, confirmer).Run(context.Background())

	require.Error(t, err)
	require.Contains(t, err.Error(), "uploading CreateVMTemplate.json")
	require.Equal(t, provision.TeardownPending, result.Teardown)
}

func TestRun_ShouldWaitForConcurrentUploads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockProvider(ctrl)
	cfg := stubConfig()
	cfg.UploadConcurrency = 2

	uploads := expectUploads(provider)
	calls := expectThroughContainer(provider)
	deploy := provider.EXPECT().Deploy(gomock.Any(), expectedRequest()).Return(cloud.DeploymentResult{ProvisioningState: "Succeeded"}, nil)
	gomock.InOrder(append(calls, uploads[0], deploy)...)
	gomock.InOrder(calls[len(calls)-1], uploads[1], deploy)
	provider.EXPECT().DeleteResourceGroup(gomock.Any(), "myResourceGroup").Return(nil)

	result, err := newSut(cfg, provider, provision.AutoConfirmer{Logger: logger}).Run(context.Background())

	require.NoError(t, err)
	require.Equal(t, "CreateVMTemplate.json", result.Blobs[0].Name)
	require.Equal(t, "Parameters.json", result.Blobs[1].Name)
}

func TestRun_ShouldSkipTeardownWhenDeploymentFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockProvider(ctrl)
	confirmer := mocks.NewMockConfirmer(ctrl)

	calls := expectThroughContainer(provider)
	calls = append(calls, expectUploads(provider)...)
	calls = append(calls,
		provider.EXPECT().Deploy(gomock.Any(), expectedRequest()).
			Return(cloud.DeploymentResult{ProvisioningState: "Failed"}, fmt.Errorf("%w: myDeployment is Failed", cloud.ErrDeploymentFailed)),
	)
	gomock.InOrder(calls...)

	result, err := newSut(stubConfig(), provider, confirmer).Run(context.Background())

	require.ErrorIs(t, err, cloud.ErrDeploymentFailed)
	require.Equal(t, provision.TeardownSkipped, result.Teardown)
	require.Contains(t, result.Summary(), "Failed steps: deploy.")
	require.Contains(t, result.Summary(), "Skipped steps: wait-for-input, delete-group.")
}

func TestRun_ShouldTeardownFailedDeploymentWhenConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockProvider(ctrl)
	confirmer := mocks.NewMockConfirmer(ctrl)
	cfg := stubConfig()
	cfg.TeardownOnDeploymentFailure = true

	calls := expectThroughContainer(provider)
	calls = append(calls, expectUploads(provider)...)
	calls = append(calls,
		provider.EXPECT().Deploy(gomock.Any(), expectedRequest()).Return(cloud.DeploymentResult{}, cloud.ErrDeploymentFailed),
		provider.EXPECT().DeleteResourceGroup(gomock.Any(), "myResourceGroup").Return(nil).Times(1),
	)
	gomock.InOrder(calls...)

	result, err := newSut(cfg, provider, confirmer).Run(context.Background())

	require.ErrorIs(t, err, cloud.ErrDeploymentFailed)
	require.Equal(t, provision.TeardownCompleted, result.Teardown)
}

func TestRun_ShouldKeepResourcesWhenDeclined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockProvider(ctrl)
	confirmer := mocks.NewMockConfirmer(ctrl)

	calls := expectThroughContainer(provider)
	calls = append(calls, expectUploads(provider)...)
	calls = append(calls,
		provider.EXPECT().Deploy(gomock.Any(), expectedRequest()).Return(cloud.DeploymentResult{ProvisioningState: "Succeeded"}, nil),
		confirmer.EXPECT().Confirm(gomock.Any(), "Delete resource group myResourceGroup and everything in it?").Return(false, nil),
	)
	gomock.InOrder(calls...)

	result, err := newSut(stubConfig(), provider, confirmer).Run(context.Background())

	require.NoError(t, err)
	require.Equal(t, provision.TeardownDeclined, result.Teardown)
}

func TestRun_ShouldNotTeardownWhenInterrupted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockProvider(ctrl)
	confirmer := mocks.NewMockConfirmer(ctrl)

	calls := expectThroughContainer(provider)
	calls = append(calls, expectUploads(provider)...)
	calls = append(calls,
		provider.EXPECT().Deploy(gomock.Any(), expectedRequest()).Return(cloud.DeploymentResult{ProvisioningState: "Succeeded"}, nil),
		confirmer.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(false, provision.ErrInterrupted),
	)
	gomock.InOrder(calls...)

	result, err := newSut(stubConfig(), provider, confirmer).Run(context.Background())

	require.ErrorIs(t, err, provision.ErrInterrupted)
	require.Equal(t, provision.TeardownPending, result.Teardown)
}

func TestDestroy_ShouldDeleteConfiguredGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockProvider(ctrl)
	gomock.InOrder(
		provider.EXPECT().Authenticate(gomock.Any()).Return(nil),
		provider.EXPECT().SelectSubscription(gomock.Any()).Return(cloud.Subscription{ID: "sub"}, nil),
		provider.EXPECT().DeleteResourceGroup(gomock.Any(), "myResourceGroup").Return(nil),
	)

	result, err := newSut(stubConfig(), provider, nil).Destroy(context.Background())

	require.NoError(t, err)
	require.Equal(t, provision.TeardownCompleted, result.Teardown)
	require.Equal(t, "SUCCESS: 3 steps succeeded. Resource group myResourceGroup teardown COMPLETED.", result.Summary())
}

func TestConnectionString(t *testing.T) {
	require.Equal(t,
		"DefaultEndpointsProtocol=https;AccountName=stabc;AccountKey=a2V5;EndpointSuffix=core.windows.net",
		provision.ConnectionString("stabc", "a2V5", "core.windows.net"),
	)
}

func TestBlobURL(t *testing.T) {
	require.Equal(t,
		"https://stabc.blob.core.windows.net/templates/CreateVMTemplate.json",
		provision.BlobURL("stabc", "core.windows.net", "templates", "CreateVMTemplate.json"),
	)
	require.Equal(t,
		"https://stabc.blob.core.chinacloudapi.cn/templates/Parameters.json",
		provision.BlobURL("stabc", "core.chinacloudapi.cn", "templates", "Parameters.json"),
	)
}
