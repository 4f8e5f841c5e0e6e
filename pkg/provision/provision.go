// Package provision runs the ordered provisioning sequence: it creates the storage that hosts the
// template artifacts, deploys the template and tears everything down once the operator confirms.
package provision

import (
	"context"
	"fmt"

	"github.com/go-errors/errors"
	"github.com/optum/vmdeploy/pkg/artifacts"
	"github.com/optum/vmdeploy/pkg/cloud"
	"github.com/optum/vmdeploy/pkg/config"
	"github.com/optum/vmdeploy/pkg/naming"
	"github.com/optum/vmdeploy/pkg/retry"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ArtifactLoader stages and reads the deployment artifacts
type ArtifactLoader interface {
	Load(ctx context.Context, sources ...artifacts.Source) ([]artifacts.Artifact, error)
}

// Provisioner orchestrates a provisioning run against a cloud.Provider
type Provisioner struct {
	Config    config.Config
	Provider  cloud.Provider
	Loader    ArtifactLoader
	Confirmer Confirmer
	Logger    *logrus.Entry
	// NewName generates a storage account name, defaults to naming.StorageAccountName
	NewName func(prefix string, length int) (string, error)
}

// Result is what a run created and how far it got
type Result struct {
	Subscription   cloud.Subscription
	ResourceGroup  cloud.ResourceGroup
	StorageAccount cloud.StorageAccount
	Container      cloud.Container
	Blobs          []cloud.Blob
	TemplateURL    string
	ParametersURL  string
	Deployment     cloud.DeploymentResult
	Teardown       TeardownStatus
	Steps          []StepRecord
}

// NewProvisioner creates a Provisioner
func NewProvisioner(cfg config.Config, provider cloud.Provider, loader ArtifactLoader, confirmer Confirmer, logger *logrus.Entry) *Provisioner {
	return &Provisioner{
		Config:    cfg,
		Provider:  provider,
		Loader:    loader,
		Confirmer: confirmer,
		Logger:    logger,
		NewName:   naming.StorageAccountName,
	}
}

// Run executes the full sequence. Any failing step aborts the run without rolling back what was
// already created, except that a failed deployment is torn down when TeardownOnDeploymentFailure is set.
func (p *Provisioner) Run(ctx context.Context) (result Result, err error) {
	rec := newRecorder()
	defer func() {
		result.Steps = rec.records
	}()

	cfg := p.Config

	var staged []artifacts.Artifact
	err = p.step(rec, StepLoadArtifacts, func(logger *logrus.Entry) (err error) {
		staged, err = p.Loader.Load(ctx,
			artifacts.Source{Name: cfg.TemplateBlobName, Location: cfg.TemplateFile},
			artifacts.Source{Name: cfg.ParametersBlobName, Location: cfg.ParametersFile},
		)
		return err
	})
	if err != nil {
		return
	}

	err = p.step(rec, StepAuthenticate, func(logger *logrus.Entry) error {
		logger.Info("Authenticating...")
		return p.Provider.Authenticate(ctx)
	})
	if err != nil {
		return
	}

	err = p.step(rec, StepSelectSubscription, func(logger *logrus.Entry) (err error) {
		result.Subscription, err = p.Provider.SelectSubscription(ctx)
		if err == nil {
			logger.Infof("Using subscription %s (%s)", result.Subscription.DisplayName, result.Subscription.ID)
		}
		return err
	})
	if err != nil {
		return
	}

	err = p.step(rec, StepCreateGroup, func(logger *logrus.Entry) (err error) {
		logger.Infof("Creating resource group in %s...", cfg.Location)
		result.ResourceGroup, err = p.Provider.CreateResourceGroup(ctx, cfg.ResourceGroup, cfg.Location)
		return err
	})
	if err != nil {
		return
	}

	err = p.step(rec, StepCreateStorage, func(logger *logrus.Entry) (err error) {
		result.StorageAccount, err = p.createStorageAccount(ctx, logger, result.ResourceGroup)
		return err
	})
	if err != nil {
		return
	}

	var connectionString string
	err = p.step(rec, StepGetKeys, func(logger *logrus.Entry) error {
		keys, err := p.Provider.GetAccountKeys(ctx, result.StorageAccount)
		if err != nil {
			return err
		}
		if len(keys) == 0 {
			return ErrNoAccountKeys
		}

		connectionString = ConnectionString(result.StorageAccount.Name, keys[0].Value, cfg.EndpointSuffix)
		return nil
	})
	if err != nil {
		return
	}

	err = p.step(rec, StepCreateContainer, func(logger *logrus.Entry) (err error) {
		logger.Infof("Creating container %s...", cfg.ContainerName)
		result.Container, err = p.Provider.CreateContainer(ctx, connectionString, cfg.ContainerName)
		return err
	})
	if err != nil {
		return
	}

	err = p.step(rec, StepSetPermissions, func(logger *logrus.Entry) error {
		return p.Provider.SetContainerPermissions(ctx, connectionString, result.Container, cloud.PublicAccessContainer)
	})
	if err != nil {
		return
	}

	err = p.step(rec, StepUpload, func(logger *logrus.Entry) (err error) {
		result.Blobs, err = p.upload(ctx, logger, connectionString, result.Container, staged)
		return err
	})
	if err != nil {
		return
	}

	result.TemplateURL = BlobURL(result.StorageAccount.Name, cfg.EndpointSuffix, result.Container.Name, cfg.TemplateBlobName)
	result.ParametersURL = BlobURL(result.StorageAccount.Name, cfg.EndpointSuffix, result.Container.Name, cfg.ParametersBlobName)

	err = p.step(rec, StepDeploy, func(logger *logrus.Entry) (err error) {
		logger.Infof("Deploying %s from %s...", cfg.DeploymentName, result.TemplateURL)
		result.Deployment, err = p.Provider.Deploy(ctx, cloud.DeploymentRequest{
			ResourceGroup:  result.ResourceGroup.Name,
			Name:           cfg.DeploymentName,
			TemplateURI:    result.TemplateURL,
			ParametersURI:  result.ParametersURL,
			ContentVersion: cfg.ContentVersion,
			Mode:           cloud.Incremental,
		})
		if err == nil {
			logger.Infof("Deployment %s %s", cfg.DeploymentName, result.Deployment.ProvisioningState)
		}
		return err
	})
	if err != nil {
		rec.skip(StepConfirm, "deployment did not succeed")

		if errors.Is(err, cloud.ErrDeploymentFailed) && cfg.TeardownOnDeploymentFailure {
			if teardownErr := p.teardown(ctx, rec, result.ResourceGroup.Name); teardownErr != nil {
				return result, teardownErr
			}
			result.Teardown = TeardownCompleted
			return
		}

		rec.skip(StepDeleteGroup, "deployment did not succeed")
		result.Teardown = TeardownSkipped
		p.Logger.WithField("resourceGroup", result.ResourceGroup.Name).Warn("Resource group left in place, delete it manually once diagnosed")
		return
	}

	var confirmed bool
	err = p.step(rec, StepConfirm, func(logger *logrus.Entry) (err error) {
		confirmed, err = p.Confirmer.Confirm(ctx, fmt.Sprintf("Delete resource group %s and everything in it?", result.ResourceGroup.Name))
		return err
	})
	if err != nil {
		return
	}

	if !confirmed {
		rec.skip(StepDeleteGroup, "declined by operator")
		result.Teardown = TeardownDeclined
		p.Logger.WithField("resourceGroup", result.ResourceGroup.Name).Warn("Teardown declined, resources were kept")
		return
	}

	err = p.teardown(ctx, rec, result.ResourceGroup.Name)
	if err != nil {
		return
	}
	result.Teardown = TeardownCompleted

	return
}

// Destroy deletes the configured resource group
func (p *Provisioner) Destroy(ctx context.Context) (result Result, err error) {
	rec := newRecorder()
	defer func() {
		result.Steps = rec.records
	}()

	err = p.step(rec, StepAuthenticate, func(logger *logrus.Entry) error {
		return p.Provider.Authenticate(ctx)
	})
	if err != nil {
		return
	}

	err = p.step(rec, StepSelectSubscription, func(logger *logrus.Entry) (err error) {
		result.Subscription, err = p.Provider.SelectSubscription(ctx)
		return err
	})
	if err != nil {
		return
	}

	result.ResourceGroup = cloud.ResourceGroup{Name: p.Config.ResourceGroup, Location: p.Config.Location}

	err = p.teardown(ctx, rec, p.Config.ResourceGroup)
	if err != nil {
		return
	}
	result.Teardown = TeardownCompleted

	return
}

func (p *Provisioner) teardown(ctx context.Context, rec *recorder, resourceGroup string) error {
	return p.step(rec, StepDeleteGroup, func(logger *logrus.Entry) error {
		logger.Infof("Deleting resource group %s...", resourceGroup)
		return p.Provider.DeleteResourceGroup(ctx, resourceGroup)
	})
}

// createStorageAccount retries with a fresh random name while the provider reports the name as taken
func (p *Provisioner) createStorageAccount(ctx context.Context, logger *logrus.Entry, group cloud.ResourceGroup) (account cloud.StorageAccount, err error) {
	newName := p.NewName
	if newName == nil {
		newName = naming.StorageAccountName
	}

	attempts := p.Config.StorageNameAttempts
	if attempts < 1 {
		attempts = 1
	}

	err = retry.DoWithRetry(ctx, "create storage account", attempts-1, 0, logger, func(attempt int) error {
		name, err := newName(p.Config.StorageAccountPrefix, p.Config.StorageSuffixLength)
		if err != nil {
			return retry.FatalError{Underlying: err}
		}

		logger.Infof("Creating storage account %s...", name)

		account, err = p.Provider.CreateStorageAccount(ctx, group, name)
		if errors.Is(err, cloud.ErrNameUnavailable) {
			return err
		}
		if err != nil {
			return retry.FatalError{Underlying: err}
		}
		return nil
	})

	return
}

// upload sends the artifacts in order. With a concurrency above one they may overlap, but the
// call always waits for every upload before returning.
func (p *Provisioner) upload(ctx context.Context, logger *logrus.Entry, connectionString string, container cloud.Container, staged []artifacts.Artifact) ([]cloud.Blob, error) {
	limit := p.Config.UploadConcurrency
	if limit < 1 {
		limit = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	blobs := make([]cloud.Blob, len(staged))
	for i, artifact := range staged {
		i, artifact := i, artifact
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			logger.Infof("Uploading %s to %s...", artifact.Name, container.Name)

			blob, err := p.Provider.UploadBlob(gctx, connectionString, container, artifact.Name, artifact.Data)
			if err != nil {
				return fmt.Errorf("uploading %s: %w", artifact.Name, err)
			}

			blobs[i] = blob
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return blobs, nil
}

func (p *Provisioner) step(rec *recorder, step Step, action func(logger *logrus.Entry) error) error {
	logger := p.Logger.WithFields(logrus.Fields{
		"step":          step,
		"resourceGroup": p.Config.ResourceGroup,
	})

	rec.start(step)
	err := action(logger)
	rec.finish(step, err)

	if err != nil {
		logger.WithError(err).Error("Step failed")
		return errors.WrapPrefix(err, string(step), 0)
	}

	return nil
}
