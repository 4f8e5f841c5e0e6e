//go:generate mockgen -destination ../../mocks/mock_auth.go -package=mocks github.com/optum/vmdeploy/pkg/auth Authenticator

package auth

import (
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/optum/vmdeploy/pkg/arm"
	"github.com/optum/vmdeploy/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Authenticator is the interface for authenticating
type Authenticator interface {
	GetCredential(logger *logrus.Entry) (azcore.TokenCredential, error)
	GetSubscriptionID(logger *logrus.Entry) (string, error)
}

// SDKAuthenticator implements the Authenticator interface with azidentity credentials
type SDKAuthenticator struct {
	Config   config.Config
	Fs       afero.Fs
	authFile *AuthFile
}

var _ Authenticator = &SDKAuthenticator{}

// GetCredential builds the token credential for the configured credential source
func (cli *SDKAuthenticator) GetCredential(logger *logrus.Entry) (azcore.TokenCredential, error) {
	logger = logger.WithField("credentialSource", cli.Config.CredentialSource)
	clientOptions := azcore.ClientOptions{Cloud: arm.CloudConfiguration(cli.Config.Cloud)}

	switch cli.Config.CredentialSource {
	case config.CredentialSourcePath:
		f, err := cli.getAuthFile(logger)
		if err != nil {
			return nil, err
		}

		if f.AuthorityHost != "" {
			clientOptions.Cloud.ActiveDirectoryAuthorityHost = f.AuthorityHost
		}

		if f.ClientCertificate != "" {
			logger.Debugf("Using client certificate %s", f.ClientCertificate)
			return cli.getCertificateCredential(f, clientOptions)
		}

		logger.Debug("Using client secret from auth file")
		return azidentity.NewClientSecretCredential(f.TenantID, f.ClientID, f.ClientSecret, &azidentity.ClientSecretCredentialOptions{
			ClientOptions: clientOptions,
		})
	case config.CredentialSourceInlineSecret:
		logger.Debug("Using inline client secret")
		return azidentity.NewClientSecretCredential(cli.Config.TenantID, cli.Config.ClientID, cli.Config.ClientSecret, &azidentity.ClientSecretCredentialOptions{
			ClientOptions: clientOptions,
		})
	case config.CredentialSourceManagedIdentity:
		options := &azidentity.ManagedIdentityCredentialOptions{ClientOptions: clientOptions}
		if cli.Config.ManagedIdentityClientID != "" {
			logger.Debugf("Using user assigned managed identity %s", cli.Config.ManagedIdentityClientID)
			options.ID = azidentity.ClientID(cli.Config.ManagedIdentityClientID)
		} else {
			logger.Debug("Using system assigned managed identity")
		}
		return azidentity.NewManagedIdentityCredential(options)
	default:
		return nil, fmt.Errorf("invalid credential source provided, %s, expecting: %s, %s or %s", cli.Config.CredentialSource,
			config.CredentialSourcePath, config.CredentialSourceInlineSecret, config.CredentialSourceManagedIdentity)
	}
}

// GetSubscriptionID returns the configured subscription, falling back to the one named in the auth file.
// An empty result lets the caller pick the default subscription of the credential.
func (cli *SDKAuthenticator) GetSubscriptionID(logger *logrus.Entry) (string, error) {
	if cli.Config.SubscriptionID != "" {
		return cli.Config.SubscriptionID, nil
	}

	if cli.Config.CredentialSource != config.CredentialSourcePath {
		return "", nil
	}

	f, err := cli.getAuthFile(logger)
	if err != nil {
		return "", err
	}

	return f.SubscriptionID, nil
}

func (cli *SDKAuthenticator) getAuthFile(logger *logrus.Entry) (*AuthFile, error) {
	if cli.authFile != nil {
		return cli.authFile, nil
	}

	if cli.Config.AuthLocation == "" {
		return nil, fmt.Errorf("AZURE_AUTH_LOCATION is required with the %s credential source", config.CredentialSourcePath)
	}

	logger.Debugf("Reading auth file %s", cli.Config.AuthLocation)

	f, err := ParseAuthFile(cli.fs(), cli.Config.AuthLocation)
	if err != nil {
		logger.WithError(err).Error("Unable to authenticate. Auth file could not be read")
		return nil, err
	}

	cli.authFile = f

	return f, nil
}

func (cli *SDKAuthenticator) getCertificateCredential(f *AuthFile, clientOptions azcore.ClientOptions) (azcore.TokenCredential, error) {
	data, err := afero.ReadFile(cli.fs(), f.ClientCertificate)
	if err != nil {
		return nil, fmt.Errorf("reading client certificate: %w", err)
	}

	var password []byte
	if f.ClientCertificatePassword != "" {
		password = []byte(f.ClientCertificatePassword)
	}

	certs, key, err := azidentity.ParseCertificates(data, password)
	if err != nil {
		return nil, fmt.Errorf("parsing client certificate %s: %w", strings.TrimSpace(f.ClientCertificate), err)
	}

	return azidentity.NewClientCertificateCredential(f.TenantID, f.ClientID, certs, key, &azidentity.ClientCertificateCredentialOptions{
		ClientOptions: clientOptions,
	})
}

func (cli *SDKAuthenticator) fs() afero.Fs {
	if cli.Fs == nil {
		cli.Fs = afero.NewOsFs()
	}
	return cli.Fs
}
