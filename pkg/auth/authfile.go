package auth

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// AuthFile is a service principal description in one of the two SDK auth file layouts:
// the JSON document written by `az ad sp create-for-rbac --sdk-auth` or the legacy
// properties file (subscription=, client=, key=, tenant=).
type AuthFile struct {
	SubscriptionID            string
	TenantID                  string
	ClientID                  string
	ClientSecret              string `json:"-"`
	ClientCertificate         string // Path to a PEM or PKCS#12 certificate, relative to the auth file
	ClientCertificatePassword string `json:"-"`
	AuthorityHost             string
}

// ParseAuthFile reads the auth file at path
func ParseAuthFile(fs afero.Fs, path string) (*AuthFile, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading auth file: %w", err)
	}

	v := viper.New()

	isJSON := bytes.HasPrefix(bytes.TrimSpace(data), []byte("{"))
	if isJSON {
		v.SetConfigType("json")
	} else {
		v.SetConfigType("properties")
	}

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("parsing auth file %s: %w", path, err)
	}

	var f *AuthFile
	if isJSON {
		f = &AuthFile{
			SubscriptionID:            v.GetString("subscriptionId"),
			TenantID:                  v.GetString("tenantId"),
			ClientID:                  v.GetString("clientId"),
			ClientSecret:              v.GetString("clientSecret"),
			ClientCertificate:         v.GetString("clientCertificate"),
			ClientCertificatePassword: v.GetString("clientCertificatePassword"),
			AuthorityHost:             v.GetString("activeDirectoryEndpointUrl"),
		}
	} else {
		f = &AuthFile{
			SubscriptionID:            v.GetString("subscription"),
			TenantID:                  v.GetString("tenant"),
			ClientID:                  v.GetString("client"),
			ClientSecret:              v.GetString("key"),
			ClientCertificate:         v.GetString("certificate"),
			ClientCertificatePassword: v.GetString("certificatePassword"),
			AuthorityHost:             v.GetString("authURL"),
		}
	}

	if f.ClientCertificate != "" && !filepath.IsAbs(f.ClientCertificate) {
		f.ClientCertificate = filepath.Join(filepath.Dir(path), f.ClientCertificate)
	}

	return f, f.validate(path)
}

func (f *AuthFile) validate(path string) error {
	if f.TenantID == "" || f.ClientID == "" {
		return fmt.Errorf("auth file %s must contain a tenant and a client id", path)
	}

	if f.ClientSecret == "" && f.ClientCertificate == "" {
		return fmt.Errorf("auth file %s must contain a client secret or a client certificate", path)
	}

	return nil
}
