package artifacts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Source names an artifact and where to find it. Location is a local path or any address
// go-getter understands (https://..., s3::https://..., git::...).
type Source struct {
	Name     string
	Location string
}

// Artifact is a staged artifact and its content
type Artifact struct {
	Name string
	// Source is the location the artifact was staged from
	Source string
	// Path is the staged copy inside the work directory
	Path string
	Data []byte
}

// Fetcher downloads a remote source to a destination file on the OS filesystem
type Fetcher func(ctx context.Context, src string, dst string, pwd string) error

// Loader stages artifacts in a work directory and reads them back. Local sources, the work
// directory and the staged copies all live on Fs.
type Loader struct {
	WorkDir string
	Fs      afero.Fs
	Logger  *logrus.Entry
	Fetch   Fetcher
}

// NewLoader creates a Loader staging into workDir on the OS filesystem
func NewLoader(workDir string, logger *logrus.Entry) *Loader {
	return &Loader{
		WorkDir: workDir,
		Fs:      afero.NewOsFs(),
		Logger:  logger,
		Fetch:   GetterFetch,
	}
}

// Load stages every source, in order, and returns their content. The first source that cannot be
// staged or read aborts the load.
func (l *Loader) Load(ctx context.Context, sources ...Source) ([]Artifact, error) {
	pwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	if err := l.Fs.MkdirAll(l.WorkDir, 0700); err != nil {
		return nil, err
	}

	artifacts := make([]Artifact, 0, len(sources))
	for _, source := range sources {
		artifact, err := l.load(ctx, source, pwd)
		if err != nil {
			l.Logger.WithError(err).Errorf("Unable to stage artifact %s", source.Name)
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}

	return artifacts, nil
}

func (l *Loader) load(ctx context.Context, source Source, pwd string) (Artifact, error) {
	if source.Name == "" || strings.ContainsAny(source.Name, `/\`) {
		return Artifact{}, fmt.Errorf("invalid artifact name %q", source.Name)
	}

	dst := filepath.Join(l.WorkDir, source.Name)

	local, err := localPath(source.Location, pwd)
	if err != nil {
		return Artifact{}, err
	}

	var data []byte
	if local != "" {
		info, statErr := l.Fs.Stat(local)
		if statErr != nil {
			return Artifact{}, fmt.Errorf("artifact %s: %w", source.Name, statErr)
		}
		if info.IsDir() {
			return Artifact{}, fmt.Errorf("artifact %s: %s is a directory", source.Name, local)
		}

		l.Logger.Debugf("Copying %s to %s", local, dst)

		data, err = afero.ReadFile(l.Fs, local)
	} else {
		l.Logger.Infof("Downloading %s to %s", source.Location, dst)

		data, err = l.download(ctx, source, pwd)
	}
	if err != nil {
		return Artifact{}, err
	}

	if err := afero.WriteFile(l.Fs, dst, data, 0600); err != nil {
		return Artifact{}, err
	}

	return Artifact{Name: source.Name, Source: source.Location, Path: dst, Data: data}, nil
}

// download fetches a remote source into a scratch directory, go-getter only writes to the OS filesystem
func (l *Loader) download(ctx context.Context, source Source, pwd string) ([]byte, error) {
	scratch, err := os.MkdirTemp("", "vmdeploy-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(scratch)

	dst := filepath.Join(scratch, source.Name)
	if err := l.Fetch(ctx, source.Location, dst, pwd); err != nil {
		return nil, fmt.Errorf("artifact %s: %w", source.Name, err)
	}

	return os.ReadFile(dst)
}

// localPath returns the absolute path of a source that go-getter resolves to the local filesystem,
// or an empty string for remote sources.
func localPath(location string, pwd string) (string, error) {
	if location == "" {
		return "", fmt.Errorf("artifact location is empty")
	}

	detected, err := getter.Detect(location, pwd, getter.Detectors)
	if err != nil {
		return "", err
	}

	if !strings.HasPrefix(detected, "file://") {
		return "", nil
	}

	return filepath.FromSlash(strings.TrimPrefix(detected, "file://")), nil
}

// GetterFetch downloads a single file with go-getter
func GetterFetch(ctx context.Context, src string, dst string, pwd string) error {
	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeFile,
	}

	return client.Get()
}
