// Package config provides the .servobuild loader and repository root discovery for mars.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/mars/internal/core/domain"
	"go.trai.ch/mars/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.ConfigLoader using a TOML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// DiscoverRoot walks up from cwd until it finds a servo checkout.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "cwd", cwd)
	}

	for {
		marker := filepath.Join(currentDir, domain.RootMarkerFileName)
		if _, err := os.Stat(marker); err == nil {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrRepoRootNotFound, "cwd", cwd)
}

// Load reads <root>/.servobuild. A missing or malformed file yields the empty configuration;
// malformed content is reported as a warning.
func (l *Loader) Load(root string) domain.PersistedConfig {
	path := filepath.Join(root, domain.ConfigFileName)

	// #nosec G304 -- path is rooted at the discovered checkout
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			l.warn(zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path))
		}
		return domain.PersistedConfig{}
	}

	var file Servobuild
	if err := toml.Unmarshal(data, &file); err != nil {
		l.warn(zerr.With(zerr.Wrap(err, "ignoring malformed config file"), "path", path))
		return domain.PersistedConfig{}
	}

	return file.toDomain()
}

func (l *Loader) warn(err error) {
	if l.Logger == nil {
		return
	}
	l.Logger.Warn(err.Error())
}
