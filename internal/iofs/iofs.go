// Package iofs manages rdftaxon files in the user's home directory.
package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/rdftaxon/pkg/config"
	"gopkg.in/yaml.v3"
)

// ConfigYAML is the documented default configuration.
//
//go:embed config.yaml
var ConfigYAML string

// EnsureDirs creates config and log directories if they are missing.
func EnsureDirs(homeDir string) error {
	for _, dir := range []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	} {
		if err := touchDir(dir); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}
	return nil
}

// EnsureConfigFile writes the default config.yaml unless the user
// already has one.
func EnsureConfigFile(homeDir string) error {
	path := config.ConfigFilePath(homeDir)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(path, err)
	}
	return nil
}

// DumpConfig saves persistent settings of cfg as YAML. The file has the
// layout of config.yaml and can be given to --config.
func DumpConfig(path string, cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err == nil {
		err = os.WriteFile(path, data, 0644)
	}
	if err != nil {
		return ConfigDumpError(path, err)
	}
	return nil
}
