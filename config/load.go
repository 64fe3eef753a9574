package config

import (
	"os"

	goerrors "github.com/gruntwork-io/go-commons/errors"
	"gopkg.in/yaml.v3"
)

// LoadClaveConfig reads a YAML file over the defaults. Keys missing from the
// file keep their default values. An empty path returns the defaults.
func LoadClaveConfig(path string) (ClaveConfig, error) {
	cfg, err := NewClaveConfig()
	if err != nil {
		return cfg, err
	}
	if path == "" {
		return cfg, nil
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return cfg, goerrors.WithStackTrace(err)
	}
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return cfg, invalid("could not parse %s: %v", path, err)
	}
	return cfg, cfg.Validate()
}
