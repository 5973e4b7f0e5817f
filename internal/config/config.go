// Package config loads .eureka.yml configuration files for rule overrides
// and output settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the .eureka.yml configuration file.
type Config struct {
	Severity              string   `yaml:"severity,omitempty"`
	FailOn                string   `yaml:"fail_on,omitempty"`
	Format                string   `yaml:"format,omitempty"`
	DisabledRules         []string `yaml:"disabled_rules,omitempty"`
	LogPattern            string   `yaml:"log_pattern,omitempty"`
	WebsiteTimeoutSeconds int      `yaml:"website_timeout_seconds,omitempty"`
}

// Load reads the .eureka.yml or .eureka.yaml config file from the given
// path. If path is a file, its parent directory is used. If no config file
// is found, it returns a zero Config (not an error).
func Load(dir string) (Config, error) {
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for _, name := range []string{".eureka.yml", ".eureka.yaml"} {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
		if info.Size() > 1<<20 {
			return Config{}, fmt.Errorf("config file too large: %s (%d bytes, max 1 MB)", path, info.Size())
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		return cfg, nil
	}
	return Config{}, nil
}
