package recon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Karmanya03/Ferret/pkg/models"
	"gopkg.in/yaml.v3"
)

// defaultConfigPatterns are the filename globs the configs scan looks
// for: configuration files, credentials and key material.
var defaultConfigPatterns = []string{
	"*.conf",
	"*.config",
	"*.cnf",
	"*.ini",
	".env",
	".env.*",
	"*.pem",
	"*.key",
	"*.p12",
	"*.pfx",
	"*.kdbx",
	"id_rsa",
	"id_dsa",
	"id_ecdsa",
	"id_ed25519",
	".htpasswd",
	".netrc",
	".pgpass",
	".my.cnf",
	"*password*",
	"*credential*",
	"*secret*",
}

// patternFile is the YAML shape of a config-pattern override file.
type patternFile struct {
	Patterns []string `yaml:"patterns"`
}

// LoadConfigPatterns returns the filename patterns for the configs
// scan, replacing the defaults when a YAML file is given.
func LoadConfigPatterns(path string) ([]string, error) {
	if path == "" {
		return defaultConfigPatterns, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file: %w", err)
	}

	var file patternFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse pattern file %s: %w", path, err)
	}
	if len(file.Patterns) == 0 {
		return defaultConfigPatterns, nil
	}
	return file.Patterns, nil
}

// Configs finds configuration and credential files by name pattern.
// Patterns must be valid globs; validation happens here, before any
// traversal.
func Configs(patterns []string) (*Scan, error) {
	for _, p := range patterns {
		if _, err := filepath.Match(p, ""); err != nil {
			return nil, fmt.Errorf("invalid config pattern %q: %w", p, err)
		}
	}

	return &Scan{
		Name:     "configs",
		Describe: "Interesting config files",
		Match: func(e *models.Entry) bool {
			if e.Kind != models.KindFile {
				return false
			}
			for _, p := range patterns {
				if ok, _ := filepath.Match(p, e.Name); ok {
					return true
				}
			}
			return false
		},
	}, nil
}
