// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches well-known directories for zunder.toml, zunder.yaml
//              or zunder.yml and loads the first match, then applies
//              environment overrides.
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-11
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation of file discovery
// - 2026-10-11 v0.2.0: Returns EngineConfig and the resolved path

package config

import (
	"os"
	"path/filepath"
	"strings"

	zderror "github.com/msto63/zunder/foundation/core/error"
)

// EnvPrefix is the default prefix of environment overrides
const EnvPrefix = "ZUNDER"

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions searches the working directory and the user config dir
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "zunder"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"zunder"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  EnvPrefix,
	}
}

// Discover loads the first configuration file found. When none exists and
// the options do not require one, the defaults are returned with an empty path.
func Discover(options DiscoveryOptions) (*EngineConfig, string, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"zunder"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	var cfg *EngineConfig
	path, err := FindConfigFile(options)
	switch {
	case err == nil:
		cfg, err = Load(path)
		if err != nil {
			return nil, path, zderror.Wrap(err, "found config file "+path+" but failed to load").
				WithOperation("config.Discover").
				WithDetail("configPath", path)
		}
	case options.Required:
		candidates := ListPossibleConfigFiles(options)
		return nil, "", zderror.Newf("no configuration file found in paths: %s", strings.Join(candidates, ", ")).
			WithCode(zderror.CodeMissingConfig).
			WithOperation("config.Discover").
			WithDetail("searchPaths", candidates)
	default:
		cfg = Default()
	}

	if options.EnvPrefix != "" {
		if err := cfg.ApplyEnv(options.EnvPrefix); err != nil {
			return nil, path, err
		}
	}
	return cfg, path, nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, candidate := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", zderror.New("configuration file not found").
		WithCode(zderror.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns every path Discover would try, in order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}
