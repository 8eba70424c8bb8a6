// Package config lets a YAML file supply defaults for wellday's command-line flags.
// A file such as
//
//	log: ~/journal/wellday.db
//	timezone: Europe/Berlin
//	debug: false
//
// fills any flag that was not given on the command line. Keys are flag names;
// underscores and hyphens are interchangeable.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/wellday/internal/constants"
)

// EnvConfigFile overrides the config file search path.
const EnvConfigFile = "WELLDAY_CONFIG"

// Loader is a kong.ConfigurationLoader for YAML files.
func Loader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	normalized := make(map[string]any, len(values))
	for k, v := range values {
		normalized[normalizeKey(k)] = v
	}

	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		if v, ok := normalized[normalizeKey(flag.Name)]; ok {
			return v, nil
		}
		return nil, nil
	}), nil
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(k), "_", "-"))
}

// Paths returns the config files to consult, highest priority first.
func Paths() []string {
	if p := os.Getenv(EnvConfigFile); p != "" {
		return []string{p}
	}
	paths := []string{constants.AppName + ".yaml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, constants.AppName, "config.yaml"))
	}
	return paths
}
