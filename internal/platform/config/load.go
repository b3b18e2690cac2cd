package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	envConfigDir     = envPrefix + "CONFIG_DIR"
	defaultConfigDir = "configs"
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// It takes precedence over APP_CONFIG_DIR; without either, "configs" relative
// to the working directory is used.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load reads configuration in four layers, later layers winning:
//
//  0. Built-in defaults
//  1. {configDir}/base.yaml
//  2. {configDir}/{profile}.yaml
//  3. APP_-prefixed environment variables
//
// Every key must be known to the defaults: a YAML key that is not is
// reported as an error, and an APP_ variable that maps to no key (such as
// APP_PROFILE) is ignored. Env names are matched against the known keys so
// that underscores inside field names survive:
//
//	APP_SERVER_PORT                           -> server.port
//	APP_SERVER_REQUEST_TIMEOUT                -> server.request_timeout
//	APP_DATABASE_PATH                         -> database.path
//	APP_DATABASE_CIRCUIT_BREAKER_MAX_FAILURES -> database.circuit_breaker.max_failures
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: os.Getenv(envConfigDir)}
	if o.configDir == "" {
		o.configDir = defaultConfigDir
	}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}
	known := k.Keys()

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := loadFile(k, path, known); err != nil {
			return nil, err
		}
	}

	envLookup := buildEnvLookup(known)
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			// An empty key tells the provider to skip the variable.
			return envLookup[strings.ToLower(strings.TrimPrefix(key, envPrefix))], value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// loadFile merges one YAML layer into k after checking that it only sets
// keys listed in known.
func loadFile(k *koanf.Koanf, path string, known []string) error {
	layer := koanf.New(".")
	if err := layer.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading config %s: %w", path, err)
	}

	var unknown []error
	for _, key := range layer.Keys() {
		if !slices.Contains(known, key) {
			unknown = append(unknown, fmt.Errorf("unknown key %q", key))
		}
	}
	if err := errors.Join(unknown...); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	if err := k.Merge(layer); err != nil {
		return fmt.Errorf("merging config %s: %w", path, err)
	}
	return nil
}

// validateProfile checks that the profile name is safe and non-empty.
func validateProfile(profile string) error {
	if strings.TrimSpace(profile) == "" {
		return errors.New("profile must not be empty")
	}
	if strings.ContainsAny(profile, `/\`) {
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	}
	if strings.Contains(profile, "..") {
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// buildEnvLookup maps the env form of each key ("server_read_timeout") to the
// dotted koanf key ("server.read_timeout").
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return lookup
}
