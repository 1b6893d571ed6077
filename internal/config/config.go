package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mcncl/xmljson/internal/normalizer"
)

// Config represents the complete configuration for xmljson
type Config struct {
	Pretty     bool             `yaml:"pretty"`
	Attributes AttributesConfig `yaml:"attributes"`
	Keys       KeysConfig       `yaml:"keys"`
	Server     ServerConfig     `yaml:"server"`
	Dev        DevConfig        `yaml:"dev"`
}

// AttributesConfig controls how XML attributes appear in the output
type AttributesConfig struct {
	Prefix     bool   `yaml:"prefix"`
	PrefixChar string `yaml:"prefix_char"`
}

// KeysConfig controls output key naming
type KeysConfig struct {
	// Case converts element-derived keys: none, snake, camel or kebab.
	Case string `yaml:"case"`
}

// ServerConfig controls the web editor
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug   bool `yaml:"debug"`
	Verbose bool `yaml:"verbose"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Pretty: true,
		Attributes: AttributesConfig{
			Prefix:     true,
			PrefixChar: normalizer.DefaultPrefix,
		},
		Keys: KeysConfig{
			Case: normalizer.KeyCaseNone,
		},
		Server: ServerConfig{
			Addr: ":8931",
		},
		Dev: DevConfig{
			Debug:   false,
			Verbose: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".xmljson.yml", ".xmljson.yaml", "xmljson.yml", "xmljson.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

func (c *Config) validate() error {
	switch c.Keys.Case {
	case "", normalizer.KeyCaseNone, normalizer.KeyCaseSnake, normalizer.KeyCaseCamel, normalizer.KeyCaseKebab:
	default:
		return fmt.Errorf("invalid keys.case '%s': must be none, snake, camel or kebab", c.Keys.Case)
	}
	if len(c.Attributes.PrefixChar) > 1 {
		return fmt.Errorf("invalid attributes.prefix_char '%s': must be a single character", c.Attributes.PrefixChar)
	}
	return nil
}

// NormalizerOptions translates the config into normalizer options.
func (c *Config) NormalizerOptions() normalizer.Options {
	opts := normalizer.Options{
		PrefixAttributes: c.Attributes.Prefix,
		Prefix:           c.Attributes.PrefixChar,
		KeyCase:          c.Keys.Case,
	}
	if opts.Prefix == "" {
		opts.Prefix = normalizer.DefaultPrefix
	}
	return opts
}

// LoadConfigWithCLI loads config with CLI argument precedence: defaults,
// then the config file when one is found, then explicit CLI flags.
// Boolean CLI flags override the file value only when they differ from the
// shipped default, since kong gives no way to tell "unset" from "default".
func LoadConfigWithCLI(configPath string, cliPretty, cliPrefix bool) (*Config, error) {
	cfg := NewConfig()

	if configPath == "" {
		configPath = FindConfigFile()
	}
	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if !cliPretty {
		cfg.Pretty = false
	}
	if !cliPrefix {
		cfg.Attributes.Prefix = false
	}

	return cfg, nil
}
